package weighted

import "errors"

var (
	ErrNoWeights      = errors.New("weighted: no weights")
	ErrNonPositiveSum = errors.New("weighted: weights must include a positive value")
)
