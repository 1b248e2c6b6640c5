package shuffle

import "errors"

var (
	ErrUnknownKind  = errors.New("shuffle: unknown shuffler kind")
	ErrInvalidState = errors.New("shuffle: invalid state")
)
