package snapshot

import (
	"errors"

	"procrand/pkg/shuffle"
)

var (
	// ErrCorrupt reports data that does not decode to a snapshot.
	ErrCorrupt = errors.New("snapshot: corrupt data")
	// ErrUnknownKind reports a shuffler snapshot of a kind this build does
	// not know.
	ErrUnknownKind = shuffle.ErrUnknownKind
)
