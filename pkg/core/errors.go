package core

import "errors"

// ErrUnknownSource is returned when a generator name is not registered.
var ErrUnknownSource = errors.New("unknown source")
