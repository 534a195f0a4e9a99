package encoding

import "errors"

// ErrUnknownFormat is returned when an output format name is not recognised.
var ErrUnknownFormat = errors.New("unknown output format")

// ErrUnknownMode is returned when an encoding mode name is not recognised.
var ErrUnknownMode = errors.New("unknown encoding mode")
