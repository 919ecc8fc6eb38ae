package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the kfold library.
//
// Callers check them with errors.Is. Call sites add context with
// fmt.Errorf("%w: ...", sentinel, ...).
var (
	// ErrInvalidArgument is returned when construction parameters are malformed
	// (too few groups, too few folds, unusable input).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedInput is returned when the group source cannot be used:
	// a nil source, a missing key column or a key value of the wrong type.
	// It matches ErrInvalidArgument under errors.Is.
	ErrUnsupportedInput = fmt.Errorf("%w: unsupported input type", ErrInvalidArgument)

	// ErrIndexOutOfRange is returned when a fold index is outside [0, folds).
	ErrIndexOutOfRange = errors.New("fold index out of range")
)
