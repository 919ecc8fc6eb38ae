package kfold

import "github.com/danilown/kfold/types"

// Sentinel errors returned by partitioners.
var (
	// ErrInvalidArgument is returned when construction parameters are malformed.
	ErrInvalidArgument = types.ErrInvalidArgument

	// ErrUnsupportedInput is returned when a group source cannot be used.
	// It also matches ErrInvalidArgument.
	ErrUnsupportedInput = types.ErrUnsupportedInput

	// ErrIndexOutOfRange is returned when a fold index is outside [0, folds).
	ErrIndexOutOfRange = types.ErrIndexOutOfRange
)
