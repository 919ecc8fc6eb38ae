package kfold

import "github.com/danilown/kfold/types"

// Re-export types from the types package.
//
// Internal packages depend on types directly; the aliases give callers
// kfold.Split, kfold.Table and so on without a second import.
type (
	FoldRange = types.FoldRange

	Split[T any] = types.Split[T]
)

// Re-export interfaces from the types package.
type (
	GroupSource[K comparable] = types.GroupSource[K]

	Table[K comparable, R any] = types.Table[K, R]

	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)
