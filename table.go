package kfold

import (
	"fmt"
	"iter"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/danilown/kfold/internal/fold"
)

// TablePartitioner partitions the groups of a table and expands every split to
// the table's records.
//
// Every record of a group lands on the same side of a split. Record order
// within each side follows the table, since selection is delegated to
// Table.FilterGroups.
type TablePartitioner[K comparable, R any] struct {
	groups *Partitioner[K]
	table  Table[K, R]

	// membership sets per fold, built on first access
	sets *xsync.Map[int, foldSets[K]]
}

type foldSets[K comparable] struct {
	train map[K]struct{}
	test  map[K]struct{}
}

// NewFromTable partitions the groups found in tbl.
//
// Parameters:
//   - tbl: Table listing each record's group and selecting records by group
//   - cfg: Fold count, shuffle flag and seed
//   - opts: Optional logger and metrics collector
//
// Returns:
//   - *TablePartitioner[K, R]: Ready partitioner
//   - error: ErrUnsupportedInput when tbl is nil or its keys cannot be read,
//     ErrInvalidArgument for too few groups or folds
//
// Example:
//
//	frame, _ := source.NewFrame(
//	    source.Column{Name: "patient", Values: []any{1, 2, 2, 3}},
//	    source.Column{Name: "image", Values: []any{"a", "b", "c", "d"}},
//	)
//	tbl := source.NewFrameTable[int](frame, "patient")
//	p, err := kfold.NewFromTable[int, *source.Frame](tbl, kfold.Config{Folds: 3})
//	if err != nil { /* handle */ }
//	split, _ := p.Fold(0) // split.Train and split.Test are *source.Frame
func NewFromTable[K comparable, R any](tbl Table[K, R], cfg Config, opts ...Option) (*TablePartitioner[K, R], error) {
	o := collectOptions(opts)

	if tbl == nil {
		o.metrics.RecordRejected(rejectUnsupportedType)
		return nil, fmt.Errorf("%w: nil table", ErrUnsupportedInput)
	}

	ids, err := groupKeys[K](tbl, o)
	if err != nil {
		return nil, err
	}

	p, err := newPartitioner(ids, cfg, o)
	if err != nil {
		return nil, err
	}

	return &TablePartitioner[K, R]{
		groups: p,
		table:  tbl,
		sets:   xsync.NewMap[int, foldSets[K]](),
	}, nil
}

// Partitioner returns the group-level partitioner behind the table.
//
// Use it for fold sizes, FoldOf lookups or the bare group splits.
func (t *TablePartitioner[K, R]) Partitioner() *Partitioner[K] {
	return t.groups
}

// NumFolds returns the number of folds.
func (t *TablePartitioner[K, R]) NumFolds() int {
	return t.groups.NumFolds()
}

// Fold returns the train and test records of fold f.
//
// Returns:
//   - Split[R]: Records whose group is outside (Train) or inside (Test) fold f
//   - error: ErrIndexOutOfRange when f is outside [0, NumFolds())
func (t *TablePartitioner[K, R]) Fold(f int) (Split[R], error) {
	sets, err := t.membership(f)
	if err != nil {
		return Split[R]{}, err
	}

	t.groups.opts.metrics.RecordFoldAccess(true)
	t.groups.opts.metrics.RecordExpansion(len(sets.train), len(sets.test))

	return Split[R]{
		Fold:  f,
		Train: t.table.FilterGroups(sets.train),
		Test:  t.table.FilterGroups(sets.test),
	}, nil
}

func (t *TablePartitioner[K, R]) membership(f int) (foldSets[K], error) {
	if sets, ok := t.sets.Load(f); ok {
		return sets, nil
	}

	train, test, err := t.groups.split(f)
	if err != nil {
		return foldSets[K]{}, err
	}

	sets, _ := t.sets.LoadOrStore(f, foldSets[K]{
		train: fold.Set(train),
		test:  fold.Set(test),
	})

	return sets, nil
}

// Folds returns a cursor positioned before fold 0.
func (t *TablePartitioner[K, R]) Folds() *Cursor[R] {
	return newCursor(t.groups.NumFolds(), t.Fold)
}

// All returns the expanded splits of every fold in fold order.
func (t *TablePartitioner[K, R]) All() iter.Seq2[int, Split[R]] {
	return allSplits(t.groups.NumFolds(), t.Fold)
}
