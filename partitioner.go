package kfold

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/danilown/kfold/internal/fold"
	"github.com/danilown/kfold/internal/hash"
)

// Rejection reasons reported to MetricsCollector.RecordRejected.
const (
	rejectTooFewGroups    = "too_few_groups"
	rejectTooFewFolds     = "too_few_folds"
	rejectUnsupportedType = "unsupported_input"
)

// Partitioner splits distinct group identifiers into contiguous folds.
//
// All state is computed by the constructor and never changes afterwards, so a
// Partitioner is safe for concurrent use. Iteration state lives in the Cursor
// returned by Folds.
type Partitioner[K comparable] struct {
	groups      []K
	ranges      []FoldRange
	foldOf      map[K]int
	fingerprint uint64

	opts partitionerOptions
}

// New partitions the distinct values of ids into cfg.Folds folds.
//
// ids is copied; the caller's slice is never reordered. Duplicates are removed
// keeping their first occurrence, then the sequence is shuffled when
// cfg.ShuffleEnabled() is true.
//
// Parameters:
//   - ids: Group identifiers, duplicates allowed
//   - cfg: Fold count, shuffle flag and seed
//   - opts: Optional logger and metrics collector
//
// Returns:
//   - *Partitioner[K]: Ready partitioner
//   - error: ErrInvalidArgument when there are fewer than 2 distinct groups or
//     fewer than 2 folds
//
// Example:
//
//	p, err := kfold.New([]string{"p1", "p2", "p3", "p4"}, kfold.Config{Folds: 2, Seed: kfold.Seed(7)})
//	if err != nil { /* handle */ }
//	split, _ := p.Fold(0)
func New[K comparable](ids []K, cfg Config, opts ...Option) (*Partitioner[K], error) {
	return newPartitioner(ids, cfg, collectOptions(opts))
}

// NewFromSource partitions the groups yielded by src.
//
// Returns:
//   - *Partitioner[K]: Ready partitioner
//   - error: ErrUnsupportedInput when src is nil or fails to yield its keys,
//     otherwise as New
func NewFromSource[K comparable](src GroupSource[K], cfg Config, opts ...Option) (*Partitioner[K], error) {
	o := collectOptions(opts)

	ids, err := groupKeys(src, o)
	if err != nil {
		return nil, err
	}

	return newPartitioner(ids, cfg, o)
}

func groupKeys[K comparable](src GroupSource[K], o partitionerOptions) ([]K, error) {
	if src == nil {
		o.metrics.RecordRejected(rejectUnsupportedType)
		return nil, fmt.Errorf("%w: nil group source", ErrUnsupportedInput)
	}

	ids, err := src.GroupKeys()
	if err != nil {
		o.metrics.RecordRejected(rejectUnsupportedType)
		if errors.Is(err, ErrInvalidArgument) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", ErrUnsupportedInput, err)
	}

	return ids, nil
}

func newPartitioner[K comparable](ids []K, cfg Config, o partitionerOptions) (*Partitioner[K], error) {
	start := time.Now()

	if err := cfg.Validate(); err != nil {
		o.metrics.RecordRejected(rejectTooFewFolds)
		return nil, err
	}

	groups := fold.Unique(ids)
	if len(groups) < 2 {
		o.metrics.RecordRejected(rejectTooFewGroups)
		return nil, fmt.Errorf("%w: need at least 2 groups, got %d distinct of %d",
			ErrInvalidArgument, len(groups), len(ids))
	}

	if cfg.ShuffleEnabled() {
		fold.Shuffle(groups, fold.NewRand(cfg.Seed))
	}

	ranges := fold.Ranges(len(groups), cfg.Folds)

	foldOf := make(map[K]int, len(groups))
	for f, r := range ranges {
		for _, id := range groups[r.Start:r.Stop] {
			foldOf[id] = f
		}
	}

	p := &Partitioner[K]{
		groups:      groups,
		ranges:      ranges,
		foldOf:      foldOf,
		fingerprint: hash.Fingerprint(groups, ranges),
		opts:        o,
	}

	if len(groups) < cfg.Folds {
		o.logger.Warn("fewer groups than folds, trailing folds are empty",
			"groups", len(groups), "folds", cfg.Folds, "empty", cfg.Folds-len(groups))
	}

	o.logger.Debug("groups partitioned",
		"records", len(ids),
		"groups", len(groups),
		"folds", cfg.Folds,
		"shuffled", cfg.ShuffleEnabled(),
		"seeded", cfg.Seed != nil,
		"fingerprint", fmt.Sprintf("%016x", p.fingerprint))
	o.metrics.RecordPartition(len(groups), cfg.Folds, time.Since(start).Seconds())

	return p, nil
}

// NumFolds returns the number of folds.
func (p *Partitioner[K]) NumFolds() int {
	return len(p.ranges)
}

// NumGroups returns the number of distinct groups.
func (p *Partitioner[K]) NumGroups() int {
	return len(p.groups)
}

// Groups returns a copy of the ordered group sequence the folds index into.
func (p *Partitioner[K]) Groups() []K {
	return append([]K(nil), p.groups...)
}

// Ranges returns a copy of the fold ranges, in fold order.
func (p *Partitioner[K]) Ranges() []FoldRange {
	return append([]FoldRange(nil), p.ranges...)
}

// FoldSizes returns the number of groups in each fold.
func (p *Partitioner[K]) FoldSizes() []int {
	sizes := make([]int, len(p.ranges))
	for i, r := range p.ranges {
		sizes[i] = r.Len()
	}

	return sizes
}

// FoldOf returns the fold whose test set contains id.
func (p *Partitioner[K]) FoldOf(id K) (int, bool) {
	f, ok := p.foldOf[id]

	return f, ok
}

// Fingerprint returns a hash of the group order and fold layout.
//
// Two partitioners built from the same input, fold count and seed have the
// same fingerprint; it is handy for logging which assignment a model was
// trained on.
func (p *Partitioner[K]) Fingerprint() uint64 {
	return p.fingerprint
}

// Fold returns the train and test groups of fold f.
//
// Test holds the groups of fold f in sequence order. Train holds the groups of
// every other fold: those before fold f, then those after it. Both slices are
// fresh copies.
//
// Returns:
//   - Split[[]K]: The split for fold f
//   - error: ErrIndexOutOfRange when f is outside [0, NumFolds())
func (p *Partitioner[K]) Fold(f int) (Split[[]K], error) {
	train, test, err := p.split(f)
	if err != nil {
		return Split[[]K]{}, err
	}

	p.opts.metrics.RecordFoldAccess(false)

	return Split[[]K]{Fold: f, Train: train, Test: test}, nil
}

func (p *Partitioner[K]) split(f int) (train, test []K, err error) {
	if f < 0 || f >= len(p.ranges) {
		return nil, nil, fmt.Errorf("%w: fold %d, have %d folds", ErrIndexOutOfRange, f, len(p.ranges))
	}

	train, test = fold.Split(p.groups, p.ranges[f])

	return train, test, nil
}

// Folds returns a cursor positioned before fold 0.
//
// Each call returns an independent cursor; two cursors over the same
// partitioner yield identical splits.
func (p *Partitioner[K]) Folds() *Cursor[[]K] {
	return newCursor(len(p.ranges), p.Fold)
}

// All returns the splits of every fold in fold order, for use with range.
//
// Example:
//
//	for fold, split := range p.All() {
//	    fmt.Println(fold, len(split.Train), len(split.Test))
//	}
func (p *Partitioner[K]) All() iter.Seq2[int, Split[[]K]] {
	return allSplits(len(p.ranges), p.Fold)
}
