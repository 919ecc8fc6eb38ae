package types

// FoldRange is a half-open [Start, Stop) range over the ordered group sequence
// held by a partitioner.
//
// The ranges of one partitioner are contiguous, non-overlapping and cover the
// whole sequence in fold-index order.
type FoldRange struct {
	// Start is the inclusive lower bound.
	Start int `json:"start" yaml:"start"`

	// Stop is the exclusive upper bound.
	Stop int `json:"stop" yaml:"stop"`
}

// Len returns the number of groups in the range.
func (r FoldRange) Len() int {
	return r.Stop - r.Start
}

// Contains reports whether the sequence position idx falls inside the range.
func (r FoldRange) Contains(idx int) bool {
	return idx >= r.Start && idx < r.Stop
}

// Split is one cross-validation split: the fold used as the test set and the
// union of every other fold used as the train set.
//
// T is []K for plain group partitioning, or the record set type of a Table
// when the split has been expanded to full records.
type Split[T any] struct {
	// Fold is the index of the fold used as the test set.
	Fold int `json:"fold"`

	// Train holds every group (or record) outside the test fold.
	Train T `json:"train"`

	// Test holds the groups (or records) of the test fold.
	Test T `json:"test"`
}
