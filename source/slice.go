package source

import "github.com/danilown/kfold/types"

// Slice is a group source over a plain list of group identifiers.
type Slice[K comparable] struct {
	ids []K
}

var _ types.GroupSource[string] = (*Slice[string])(nil)

// NewSlice creates a source over ids. The slice is copied.
//
// Example:
//
//	src := source.NewSlice([]string{"p-001", "p-002", "p-003"})
//	p, err := kfold.NewFromSource[string](src, kfold.DefaultConfig())
func NewSlice[K comparable](ids []K) *Slice[K] {
	return &Slice[K]{ids: append([]K(nil), ids...)}
}

// GroupKeys returns a copy of the identifiers in insertion order.
func (s *Slice[K]) GroupKeys() ([]K, error) {
	result := make([]K, len(s.ids))
	copy(result, s.ids)

	return result, nil
}
