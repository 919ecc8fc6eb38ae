package source

import (
	"fmt"

	"github.com/danilown/kfold/types"
)

// Records is a table over in-memory rows of any type.
//
// The group of each row is read through a key function, so any struct, map
// or slice row can be partitioned without conversion.
type Records[K comparable, T any] struct {
	rows []T
	key  func(T) K
}

var _ types.Table[string, []struct{}] = (*Records[string, struct{}])(nil)

// NewRecords creates a table over rows with key returning each row's group.
//
// The rows slice is copied; the rows themselves are not.
//
// Example:
//
//	type visit struct {
//	    PatientID string
//	    Image     string
//	}
//	tbl := source.NewRecords(visits, func(v visit) string { return v.PatientID })
//	p, err := kfold.NewFromTable[string, []visit](tbl, kfold.DefaultConfig())
func NewRecords[K comparable, T any](rows []T, key func(T) K) *Records[K, T] {
	return &Records[K, T]{rows: append([]T(nil), rows...), key: key}
}

// Len returns the number of rows.
func (r *Records[K, T]) Len() int {
	return len(r.rows)
}

// GroupKeys returns the group of every row in row order.
//
// Returns:
//   - []K: One group key per row
//   - error: types.ErrUnsupportedInput when no key function was given
func (r *Records[K, T]) GroupKeys() ([]K, error) {
	if r.key == nil {
		return nil, fmt.Errorf("%w: records have no group key function", types.ErrUnsupportedInput)
	}

	keys := make([]K, len(r.rows))
	for i, row := range r.rows {
		keys[i] = r.key(row)
	}

	return keys, nil
}

// FilterGroups returns the rows whose group is in groups, in row order.
func (r *Records[K, T]) FilterGroups(groups map[K]struct{}) []T {
	result := make([]T, 0, len(r.rows))
	for _, row := range r.rows {
		if _, ok := groups[r.key(row)]; ok {
			result = append(result, row)
		}
	}

	return result
}
