package source

import (
	"fmt"
	"slices"

	"github.com/danilown/kfold/types"
)

// Column is a named column of a Frame.
type Column struct {
	Name   string
	Values []any
}

// Frame is a minimal column-oriented table: named columns of equal length.
//
// A Frame is immutable; Select returns a new Frame.
type Frame struct {
	names   []string
	columns map[string][]any
	rows    int
}

// NewFrame builds a frame from columns.
//
// Returns:
//   - *Frame: The frame, with columns in the given order
//   - error: types.ErrInvalidArgument on duplicate names or unequal lengths
//
// Example:
//
//	frame, err := source.NewFrame(
//	    source.Column{Name: "patient", Values: []any{1, 2, 2, 3}},
//	    source.Column{Name: "image", Values: []any{"a", "b", "c", "d"}},
//	)
func NewFrame(columns ...Column) (*Frame, error) {
	f := &Frame{
		names:   make([]string, 0, len(columns)),
		columns: make(map[string][]any, len(columns)),
	}

	for i, col := range columns {
		if _, dup := f.columns[col.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", types.ErrInvalidArgument, col.Name)
		}
		if i == 0 {
			f.rows = len(col.Values)
		} else if len(col.Values) != f.rows {
			return nil, fmt.Errorf("%w: column %q has %d rows, want %d",
				types.ErrInvalidArgument, col.Name, len(col.Values), f.rows)
		}

		f.names = append(f.names, col.Name)
		f.columns[col.Name] = append([]any(nil), col.Values...)
	}

	return f, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return f.rows
}

// Names returns the column names in order.
func (f *Frame) Names() []string {
	return slices.Clone(f.names)
}

// Column returns a copy of the named column.
func (f *Frame) Column(name string) ([]any, bool) {
	col, ok := f.columns[name]
	if !ok {
		return nil, false
	}

	return slices.Clone(col), true
}

// Select returns a new frame with the rows for which keep returns true, in
// their original order.
func (f *Frame) Select(keep func(row int) bool) *Frame {
	idx := make([]int, 0, f.rows)
	for i := range f.rows {
		if keep(i) {
			idx = append(idx, i)
		}
	}

	out := &Frame{
		names:   slices.Clone(f.names),
		columns: make(map[string][]any, len(f.columns)),
		rows:    len(idx),
	}
	for name, col := range f.columns {
		selected := make([]any, len(idx))
		for j, i := range idx {
			selected[j] = col[i]
		}
		out.columns[name] = selected
	}

	return out
}

// FrameTable exposes a Frame as a table keyed by one of its columns.
type FrameTable[K comparable] struct {
	frame     *Frame
	keyColumn string
}

var _ types.Table[string, *Frame] = (*FrameTable[string])(nil)

// NewFrameTable keys frame by keyColumn. Every value in that column must be
// of type K; this is checked by GroupKeys.
func NewFrameTable[K comparable](frame *Frame, keyColumn string) *FrameTable[K] {
	return &FrameTable[K]{frame: frame, keyColumn: keyColumn}
}

// Frame returns the underlying frame.
func (t *FrameTable[K]) Frame() *Frame {
	return t.frame
}

// GroupKeys returns the key column, typed as K, in row order.
//
// Returns:
//   - []K: One group key per row
//   - error: types.ErrUnsupportedInput when the frame is nil, the key column
//     does not exist, or a value is not a K
func (t *FrameTable[K]) GroupKeys() ([]K, error) {
	if t.frame == nil {
		return nil, fmt.Errorf("%w: nil frame", types.ErrUnsupportedInput)
	}

	col, ok := t.frame.columns[t.keyColumn]
	if !ok {
		return nil, fmt.Errorf("%w: no key column %q", types.ErrUnsupportedInput, t.keyColumn)
	}

	keys := make([]K, len(col))
	for i, v := range col {
		k, ok := v.(K)
		if !ok {
			return nil, fmt.Errorf("%w: column %q row %d holds %T, want %T",
				types.ErrUnsupportedInput, t.keyColumn, i, v, k)
		}
		keys[i] = k
	}

	return keys, nil
}

// FilterGroups returns a new frame holding the rows whose key is in groups.
func (t *FrameTable[K]) FilterGroups(groups map[K]struct{}) *Frame {
	col := t.frame.columns[t.keyColumn]

	return t.frame.Select(func(row int) bool {
		k, ok := col[row].(K)
		if !ok {
			return false
		}
		_, member := groups[k]

		return member
	})
}
