package kfold

import "iter"

// Cursor walks the folds of a partitioner in order.
//
// A Cursor is not safe for concurrent use; give each goroutine its own cursor.
// The partitioner behind it is immutable, so any number of cursors may run at
// the same time.
//
// Example:
//
//	c := p.Folds()
//	for c.Next() {
//	    split := c.Value()
//	    // train on split.Train, evaluate on split.Test
//	}
//	if err := c.Err(); err != nil { /* handle */ }
type Cursor[T any] struct {
	folds int
	next  int
	fetch func(int) (Split[T], error)

	current Split[T]
	err     error
}

func newCursor[T any](folds int, fetch func(int) (Split[T], error)) *Cursor[T] {
	return &Cursor[T]{folds: folds, fetch: fetch}
}

// Next advances to the next fold. It returns false after the last fold or on
// error.
func (c *Cursor[T]) Next() bool {
	if c.err != nil || c.next >= c.folds {
		return false
	}

	split, err := c.fetch(c.next)
	if err != nil {
		c.err = err
		return false
	}

	c.current = split
	c.next++

	return true
}

// Value returns the split loaded by the last successful Next.
func (c *Cursor[T]) Value() Split[T] {
	return c.current
}

// Err returns the error that stopped iteration, if any.
func (c *Cursor[T]) Err() error {
	return c.err
}

// Reset rewinds the cursor to fold 0.
func (c *Cursor[T]) Reset() {
	c.next = 0
	c.current = Split[T]{}
	c.err = nil
}

func allSplits[T any](folds int, fetch func(int) (Split[T], error)) iter.Seq2[int, Split[T]] {
	return func(yield func(int, Split[T]) bool) {
		for f := range folds {
			split, err := fetch(f)
			if err != nil {
				return
			}
			if !yield(f, split) {
				return
			}
		}
	}
}
