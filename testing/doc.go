// Package testing provides test utilities for code built on kfold.
//
// It follows Go's convention of shipping testing helpers in a dedicated package
// (similar to net/http/httptest).
//
// Key utilities:
//   - NewTestLogger: Logger writing to testing.T
//   - AssertExhaustive: every group is tested in exactly one fold
//   - AssertDisjoint: a split's train and test sides partition the groups
//   - AssertBalanced: fold sizes follow the larger-folds-first layout
//
// Example usage:
//
//	import (
//	    "testing"
//	    kfoldtest "github.com/danilown/kfold/testing"
//	)
//
//	func TestMyFolds(t *testing.T) {
//	    p, _ := kfold.New(ids, cfg, kfold.WithLogger(kfoldtest.NewTestLogger(t)))
//	    kfoldtest.AssertBalanced(t, p.FoldSizes(), p.NumGroups())
//	}
package testing
