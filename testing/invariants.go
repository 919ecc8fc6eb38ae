package testing

import (
	"testing"

	"github.com/danilown/kfold/types"
)

// AssertExhaustive verifies that the test sets of all folds together contain
// every group exactly once.
//
// Parameters:
//   - t: testing handle
//   - tests: test groups of each fold, in fold order
//   - groups: the full set of distinct groups
func AssertExhaustive[K comparable](t testing.TB, tests [][]K, groups []K) {
	t.Helper()

	seen := make(map[K]int, len(groups))
	for f, test := range tests {
		for _, id := range test {
			if prev, ok := seen[id]; ok {
				t.Fatalf("group %v tested in fold %d and fold %d", id, prev, f)
			}
			seen[id] = f
		}
	}

	for _, id := range groups {
		if _, ok := seen[id]; !ok {
			t.Fatalf("group %v is never tested", id)
		}
	}
	if len(seen) != len(groups) {
		t.Fatalf("test sets hold %d groups, want %d", len(seen), len(groups))
	}
}

// AssertDisjoint verifies that a split's train and test sides share no group
// and together hold exactly groups.
func AssertDisjoint[K comparable](t testing.TB, split types.Split[[]K], groups []K) {
	t.Helper()

	side := make(map[K]string, len(groups))
	for _, id := range split.Test {
		side[id] = "test"
	}
	for _, id := range split.Train {
		if s, ok := side[id]; ok {
			t.Fatalf("fold %d: group %v on train side is also on %s side", split.Fold, id, s)
		}
		side[id] = "train"
	}

	if len(side) != len(groups) {
		t.Fatalf("fold %d: split holds %d groups, want %d", split.Fold, len(side), len(groups))
	}
	for _, id := range groups {
		if _, ok := side[id]; !ok {
			t.Fatalf("fold %d: group %v missing from split", split.Fold, id)
		}
	}
}

// AssertBalanced verifies that sizes is the layout of count groups: the first
// count%n folds hold count/n+1 groups and the rest hold count/n.
func AssertBalanced(t testing.TB, sizes []int, count int) {
	t.Helper()

	n := len(sizes)
	if n == 0 {
		t.Fatalf("no folds")
	}

	base, rem := count/n, count%n
	for f, size := range sizes {
		want := base
		if f < rem {
			want++
		}
		if size != want {
			t.Fatalf("fold %d holds %d groups, want %d (sizes %v)", f, size, want, sizes)
		}
	}
}
