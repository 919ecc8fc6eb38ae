package fold

import "github.com/danilown/kfold/types"

// Split slices ids into the train and test sides of range r.
//
// Test is ids[r.Start:r.Stop]; train is the prefix before r followed by the
// suffix after it. Both results are fresh slices that never alias ids.
func Split[K any](ids []K, r types.FoldRange) (train, test []K) {
	test = make([]K, r.Len())
	copy(test, ids[r.Start:r.Stop])

	train = make([]K, 0, len(ids)-r.Len())
	train = append(train, ids[:r.Start]...)
	train = append(train, ids[r.Stop:]...)

	return train, test
}

// Set builds a membership set from ids.
func Set[K comparable](ids []K) map[K]struct{} {
	set := make(map[K]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}
