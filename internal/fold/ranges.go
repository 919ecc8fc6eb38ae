package fold

import "github.com/danilown/kfold/types"

// Sizes returns the size of each of n folds over count groups.
//
// Every fold gets count/n groups and the first count%n folds get one more, so
// sizes differ by at most one and the larger folds come first.
func Sizes(count, n int) []int {
	if n <= 0 {
		return nil
	}

	base, rem := count/n, count%n
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = base
		if i < rem {
			sizes[i]++
		}
	}

	return sizes
}

// Ranges lays out n contiguous half-open ranges covering [0, count).
func Ranges(count, n int) []types.FoldRange {
	sizes := Sizes(count, n)
	ranges := make([]types.FoldRange, len(sizes))

	start := 0
	for i, size := range sizes {
		ranges[i] = types.FoldRange{Start: start, Stop: start + size}
		start += size
	}

	return ranges
}
