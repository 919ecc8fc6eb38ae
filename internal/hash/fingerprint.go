// Package hash computes stable fingerprints of fold assignments.
package hash

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/xxh3"

	"github.com/danilown/kfold/types"
)

// Fingerprint folds the ordered group sequence and its fold ranges into a single
// xxh3 64-bit hash.
//
// Each group is hashed through its %v representation, using the previous hash
// as the seed for the next one, so the result depends on both content and order.
// Two partitioners with equal fingerprints hold the same assignment with
// overwhelming probability; the hash is not cryptographic.
//
// Parameters:
//   - ids: Ordered group sequence
//   - ranges: Fold ranges over ids
//
// Returns:
//   - uint64: Assignment fingerprint
func Fingerprint[K comparable](ids []K, ranges []types.FoldRange) uint64 {
	var (
		h   uint64
		buf []byte
		ib  [8]byte
	)

	for _, id := range ids {
		buf = fmt.Appendf(buf[:0], "%v", id)
		h = xxh3.HashSeed(buf, h)
	}

	for _, r := range ranges {
		binary.LittleEndian.PutUint64(ib[:], uint64(r.Start)) //nolint:gosec
		h = xxh3.HashSeed(ib[:], h)
		binary.LittleEndian.PutUint64(ib[:], uint64(r.Stop)) //nolint:gosec
		h = xxh3.HashSeed(ib[:], h)
	}

	return h
}
