package fold

import "math/rand/v2"

// seedStream is the fixed PCG stream selector used for seeded shuffles.
const seedStream = 0x9e3779b97f4a7c15

// NewRand returns a generator scoped to a single caller.
//
// A non-nil seed yields a reproducible sequence. A nil seed draws the PCG state
// from the runtime's entropy-seeded source, so every call differs.
func NewRand(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(uint64(*seed), seedStream)) //nolint:gosec
	}

	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec
}

// Shuffle permutes ids in place with a Fisher-Yates shuffle driven by r.
func Shuffle[K any](ids []K, r *rand.Rand) {
	r.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
}
