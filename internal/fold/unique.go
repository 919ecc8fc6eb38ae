package fold

// Unique returns the distinct values of ids in first-seen order.
//
// The input slice is never modified; the result is always a fresh slice.
func Unique[K comparable](ids []K) []K {
	seen := make(map[K]struct{}, len(ids))
	uniq := make([]K, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}

	return uniq
}
