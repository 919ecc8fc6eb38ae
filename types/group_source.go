package types

// GroupSource yields the group identifier of every record it holds.
//
// Implementations return one identifier per record in record order; duplicates
// are expected (several records may belong to the same group) and are removed
// by the partitioner.
type GroupSource[K comparable] interface {
	// GroupKeys returns the group identifier of every record, in record order.
	//
	// Returns:
	//   - []K: Group identifiers (may contain duplicates)
	//   - error: Extraction error, e.g. a key field of the wrong type
	GroupKeys() ([]K, error)
}

// Table is a GroupSource whose records can be filtered by group membership.
//
// It is the collaborator that lets a partitioner hand back full record sets
// instead of bare group identifiers.
type Table[K comparable, R any] interface {
	GroupSource[K]

	// FilterGroups returns the records whose group identifier is a member of
	// groups, preserving the original record order.
	//
	// Implementations must not retain or mutate groups.
	//
	// Parameters:
	//   - groups: Membership set of group identifiers
	//
	// Returns:
	//   - R: The selected records
	FilterGroups(groups map[K]struct{}) R
}
