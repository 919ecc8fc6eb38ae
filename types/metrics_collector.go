package types

// MetricsCollector defines methods for recording partitioning metrics.
//
// Implementations should be non-blocking. Fold access may happen from several
// goroutines at once, so all methods must be thread-safe.
type MetricsCollector interface {
	PartitionMetrics
	AccessMetrics
}

// PartitionMetrics defines metrics recorded once per partitioner construction.
type PartitionMetrics interface {
	// RecordPartition records a completed construction.
	//
	// Parameters:
	//   - groups: Number of distinct groups partitioned
	//   - folds: Number of folds
	//   - duration: Construction time in seconds
	RecordPartition(groups, folds int, duration float64)

	// RecordRejected records a construction rejected by validation.
	//
	// Parameters:
	//   - reason: Short rejection reason ("too_few_groups", "too_few_folds", "unsupported_input")
	RecordRejected(reason string)
}

// AccessMetrics defines metrics recorded on every fold access.
type AccessMetrics interface {
	// RecordFoldAccess records one fold lookup.
	//
	// Parameters:
	//   - expanded: true when the split was expanded to table records
	RecordFoldAccess(expanded bool)

	// RecordExpansion records the sizes of an expanded split.
	//
	// Parameters:
	//   - trainGroups: Number of groups in the train side
	//   - testGroups: Number of groups in the test side
	RecordExpansion(trainGroups, testGroups int)
}
