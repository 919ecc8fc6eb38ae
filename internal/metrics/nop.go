// Package metrics provides MetricsCollector implementations.
package metrics

import "github.com/danilown/kfold/types"

// NopMetrics implements a no-op metrics collector.
//
// It is the default collector when kfold.WithMetrics is not given.
type NopMetrics struct{}

var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordPartition discards the construction metric.
func (n *NopMetrics) RecordPartition(_ /* groups */, _ /* folds */ int, _ /* duration */ float64) {
	// No-op
}

// RecordRejected discards the rejection metric.
func (n *NopMetrics) RecordRejected(_ /* reason */ string) {
	// No-op
}

// RecordFoldAccess discards the access metric.
func (n *NopMetrics) RecordFoldAccess(_ /* expanded */ bool) {
	// No-op
}

// RecordExpansion discards the expansion metric.
func (n *NopMetrics) RecordExpansion(_ /* trainGroups */, _ /* testGroups */ int) {
	// No-op
}
