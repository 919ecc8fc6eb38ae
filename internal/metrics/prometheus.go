package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/danilown/kfold/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use, so constructing
// a PrometheusCollector never touches the registry.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	partitions      prometheus.Counter
	rejections      *prometheus.CounterVec
	groups          prometheus.Histogram
	folds           prometheus.Gauge
	partitionTime   prometheus.Histogram
	foldAccesses    *prometheus.CounterVec
	expansionGroups *prometheus.HistogramVec
}

var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Metrics namespace (defaults to "kfold" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "kfold"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.partitions = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "partitioner",
			Name:      "constructions_total",
			Help:      "Total partitioners successfully constructed.",
		})

		p.rejections = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "partitioner",
			Name:      "rejections_total",
			Help:      "Total constructions rejected by validation, by reason.",
		}, []string{"reason"})

		p.groups = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "partitioner",
			Name:      "groups",
			Help:      "Distinct groups per constructed partitioner.",
			Buckets:   prometheus.ExponentialBuckets(2, 4, 10), // 2 .. ~500k
		})

		p.folds = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "partitioner",
			Name:      "folds",
			Help:      "Fold count of the most recently constructed partitioner.",
		})

		p.partitionTime = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "partitioner",
			Name:      "construction_seconds",
			Help:      "Time spent deduplicating, shuffling and laying out folds.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs .. ~2.6s
		})

		p.foldAccesses = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "fold",
			Name:      "accesses_total",
			Help:      "Total fold lookups by kind (groups, records).",
		}, []string{"kind"})

		p.expansionGroups = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "fold",
			Name:      "expansion_groups",
			Help:      "Groups per side of an expanded split.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"side"})

		p.reg.MustRegister(p.partitions)
		p.reg.MustRegister(p.rejections)
		p.reg.MustRegister(p.groups)
		p.reg.MustRegister(p.folds)
		p.reg.MustRegister(p.partitionTime)
		p.reg.MustRegister(p.foldAccesses)
		p.reg.MustRegister(p.expansionGroups)
	})
}

// RecordPartition records a completed construction.
func (p *PrometheusCollector) RecordPartition(groups, folds int, duration float64) {
	p.ensureRegistered()
	p.partitions.Inc()
	p.groups.Observe(float64(groups))
	p.folds.Set(float64(folds))
	p.partitionTime.Observe(duration)
}

// RecordRejected records a construction rejected by validation.
func (p *PrometheusCollector) RecordRejected(reason string) {
	p.ensureRegistered()
	p.rejections.WithLabelValues(reason).Inc()
}

// RecordFoldAccess records one fold lookup.
func (p *PrometheusCollector) RecordFoldAccess(expanded bool) {
	p.ensureRegistered()
	if expanded {
		p.foldAccesses.WithLabelValues("records").Inc()
	} else {
		p.foldAccesses.WithLabelValues("groups").Inc()
	}
}

// RecordExpansion records the group counts of an expanded split.
func (p *PrometheusCollector) RecordExpansion(trainGroups, testGroups int) {
	p.ensureRegistered()
	p.expansionGroups.WithLabelValues("train").Observe(float64(trainGroups))
	p.expansionGroups.WithLabelValues("test").Observe(float64(testGroups))
}
