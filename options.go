package kfold

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/danilown/kfold/internal/logger"
	"github.com/danilown/kfold/internal/logging"
	"github.com/danilown/kfold/internal/metrics"
)

// Option configures a partitioner with optional dependencies.
type Option func(*partitionerOptions)

// partitionerOptions holds optional partitioner dependencies.
type partitionerOptions struct {
	logger  Logger
	metrics MetricsCollector
}

func collectOptions(opts []Option) partitionerOptions {
	o := partitionerOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	o.logger = logger.OrNop(o.logger)
	if o.metrics == nil {
		o.metrics = metrics.NewNop()
	}

	return o
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (see NewZapLogger and NewSlogLogger)
//
// Returns:
//   - Option: Functional option for New, NewFromSource and NewFromTable
//
// Example:
//
//	logger := kfold.NewZapLogger(zap.NewExample().Sugar())
//	p, err := kfold.New(ids, cfg, kfold.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *partitionerOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New, NewFromSource and NewFromTable
//
// Example:
//
//	collector := myPrometheusCollector
//	p, err := kfold.New(ids, cfg, kfold.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *partitionerOptions) {
		o.metrics = metrics
	}
}

// NewZapLogger adapts a sugared zap logger to Logger.
func NewZapLogger(logger *zap.SugaredLogger) Logger {
	return logging.NewZap(logger)
}

// NewSlogLogger adapts a slog logger to Logger. A nil logger uses slog.Default.
func NewSlogLogger(logger *slog.Logger) Logger {
	return logging.NewSlog(logger)
}

// NewPrometheusMetrics returns a MetricsCollector registering its collectors
// with reg under namespace. A nil reg uses prometheus.DefaultRegisterer and an
// empty namespace defaults to "kfold".
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) MetricsCollector {
	return metrics.NewPrometheus(reg, namespace)
}
