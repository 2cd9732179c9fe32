package database

import (
	"time"

	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
)

// TransactionMetrics describes one finished transaction envelope
type TransactionMetrics struct {
	Duration time.Duration
	Attempts int
	Failed   bool
}

// MetricsCollector reports slow transaction envelopes
type MetricsCollector struct {
	logger        coreport.Logger
	timeProvider  coreport.TimeProvider
	slowThreshold time.Duration
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger coreport.Logger, timeProvider coreport.TimeProvider, slowThreshold time.Duration) *MetricsCollector {
	return &MetricsCollector{
		logger:        logger,
		timeProvider:  timeProvider,
		slowThreshold: slowThreshold,
	}
}

// MeasureTransaction runs fn, which reports how many attempts it made, and logs it when slow
func (c *MetricsCollector) MeasureTransaction(fn func() (int, error)) (*TransactionMetrics, error) {
	start := c.timeProvider.Now()

	attempts, err := fn()

	metrics := &TransactionMetrics{
		Duration: c.timeProvider.Since(start).Std(),
		Attempts: attempts,
		Failed:   err != nil,
	}

	if c.slowThreshold > 0 && metrics.Duration > c.slowThreshold {
		fields := map[string]any{
			"duration_ms": metrics.Duration.Milliseconds(),
			"attempts":    attempts,
			"failed":      metrics.Failed,
		}
		if err != nil {
			fields["error"] = err.Error()
		}
		c.logger.Warn("Slow database transaction detected", fields)
	}

	return metrics, err
}
