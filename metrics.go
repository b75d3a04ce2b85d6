package subtrack

import "time"

// Metrics defines the interface for collecting subtrack metrics.
// Implement this interface to integrate with your monitoring system
// (Prometheus, DataDog, etc.).
type Metrics interface {
	// IncrementCounter increments a counter metric
	IncrementCounter(name string, labels map[string]string)
	// RecordHistogram records a histogram/timing metric
	RecordHistogram(name string, value float64, labels map[string]string)
	// SetGauge sets a gauge metric value
	SetGauge(name string, value float64, labels map[string]string)
}

// NoOpMetrics is a no-op implementation of Metrics for when monitoring is disabled.
type NoOpMetrics struct{}

func (m *NoOpMetrics) IncrementCounter(name string, labels map[string]string) {}

func (m *NoOpMetrics) RecordHistogram(name string, value float64, labels map[string]string) {}

func (m *NoOpMetrics) SetGauge(name string, value float64, labels map[string]string) {}

// recordLifecycleMetric records a subscription lifecycle event
func (m *Manager) recordLifecycleMetric(name string, kind EventKind) {
	if m.metrics == nil {
		return
	}

	labels := map[string]string{
		"subscription": name,
		"event":        string(kind),
	}

	m.metrics.IncrementCounter("subtrack_subscription_events_total", labels)
}

// recordSweep records the outcome of an auto-cancel sweep
func (m *Manager) recordSweep(cancelled int, duration time.Duration) {
	if m.metrics == nil {
		return
	}

	m.metrics.IncrementCounter("subtrack_sweeps_total", nil)
	m.metrics.RecordHistogram("subtrack_sweep_duration_seconds", duration.Seconds(), nil)
	m.metrics.SetGauge("subtrack_sweep_last_cancelled", float64(cancelled), nil)
}

// recordTotals records current active count and monthly cost
func (m *Manager) recordTotals(activeCount int, activeCost float64) {
	if m.metrics == nil {
		return
	}

	m.metrics.SetGauge("subtrack_active_subscriptions", float64(activeCount), nil)
	m.metrics.SetGauge("subtrack_active_monthly_cost", activeCost, nil)
}
