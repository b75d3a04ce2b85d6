package subtrack

import (
	"time"

	"go.uber.org/zap"
)

// Clock returns the current time. The manager uses it for renewal dates and
// background sweeps, so tests can pin the day.
type Clock func() time.Time

func defaultClock() time.Time {
	return time.Now().UTC()
}

// ManagerOption is a function that configures a Manager.
// It is used to apply options to the Manager during creation.
type ManagerOption func(*Manager)

// WithStore is a ManagerOption that configures the backing store.
// If no store is configured, an InMemoryStore is used.
func WithStore(store Store) ManagerOption {
	return func(m *Manager) {
		m.store = store
	}
}

// WithEventLog is a ManagerOption that configures a lifecycle event log.
// If no log is configured, lifecycle events are not recorded.
func WithEventLog(log EventLog) ManagerOption {
	return func(m *Manager) {
		m.history = log
	}
}

// WithMetrics is a ManagerOption that configures metrics collection.
func WithMetrics(metrics Metrics) ManagerOption {
	return func(m *Manager) {
		m.metrics = metrics
	}
}

// WithLogger is a ManagerOption that configures structured logging.
// The default is a no-op logger.
func WithLogger(logger *zap.Logger) ManagerOption {
	return func(m *Manager) {
		m.log = logger
	}
}

// WithClock is a ManagerOption that replaces the manager's clock.
func WithClock(clock Clock) ManagerOption {
	return func(m *Manager) {
		m.clock = clock
	}
}
