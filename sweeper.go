package subtrack

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// StartAutoCancel runs the auto-cancel sweep in the background.
// The first sweep runs immediately, then once per interval, using the
// manager's clock for the current day. The sweep stops when the Manager is
// shut down. A Manager runs at most one sweep loop.
func (m *Manager) StartAutoCancel(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("%w: sweep interval must be greater than 0", ErrInvalidInput)
	}

	m.mu.Lock()
	if m.sweeping {
		m.mu.Unlock()
		return fmt.Errorf("auto-cancel sweep is already running")
	}
	m.sweeping = true
	m.mu.Unlock()

	pacer := rate.NewLimiter(rate.Every(interval), 1)

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		for {
			if err := pacer.Wait(m.ctx); err != nil {
				return
			}

			if _, err := m.AutoCancelDue(m.ctx, m.clock()); err != nil {
				m.log.Error("auto-cancel sweep failed", zap.Error(err))
			}
		}
	}()

	m.log.Info("auto-cancel sweep started", zap.Duration("interval", interval))
	return nil
}
