package sync

import (
	"context"
	"log/slog"
	stdsync "sync"
	"time"
)

const defaultTickInterval = 5 * time.Minute

// Scheduler is the part of the engine the trigger drives.
type Scheduler interface {
	SyncPendingItems()
}

// ConnectivityStream is a connectivity monitor the trigger can both poll
// and subscribe to.
type ConnectivityStream interface {
	IsOnline() bool
	Subscribe() (<-chan bool, func())
}

// Trigger fires sync passes without user interaction: on every
// offline-to-online transition and on a periodic tick while online. The
// tick is the safety net for records that failed earlier and are waiting
// for another attempt.
type Trigger struct {
	scheduler Scheduler
	conn      ConnectivityStream
	logger    *slog.Logger
	interval  time.Duration

	cancel context.CancelFunc
	wg     stdsync.WaitGroup
}

// NewTrigger creates a stopped trigger. A non-positive interval selects
// the default.
func NewTrigger(scheduler Scheduler, conn ConnectivityStream, interval time.Duration, logger *slog.Logger) *Trigger {
	if interval <= 0 {
		interval = defaultTickInterval
	}
	return &Trigger{
		scheduler: scheduler,
		conn:      conn,
		interval:  interval,
		logger:    logger,
	}
}

// Start launches the trigger loop.
func (t *Trigger) Start(ctx context.Context) {
	ctx, t.cancel = context.WithCancel(ctx)

	transitions, unsubscribe := t.conn.Subscribe()

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		defer unsubscribe()

		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case online, ok := <-transitions:
				if !ok {
					return
				}
				// The monitor only broadcasts committed transitions, so
				// online here always means an offline-to-online edge.
				if online {
					t.logger.Info("connectivity restored, scheduling sync")
					t.scheduler.SyncPendingItems()
				}
			case <-ticker.C:
				if t.conn.IsOnline() {
					t.logger.Debug("periodic sync tick")
					t.scheduler.SyncPendingItems()
				}
			}
		}
	}()
}

// Stop halts the trigger loop and waits for it to exit.
func (t *Trigger) Stop() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	t.wg.Wait()
}
