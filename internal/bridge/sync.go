package bridge

import (
	"context"
	"sync"
	"time"
)

// Broadcaster periodically publishes the current UTC epoch to clock/sync
// so the device can correct RTC drift independent of user activity.
//
// It reads only the clock, never the state store, and blocks only on its
// own ticker between cycles. The ticker fires on a fixed schedule, so a
// slow publish does not push later cycles out.
type Broadcaster struct {
	bridge   *Bridge
	interval time.Duration
	logger   Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewBroadcaster creates a Broadcaster publishing through the given bridge.
func NewBroadcaster(bridge *Bridge, interval time.Duration) *Broadcaster {
	return &Broadcaster{
		bridge:   bridge,
		interval: interval,
		logger:   noopLogger{},
	}
}

// SetLogger sets the logger for the broadcaster.
func (b *Broadcaster) SetLogger(logger Logger) {
	b.logger = logger
}

// Start launches the periodic sync loop in a background goroutine.
//
// The first sync is published immediately so a freshly started bridge
// corrects the device without waiting a full interval. The loop runs
// until the context is cancelled or Close is called.
func (b *Broadcaster) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	b.cancel = cancel

	b.wg.Add(1)
	go b.run(runCtx)
}

// run is the broadcast loop.
func (b *Broadcaster) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	b.publish()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.publish()
		}
	}
}

// publish sends one sync broadcast. Failures are logged and swallowed;
// the next cycle retries.
func (b *Broadcaster) publish() {
	if err := b.bridge.PublishSync("interval"); err != nil {
		b.logger.Warn("sync broadcast failed", "error", err)
		return
	}
	b.logger.Debug("sync broadcast published", "interval", b.interval)
}

// Close stops the broadcast loop and waits for it to exit.
func (b *Broadcaster) Close() {
	if b.cancel != nil {
		b.cancel()
	}
	b.wg.Wait()
}
