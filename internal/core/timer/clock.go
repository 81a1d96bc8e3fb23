package timer

import (
	"sync"
	"time"
)

// Clock delivers ticks to the engine while it is running.
type Clock interface {
	Start(tick func())
	Stop()
}

// TickerClock is a fixed-interval Clock backed by time.Ticker. Ticks are not
// corrected for drift and missed ticks are not replayed.
type TickerClock struct {
	mu       sync.Mutex
	interval time.Duration
	dispatch func(func())
	stopCh   chan struct{}
	done     chan struct{}
}

// NewTickerClock creates a clock. dispatch, when set, is used to hand each tick to
// the goroutine that owns the engine (for example fyne.Do).
func NewTickerClock(interval time.Duration, dispatch func(func())) *TickerClock {
	if interval <= 0 {
		interval = time.Second
	}
	return &TickerClock{
		interval: interval,
		dispatch: dispatch,
	}
}

// Start launches the ticking loop, replacing any loop already running.
func (clock *TickerClock) Start(tick func()) {
	clock.mu.Lock()
	defer clock.mu.Unlock()

	clock.stopLocked()
	stopCh := make(chan struct{})
	done := make(chan struct{})
	clock.stopCh = stopCh
	clock.done = done

	go clock.run(tick, stopCh, done)
}

// Stop terminates the ticking loop. It does not wait for the loop to exit.
func (clock *TickerClock) Stop() {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.stopLocked()
}

// Wait blocks until the most recently started loop has exited.
func (clock *TickerClock) Wait() {
	clock.mu.Lock()
	done := clock.done
	clock.mu.Unlock()
	if done != nil {
		<-done
	}
}

func (clock *TickerClock) stopLocked() {
	if clock.stopCh == nil {
		return
	}
	close(clock.stopCh)
	clock.stopCh = nil
}

func (clock *TickerClock) run(tick func(), stopCh <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(clock.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			select {
			case <-stopCh:
				return
			default:
			}
			if clock.dispatch != nil {
				clock.dispatch(tick)
			} else {
				tick()
			}
		}
	}
}
