package term

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg carries the generation of the Start call that scheduled it so ticks
// scheduled before a Stop are dropped.
type tickMsg struct {
	generation uint64
}

// Clock is a timer.Clock that runs inside the bubbletea event loop. The engine
// arms it through Start; the model turns the armed state into a tea.Tick command
// and delivers the tick from Update.
type Clock struct {
	mu         sync.Mutex
	interval   time.Duration
	tick       func()
	generation uint64
	armed      bool
}

// NewClock creates a clock with the given tick interval.
func NewClock(interval time.Duration) *Clock {
	if interval <= 0 {
		interval = time.Second
	}
	return &Clock{interval: interval}
}

// Start arms the clock.
func (clock *Clock) Start(tick func()) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.generation++
	clock.tick = tick
	clock.armed = true
}

// Stop disarms the clock. Ticks already scheduled are ignored when they arrive.
func (clock *Clock) Stop() {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.generation++
	clock.tick = nil
	clock.armed = false
}

// Schedule returns the command for the next tick, or nil when nothing is pending.
func (clock *Clock) Schedule() tea.Cmd {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	if !clock.armed {
		return nil
	}
	clock.armed = false
	generation := clock.generation
	return tea.Tick(clock.interval, func(time.Time) tea.Msg {
		return tickMsg{generation: generation}
	})
}

// fire runs the tick for msg if it is still current and re-arms the clock.
func (clock *Clock) fire(msg tickMsg) bool {
	clock.mu.Lock()
	if msg.generation != clock.generation || clock.tick == nil {
		clock.mu.Unlock()
		return false
	}
	tick := clock.tick
	clock.armed = true
	clock.mu.Unlock()

	tick()
	return true
}
