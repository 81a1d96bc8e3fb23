package timer

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"pomodoro/internal/core/model"

	"github.com/rs/zerolog"
)

// ErrInvalidDuration indicates a phase duration shorter than one second.
var ErrInvalidDuration = errors.New("phase durations must be at least one second")

// Options contains the collaborators of an Engine.
type Options struct {
	Clock    Clock
	Notifier Notifier
	Logger   *zerolog.Logger
}

// Engine is the Pomodoro state machine. It counts signed elapsed seconds through
// alternating work and break phases, raises a notification when a phase reaches
// zero and keeps counting into overtime until the user moves on.
type Engine struct {
	mu         sync.Mutex
	config     model.TimerConfig
	pending    *model.TimerConfig
	clock      Clock
	notifier   Notifier
	foreground func()
	log        zerolog.Logger

	phase                Phase
	elapsed              int
	running              bool
	notificationsEnabled bool
	active               NotificationHandle
	activeSeq            uint64
	notificationSeq      uint64
	generation           uint64
	closed               bool

	events []chan Event
}

// New creates an Engine in the work phase, stopped, with the full work duration
// remaining. Notification permission is requested once here and never again.
func New(config model.TimerConfig, options Options) (*Engine, error) {
	if err := validate(config); err != nil {
		return nil, err
	}

	log := zerolog.Nop()
	if options.Logger != nil {
		log = options.Logger.With().Str("module", "timer").Logger()
	}

	engine := &Engine{
		config:   config,
		clock:    options.Clock,
		notifier: options.Notifier,
		log:      log,
		phase:    PhaseWork,
		elapsed:  -config.WorkSeconds(),
	}

	if engine.notifier != nil {
		permission := engine.notifier.RequestPermission()
		engine.notificationsEnabled = permission == PermissionGranted
		if !engine.notificationsEnabled {
			engine.log.Info().Stringer("permission", permission).Msg("notifications disabled")
		}
	}

	return engine, nil
}

func validate(config model.TimerConfig) error {
	if !config.Valid() {
		return fmt.Errorf("work %s, break %s: %w", config.Work, config.Break, ErrInvalidDuration)
	}
	return nil
}

// SetForegrounder injects the hook that brings the UI to the front when a
// notification is clicked.
func (engine *Engine) SetForegrounder(foreground func()) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.foreground = foreground
}

// Subscribe registers a new observer channel. Slow observers miss events rather
// than block the engine.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		close(ch)
		return ch
	}
	engine.events = append(engine.events, ch)
	return ch
}

// Snapshot returns a copy of the current state.
func (engine *Engine) Snapshot() State {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.stateLocked()
}

// Config returns the durations currently in effect.
func (engine *Engine) Config() model.TimerConfig {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.config
}

// Tick advances the timer by one second. It is a no-op unless running.
func (engine *Engine) Tick() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.tickLocked(engine.generation)
}

// Play starts the clock. It is a no-op when already running.
func (engine *Engine) Play() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed || engine.running {
		return
	}

	engine.running = true
	engine.generation++
	generation := engine.generation
	if engine.clock != nil {
		engine.clock.Start(func() {
			engine.mu.Lock()
			defer engine.mu.Unlock()
			engine.tickLocked(generation)
		})
	}
	engine.emitLocked(EventStateChange, "play")
}

// Pause stops the clock without touching the elapsed time or phase.
func (engine *Engine) Pause() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if !engine.running {
		return
	}
	engine.stopLocked()
	engine.emitLocked(EventStateChange, "pause")
}

// Reset returns to a stopped work phase with the full work duration remaining and
// releases the active notification, if any.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return
	}
	engine.stopLocked()
	engine.applyPendingLocked()
	engine.phase = PhaseWork
	engine.elapsed = -engine.config.WorkSeconds()
	engine.releaseNotificationLocked()
	engine.emitLocked(EventStateChange, "reset")
}

// SwitchPhase flips between work and break and restarts the count for the new
// phase. The running flag is left as it is.
func (engine *Engine) SwitchPhase() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return
	}
	engine.switchPhaseLocked()
	engine.emitLocked(EventStateChange, "switch")
}

// Skip moves on to the next phase once the current one is in overtime. It stops
// the clock and releases the active notification. Outside of running overtime it
// does nothing.
func (engine *Engine) Skip() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed || !engine.running || engine.elapsed <= 0 {
		engine.log.Debug().Bool("running", engine.running).Int("elapsed", engine.elapsed).Msg("skip ignored")
		return
	}
	engine.switchPhaseLocked()
	engine.stopLocked()
	engine.releaseNotificationLocked()
	engine.emitLocked(EventStateChange, "skip")
}

// UpdateConfig replaces the phase durations. A phase that has not started yet
// picks up the new duration at once; otherwise it applies from the next phase.
func (engine *Engine) UpdateConfig(config model.TimerConfig) error {
	if err := validate(config); err != nil {
		return err
	}

	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return nil
	}

	untouched := !engine.running && engine.elapsed == -engine.durationLocked(engine.phase)
	engine.pending = &config
	if untouched {
		engine.applyPendingLocked()
		engine.elapsed = -engine.durationLocked(engine.phase)
		engine.emitLocked(EventStateChange, "config")
	}
	return nil
}

// Close tears the engine down: the clock stops, the active notification is
// released and observer channels are closed. Later calls are no-ops.
func (engine *Engine) Close() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.stopLocked()
	engine.releaseNotificationLocked()
	engine.closed = true
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (engine *Engine) tickLocked(generation uint64) {
	if engine.closed || !engine.running || generation != engine.generation {
		return
	}
	engine.elapsed++
	engine.emitLocked(EventTick, "")
	if engine.elapsed == 0 {
		engine.emitLocked(EventPhaseComplete, engine.phase.Title())
		engine.notifyPhaseCompleteLocked()
	}
}

func (engine *Engine) notifyPhaseCompleteLocked() {
	if !engine.notificationsEnabled || engine.notifier == nil {
		return
	}
	engine.releaseNotificationLocked()

	engine.notificationSeq++
	seq := engine.notificationSeq
	notification := completionNotification(engine.phase)

	handle, err := engine.notifier.Show(notification, NotificationCallbacks{
		OnClick: func() { engine.handleNotificationClick(seq) },
		OnClose: func() { engine.handleNotificationClose(seq) },
	})
	if err != nil {
		engine.log.Warn().Err(err).Str("title", notification.Title).Msg("show notification")
		return
	}
	if handle == nil {
		return
	}

	engine.active = handle
	engine.activeSeq = seq
	engine.log.Debug().Str("notification", handle.ID()).Str("title", notification.Title).Msg("notification shown")
	engine.emitLocked(EventNotificationShown, notification.Title)
}

func (engine *Engine) handleNotificationClick(seq uint64) {
	engine.mu.Lock()
	if engine.closed || engine.active == nil || engine.activeSeq != seq {
		engine.mu.Unlock()
		return
	}
	engine.switchPhaseLocked()
	engine.stopLocked()
	engine.releaseNotificationLocked()
	engine.emitLocked(EventStateChange, "notification")
	foreground := engine.foreground
	engine.mu.Unlock()

	if foreground != nil {
		foreground()
	}
}

func (engine *Engine) handleNotificationClose(seq uint64) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed || engine.active == nil || engine.activeSeq != seq {
		return
	}
	engine.active = nil
	engine.activeSeq = 0
	engine.emitLocked(EventNotificationClosed, "dismissed")
}

func (engine *Engine) releaseNotificationLocked() {
	if engine.active == nil {
		return
	}
	engine.active.Close()
	engine.active = nil
	engine.activeSeq = 0
	engine.emitLocked(EventNotificationClosed, "released")
}

func (engine *Engine) switchPhaseLocked() {
	engine.applyPendingLocked()
	engine.phase = engine.phase.Next()
	engine.elapsed = -engine.durationLocked(engine.phase)
}

func (engine *Engine) stopLocked() {
	if !engine.running {
		return
	}
	engine.running = false
	engine.generation++
	if engine.clock != nil {
		engine.clock.Stop()
	}
}

func (engine *Engine) applyPendingLocked() {
	if engine.pending == nil {
		return
	}
	engine.config = *engine.pending
	engine.pending = nil
}

func (engine *Engine) durationLocked(phase Phase) int {
	if phase == PhaseBreak {
		return engine.config.BreakSeconds()
	}
	return engine.config.WorkSeconds()
}

func (engine *Engine) stateLocked() State {
	return State{
		Phase:                engine.phase,
		Elapsed:              engine.elapsed,
		Running:              engine.running,
		NotificationsEnabled: engine.notificationsEnabled,
		HasNotification:      engine.active != nil,
	}
}

func (engine *Engine) emitLocked(eventType EventType, message string) {
	if len(engine.events) == 0 {
		return
	}
	event := Event{
		Type:    eventType,
		State:   engine.stateLocked(),
		Message: message,
		At:      time.Now(),
	}
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
