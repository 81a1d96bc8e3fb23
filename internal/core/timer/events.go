package timer

import "time"

// Phase is the part of the Pomodoro cycle the engine is counting.
type Phase string

const (
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

// Next returns the phase that follows.
func (phase Phase) Next() Phase {
	if phase == PhaseWork {
		return PhaseBreak
	}
	return PhaseWork
}

// Title returns a human readable phase name.
func (phase Phase) Title() string {
	if phase == PhaseBreak {
		return "Break"
	}
	return "Work"
}

// EventType defines the type of engine event.
type EventType string

const (
	EventStateChange        EventType = "state_change"
	EventTick               EventType = "tick"
	EventPhaseComplete      EventType = "phase_complete"
	EventNotificationShown  EventType = "notification_shown"
	EventNotificationClosed EventType = "notification_closed"
)

// Event represents an engine update for observers.
type Event struct {
	Type    EventType
	State   State
	Message string
	At      time.Time
}
