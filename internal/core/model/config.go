package model

import "time"

// TimerConfig contains the phase durations for the Pomodoro engine.
type TimerConfig struct {
	Work  time.Duration
	Break time.Duration
}

// DefaultTimerConfig returns the classic 25/5 schedule.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		Work:  25 * time.Minute,
		Break: 5 * time.Minute,
	}
}

// DebugTimerConfig returns a short schedule for manual testing.
func DebugTimerConfig() TimerConfig {
	return TimerConfig{
		Work:  6 * time.Second,
		Break: 3 * time.Second,
	}
}

// WorkSeconds returns the work duration truncated to whole seconds.
func (config TimerConfig) WorkSeconds() int {
	return int(config.Work / time.Second)
}

// BreakSeconds returns the break duration truncated to whole seconds.
func (config TimerConfig) BreakSeconds() int {
	return int(config.Break / time.Second)
}

// Valid reports whether both phases last at least one second.
func (config TimerConfig) Valid() bool {
	return config.WorkSeconds() > 0 && config.BreakSeconds() > 0
}
