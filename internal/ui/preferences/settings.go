package preferences

import (
	"time"

	"pomodoro/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	WorkDuration  time.Duration
	BreakDuration time.Duration
	Notifications       bool
	SystemNotifications bool
	LaunchAtLogin       bool
}

// DefaultSettings returns the 25/5 schedule with notifications on.
func DefaultSettings() Settings {
	config := model.DefaultTimerConfig()
	return Settings{
		WorkDuration:  config.Work,
		BreakDuration: config.Break,
		Notifications: true,
	}
}

// TimerConfig converts settings to the engine configuration.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		Work:  settings.WorkDuration,
		Break: settings.BreakDuration,
	}
}
