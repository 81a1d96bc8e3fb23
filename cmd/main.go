package main

import (
	"io"
	"os"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/logging"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/preferences"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
)

const appName = "Pomodoro"

const (
	frontendDesktop  = "desktop"
	frontendTerminal = "terminal"
)

type cli struct {
	Frontend  string        `enum:"desktop,terminal" default:"desktop" help:"User interface to run (${enum})."`
	Debug     bool          `help:"Use 6s work and 3s break intervals and show the raw timer state."`
	Work      time.Duration `help:"Work interval; overrides saved settings."`
	Break     time.Duration `help:"Break interval; overrides saved settings."`
	NoNotify  bool          `help:"Disable phase-complete notifications."`
	LogLevel  string        `enum:"trace,debug,info,warn,error" default:"info" help:"Log level (${enum})."`
	LogFormat string        `enum:"terminal,json" default:"terminal" help:"Log format (${enum})."`
	LogFile   string        `type:"path" help:"Append logs to this file."`
}

func main() {
	var flags cli
	kctx := kong.Parse(&flags,
		kong.Name("pomodoro"),
		kong.Description("A Pomodoro timer for the desktop and the terminal."),
		kong.UsageOnError(),
	)

	log, closeLog, err := flags.logger()
	kctx.FatalIfErrorf(err)

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Warn().Err(err).Msg("load settings, using defaults")
	}

	config := flags.timerConfig(settings)
	log.Info().
		Str("frontend", flags.Frontend).
		Dur("work", config.Work).
		Dur("break", config.Break).
		Msg("starting")

	err = func() error {
		defer log.Info().Msg("stopped")

		if flags.Frontend == frontendTerminal {
			return runTerminal(flags, config, settings, log)
		}
		return runDesktop(flags, config, settings, log)
	}()
	if err != nil {
		log.Error().Err(err).Msg("stopped by error")
	}
	_ = closeLog()

	kctx.FatalIfErrorf(err)
}

// timerConfig applies the command line on top of the saved settings.
func (flags cli) timerConfig(settings preferences.Settings) model.TimerConfig {
	config := settings.TimerConfig()
	if flags.Debug {
		config = model.DebugTimerConfig()
	}
	if flags.Work > 0 {
		config.Work = flags.Work
	}
	if flags.Break > 0 {
		config.Break = flags.Break
	}
	return config
}

// durationsPinned reports whether the command line overrides saved durations.
func (flags cli) durationsPinned() bool {
	return flags.Debug || flags.Work > 0 || flags.Break > 0
}

func (flags cli) notificationsEnabled(settings preferences.Settings) bool {
	return settings.Notifications && !flags.NoNotify
}

// logger builds the logger and the function that flushes it on exit.
func (flags cli) logger() (zerolog.Logger, func() error, error) {
	closeLog := func() error { return nil }

	level, err := logging.ParseLevel(flags.LogLevel)
	if err != nil {
		return zerolog.Nop(), closeLog, err
	}

	var output io.Writer = os.Stderr
	switch {
	case flags.LogFile != "":
		file, err := logging.Output(flags.LogFile)
		if err != nil {
			return zerolog.Nop(), closeLog, err
		}
		output = file
		closeLog = file.Close
	case flags.Frontend == frontendTerminal:
		// The terminal UI owns the screen.
		output = io.Discard
	}

	return logging.Setup(output, level, flags.LogFormat, false), closeLog, nil
}
