package main

import (
	"errors"
	"os"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timer"
	"pomodoro/internal/term"
	"pomodoro/internal/ui/preferences"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var errNoTerminal = errors.New("terminal frontend needs an interactive terminal")

func runTerminal(flags cli, config model.TimerConfig, settings preferences.Settings, log zerolog.Logger) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errNoTerminal
	}

	clock := term.NewClock(time.Second)
	notifier := term.NewNotifier(flags.notificationsEnabled(settings))
	engine, err := timer.New(config, timer.Options{
		Clock:    clock,
		Notifier: notifier,
		Logger:   &log,
	})
	if err != nil {
		return err
	}
	defer engine.Close()

	return term.Run(engine, clock, notifier, term.Config{
		Debug:  flags.Debug,
		Logger: &log,
	})
}
