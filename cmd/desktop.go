package main

import (
	"errors"
	"os"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timer"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/notice"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/timerview"
	"pomodoro/internal/ui/tray"
	"pomodoro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/rs/zerolog"
)

func runDesktop(flags cli, config model.TimerConfig, settings preferences.Settings, log zerolog.Logger) error {
	lock, err := platform.AcquireInstanceLock(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Info().Err(err).Msg("bringing running instance forward")
			return platform.ActivateRunningInstance(appName, time.Second)
		}
		return err
	}
	defer func() {
		_ = lock.Release()
	}()

	fyneApp := app.NewWithID("com.pomodoro.timer")
	fyneApp.SetIcon(resources.MustIcon(resources.IconWork))

	notifier := notice.New(fyneApp, notice.Config{
		Enabled: flags.notificationsEnabled(settings),
		System:  settings.SystemNotifications,
	}, &log)
	engine, err := timer.New(config, timer.Options{
		Clock:    timer.NewTickerClock(time.Second, fyne.Do),
		Notifier: notifier,
		Logger:   &log,
	})
	if err != nil {
		return err
	}
	defer engine.Close()

	view := timerview.New(fyneApp, timerview.Config{Title: appName, Debug: flags.Debug}, timerview.Callbacks{
		OnPlay:  engine.Play,
		OnPause: engine.Pause,
		OnReset: engine.Reset,
		OnSkip:  engine.Skip,
	})
	engine.SetForegrounder(view.Focus)
	lock.Serve(func() {
		fyne.Do(view.Focus)
	})

	autostart := newAutostart(log)
	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if err := storage.SaveSettings(appName, updated); err != nil {
			log.Error().Err(err).Msg("save settings")
		}
		if updated.LaunchAtLogin != settings.LaunchAtLogin {
			if err := autostart.Set(updated.LaunchAtLogin); err != nil {
				log.Warn().Err(err).Msg("update login item")
			}
		}
		settings = updated
		if flags.durationsPinned() {
			log.Info().Msg("durations set on the command line; saved values apply on next start")
			return
		}
		if err := engine.UpdateConfig(updated.TimerConfig()); err != nil {
			log.Warn().Err(err).Msg("update timer config")
		}
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Icons{
			Work:   resources.MustIcon(resources.IconWork),
			Break:  resources.MustIcon(resources.IconBreak),
			Paused: resources.MustIcon(resources.IconPaused),
		}, tray.Callbacks{
			OnShowTimer:   view.Focus,
			OnPreferences: prefsWindow.Show,
			OnPlay:        engine.Play,
			OnPause:       engine.Pause,
			OnSkip:        engine.Skip,
			OnReset:       engine.Reset,
			OnQuit:        fyneApp.Quit,
		})
		view.Window().SetCloseIntercept(view.Window().Hide)
	} else {
		log.Info().Msg("system tray unsupported on this platform")
		view.Window().SetMaster()
	}

	follow(engine, 16, fyne.Do, func(state timer.State) {
		view.Render(state)
		if trayManager != nil {
			trayManager.SetState(state)
		}
	})

	initial := engine.Snapshot()
	view.Render(initial)
	if trayManager != nil {
		trayManager.SetState(initial)
	}
	view.Show()
	fyneApp.Run()
	return nil
}

func newAutostart(log zerolog.Logger) *platform.Autostart {
	execPath, err := os.Executable()
	if err != nil {
		log.Warn().Err(err).Msg("resolve executable for login item")
	}
	return platform.NewAutostart(appName, execPath)
}

// follow renders the engine state through dispatch after every event. Slow
// subscribers miss events, so each render reads a fresh snapshot.
func follow(engine *timer.Engine, buffer int, dispatch func(func()), render func(timer.State)) {
	events := engine.Subscribe(buffer)
	go func() {
		for range events {
			dispatch(func() {
				render(engine.Snapshot())
			})
		}
	}()
}
