package tray

import (
	"fmt"

	"pomodoro/internal/core/timer"

	"fyne.io/fyne/v2"
)

// App is the part of desktop.App the tray needs.
type App interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowTimer   func()
	OnPreferences func()
	OnPlay        func()
	OnPause       func()
	OnSkip        func()
	OnReset       func()
	OnQuit        func()
}

// Icons are swapped in as the timer changes state. Nil icons are skipped.
type Icons struct {
	Work   fyne.Resource
	Break  fyne.Resource
	Paused fyne.Resource
}

// Manager handles system tray state.
type Manager struct {
	app        App
	callbacks  Callbacks
	icons      Icons
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	skipItem   *fyne.MenuItem
	state      timer.State
	icon       fyne.Resource
}

// New creates a tray manager with the provided callbacks.
func New(app App, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		icons:     icons,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem("Start", manager.toggle)

	manager.skipItem = fyne.NewMenuItem("Skip to next phase", func() {
		invoke(manager.callbacks.OnSkip)
	})
	manager.skipItem.Disabled = true

	manager.SetState(timer.State{Phase: timer.PhaseWork})
	return manager
}

// SetState refreshes the status line, menu items and icon.
func (manager *Manager) SetState(state timer.State) {
	manager.state = state
	controls := state.Controls()

	if controls.Play {
		manager.toggleItem.Label = "Start"
	} else {
		manager.toggleItem.Label = "Pause"
	}
	manager.skipItem.Disabled = !controls.Skip
	manager.statusItem.Label = statusLabel(state)

	manager.refreshIcon()
	manager.refreshMenu()
}

// Menu returns the menu currently installed.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.buildMenu()
}

func (manager *Manager) toggle() {
	if manager.state.Controls().Play {
		invoke(manager.callbacks.OnPlay)
		return
	}
	invoke(manager.callbacks.OnPause)
}

func (manager *Manager) refreshIcon() {
	icon := manager.icons.Work
	switch {
	case !manager.state.Running:
		icon = manager.icons.Paused
	case manager.state.Phase == timer.PhaseBreak:
		icon = manager.icons.Break
	}
	if icon == nil || icon == manager.icon {
		return
	}
	manager.icon = icon
	if manager.app != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.buildMenu())
	}
}

func (manager *Manager) buildMenu() *fyne.Menu {
	return fyne.NewMenu("Pomodoro",
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		manager.skipItem,
		fyne.NewMenuItem("Reset", func() {
			invoke(manager.callbacks.OnReset)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show timer", func() {
			invoke(manager.callbacks.OnShowTimer)
		}),
		fyne.NewMenuItem("Preferences", func() {
			invoke(manager.callbacks.OnPreferences)
		}),
		fyne.NewMenuItem("Quit", func() {
			invoke(manager.callbacks.OnQuit)
		}),
	)
}

func statusLabel(state timer.State) string {
	status := fmt.Sprintf("Status: %s %s", state.Phase.Title(), state.Display())
	if !state.Running {
		status = fmt.Sprintf("%s (paused)", status)
	}
	return status
}

func invoke(handler func()) {
	if handler != nil {
		handler()
	}
}
