package tray

import (
	"testing"

	"pomodoro/internal/core/timer"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApp struct {
	menu  *fyne.Menu
	icons []fyne.Resource
}

func (app *fakeApp) SetSystemTrayMenu(menu *fyne.Menu) { app.menu = menu }

func (app *fakeApp) SetSystemTrayIcon(icon fyne.Resource) { app.icons = append(app.icons, icon) }

func findItem(t *testing.T, menu *fyne.Menu, label string) *fyne.MenuItem {
	t.Helper()
	for _, item := range menu.Items {
		if item.Label == label {
			return item
		}
	}
	require.Failf(t, "menu item not found", "label %q", label)
	return nil
}

func TestSetState(t *testing.T) {
	app := &fakeApp{}
	icons := Icons{
		Work:   fyne.NewStaticResource("work.png", []byte{1}),
		Break:  fyne.NewStaticResource("break.png", []byte{2}),
		Paused: fyne.NewStaticResource("paused.png", []byte{3}),
	}
	manager := New(app, icons, Callbacks{})

	require.NotNil(t, app.menu)
	assert.Equal(t, "Status: Work 00:00 (paused)", manager.statusItem.Label)
	assert.Equal(t, []fyne.Resource{icons.Paused}, app.icons)

	manager.SetState(timer.State{Phase: timer.PhaseBreak, Elapsed: 12, Running: true})
	assert.Equal(t, "Break +00:12", manager.statusItem.Label[len("Status: "):])
	assert.Equal(t, "Pause", manager.toggleItem.Label)
	assert.False(t, manager.skipItem.Disabled)
	assert.Equal(t, icons.Break, app.icons[len(app.icons)-1])

	manager.SetState(timer.State{Phase: timer.PhaseBreak, Elapsed: 13, Running: true})
	assert.Len(t, app.icons, 2)
}

func TestMenuActions(t *testing.T) {
	app := &fakeApp{}
	var calls []string
	manager := New(app, Icons{}, Callbacks{
		OnPlay:        func() { calls = append(calls, "play") },
		OnPause:       func() { calls = append(calls, "pause") },
		OnSkip:        func() { calls = append(calls, "skip") },
		OnReset:       func() { calls = append(calls, "reset") },
		OnShowTimer:   func() { calls = append(calls, "show") },
		OnPreferences: func() { calls = append(calls, "prefs") },
		OnQuit:        func() { calls = append(calls, "quit") },
	})

	findItem(t, app.menu, "Start").Action()
	manager.SetState(timer.State{Phase: timer.PhaseWork, Elapsed: -10, Running: true})
	findItem(t, app.menu, "Pause").Action()
	findItem(t, app.menu, "Skip to next phase").Action()
	findItem(t, app.menu, "Reset").Action()
	findItem(t, app.menu, "Show timer").Action()
	findItem(t, app.menu, "Preferences").Action()
	findItem(t, app.menu, "Quit").Action()

	assert.Equal(t, []string{"play", "pause", "skip", "reset", "show", "prefs", "quit"}, calls)

	menu := manager.Menu()
	assert.Equal(t, "Pomodoro", menu.Label)
	assert.Len(t, menu.Items, len(app.menu.Items))
	assert.Same(t, manager.toggleItem, findItem(t, menu, "Pause"))
	assert.Empty(t, app.icons)
}
