package timerview

import (
	"testing"

	"pomodoro/internal/core/timer"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestRenderControls(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	view := New(app, Config{}, Callbacks{})

	view.Render(timer.State{Phase: timer.PhaseWork, Elapsed: -1500})
	assert.Equal(t, "25:00", view.display.Text)
	assert.Equal(t, "Work", view.phaseLabel.Text)
	assert.True(t, view.playButton.Visible())
	assert.False(t, view.pauseButton.Visible())
	assert.False(t, view.skipButton.Visible())
	assert.True(t, view.resetButton.Visible())

	running := timer.State{Phase: timer.PhaseBreak, Elapsed: 65, Running: true}
	view.Render(running)
	assert.Equal(t, running, view.State())
	assert.Equal(t, "+01:05", view.display.Text)
	assert.Equal(t, "Break", view.phaseLabel.Text)
	assert.False(t, view.playButton.Visible())
	assert.True(t, view.pauseButton.Visible())
	assert.True(t, view.skipButton.Visible())
	assert.False(t, view.debugLabel.Visible())
}

func TestButtonsInvokeCallbacks(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var calls []string
	view := New(app, Config{}, Callbacks{
		OnPlay:  func() { calls = append(calls, "play") },
		OnPause: func() { calls = append(calls, "pause") },
		OnReset: func() { calls = append(calls, "reset") },
		OnSkip:  func() { calls = append(calls, "skip") },
	})

	test.Tap(view.playButton)
	test.Tap(view.pauseButton)
	test.Tap(view.skipButton)
	test.Tap(view.resetButton)
	assert.Equal(t, []string{"play", "pause", "skip", "reset"}, calls)
}

func TestDebugPanel(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	view := New(app, Config{Debug: true}, Callbacks{})
	view.Render(timer.State{Phase: timer.PhaseWork, Elapsed: -6, NotificationsEnabled: true})

	assert.True(t, view.debugLabel.Visible())
	assert.Contains(t, view.debugLabel.Text, "time: -6")
	assert.Contains(t, view.debugLabel.Text, "isRunning: false")
	assert.Contains(t, view.debugLabel.Text, "isWorkTime: true")
	assert.Contains(t, view.debugLabel.Text, "notificationsEnabled: true")
}
