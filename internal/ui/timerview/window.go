package timerview

import (
	"fmt"
	"image/color"

	"pomodoro/internal/core/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines control handlers.
type Callbacks struct {
	OnPlay  func()
	OnPause func()
	OnReset func()
	OnSkip  func()
}

// Config defines the timer window.
type Config struct {
	Title string
	// Debug shows the raw engine state under the clock face.
	Debug bool
}

// Window shows the clock face and the controls for the current state.
type Window struct {
	window      fyne.Window
	config      Config
	display     *canvas.Text
	phaseLabel  *widget.Label
	resetButton *widget.Button
	playButton  *widget.Button
	pauseButton *widget.Button
	skipButton  *widget.Button
	debugLabel  *widget.Label
	state       timer.State
}

var textColor = color.NRGBA{R: 71, G: 85, B: 105, A: 255}

// New creates the timer window. Controls call back on the UI goroutine.
func New(app fyne.App, config Config, callbacks Callbacks) *Window {
	if config.Title == "" {
		config.Title = "Pomodoro"
	}
	window := app.NewWindow(config.Title)

	display := canvas.NewText("00:00", textColor)
	display.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
	display.TextSize = 48

	phaseLabel := widget.NewLabelWithStyle("Work", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	resetButton := widget.NewButtonWithIcon("", theme.MediaReplayIcon(), callback(callbacks.OnReset))
	playButton := widget.NewButtonWithIcon("", theme.MediaPlayIcon(), callback(callbacks.OnPlay))
	playButton.Importance = widget.SuccessImportance
	pauseButton := widget.NewButtonWithIcon("", theme.MediaPauseIcon(), callback(callbacks.OnPause))
	skipButton := widget.NewButtonWithIcon("", theme.MediaSkipNextIcon(), callback(callbacks.OnSkip))
	skipButton.Importance = widget.SuccessImportance

	debugLabel := widget.NewLabel("")
	if !config.Debug {
		debugLabel.Hide()
	}

	controls := container.NewHBox(resetButton, playButton, pauseButton, skipButton)
	content := container.NewVBox(
		phaseLabel,
		container.NewHBox(display, controls),
		debugLabel,
	)
	window.SetContent(container.NewPadded(content))

	view := &Window{
		window:      window,
		config:      config,
		display:     display,
		phaseLabel:  phaseLabel,
		resetButton: resetButton,
		playButton:  playButton,
		pauseButton: pauseButton,
		skipButton:  skipButton,
		debugLabel:  debugLabel,
	}
	view.Render(timer.State{Phase: timer.PhaseWork})
	return view
}

// Window returns the underlying fyne window.
func (view *Window) Window() fyne.Window {
	return view.window
}

// Show displays the window.
func (view *Window) Show() {
	view.window.Show()
}

// Focus brings the window to the front.
func (view *Window) Focus() {
	view.window.Show()
	view.window.RequestFocus()
}

// Render updates the clock face and control visibility. Call on the UI goroutine.
func (view *Window) Render(state timer.State) {
	view.state = state

	view.display.Text = state.Display()
	view.display.Refresh()
	view.phaseLabel.SetText(state.Phase.Title())

	controls := state.Controls()
	setVisible(view.resetButton, controls.Reset)
	setVisible(view.playButton, controls.Play)
	setVisible(view.pauseButton, controls.Pause)
	setVisible(view.skipButton, controls.Skip)

	if view.config.Debug {
		view.debugLabel.SetText(fmt.Sprintf(
			"time: %d\nisRunning: %t\nisWorkTime: %t\nnotificationsEnabled: %t",
			state.Elapsed, state.Running, state.Phase == timer.PhaseWork, state.NotificationsEnabled,
		))
	}
}

// State returns the last rendered state.
func (view *Window) State() timer.State {
	return view.state
}

func setVisible(object fyne.CanvasObject, visible bool) {
	if visible {
		object.Show()
		return
	}
	object.Hide()
}

func callback(handler func()) func() {
	return func() {
		if handler != nil {
			handler()
		}
	}
}
