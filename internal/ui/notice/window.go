package notice

import (
	"image/color"

	"pomodoro/internal/core/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// Window is the notice surface. Open and Dismiss map to the click and close
// callbacks of the notification on display.
type Window struct {
	window        fyne.Window
	background    *canvas.Rectangle
	titleLabel    *canvas.Text
	bodyLabel     *widget.Label
	openButton    *widget.Button
	dismissButton *widget.Button
}

var (
	workColor  = color.NRGBA{R: 196, G: 58, B: 49, A: 235}
	breakColor = color.NRGBA{R: 46, G: 125, B: 80, A: 235}
)

func newWindow(app fyne.App, onOpen, onDismiss func()) *Window {
	var window fyne.Window
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		window = driver.CreateSplashWindow()
	} else {
		window = app.NewWindow("Pomodoro")
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)
	window.SetCloseIntercept(onDismiss)

	background := canvas.NewRectangle(workColor)

	titleLabel := canvas.NewText("", color.White)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.TextSize = 20

	bodyLabel := widget.NewLabel("")
	bodyLabel.Wrapping = fyne.TextWrapWord

	openButton := widget.NewButton("Open", onOpen)
	openButton.Importance = widget.HighImportance
	dismissButton := widget.NewButton("Dismiss", onDismiss)

	content := container.NewPadded(container.NewVBox(
		titleLabel,
		bodyLabel,
		container.NewHBox(layout.NewSpacer(), dismissButton, openButton),
	))
	window.SetContent(container.NewStack(background, content))
	window.Resize(fyne.NewSize(340, 140))

	return &Window{
		window:        window,
		background:    background,
		titleLabel:    titleLabel,
		bodyLabel:     bodyLabel,
		openButton:    openButton,
		dismissButton: dismissButton,
	}
}

// Present fills the window for notification and raises it.
func (notice *Window) Present(notification timer.Notification) {
	notice.titleLabel.Text = notification.Title
	notice.titleLabel.Refresh()
	notice.bodyLabel.SetText(notification.Body)

	notice.background.FillColor = workColor
	if notification.Phase == timer.PhaseBreak {
		notice.background.FillColor = breakColor
	}
	notice.background.Refresh()

	notice.window.CenterOnScreen()
	notice.window.Show()
	notice.window.RequestFocus()
}

// Hide removes the window from screen.
func (notice *Window) Hide() {
	notice.window.Hide()
}
