package preferences

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window        fyne.Window
	settings      Settings
	onSave        func(Settings)
	workMinutes   *widget.Entry
	breakMinutes  *widget.Entry
	notifications *widget.Check
	systemNotices *widget.Check
	launchAtLogin *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Pomodoro Settings")

	workMinutes := widget.NewEntry()
	breakMinutes := widget.NewEntry()
	notifications := widget.NewCheck("Notify when a phase completes (applies after restart)", nil)
	systemNotices := widget.NewCheck("Also post to the system notification area", nil)
	launchAtLogin := widget.NewCheck("Start when I log in", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Intervals", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work for"), workMinutes, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Break for"), breakMinutes, widget.NewLabel("min")),
		notifications,
		systemNotices,
		launchAtLogin,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 280))
	window.SetCloseIntercept(window.Hide)

	prefs := &Window{
		window:        window,
		onSave:        onSave,
		workMinutes:   workMinutes,
		breakMinutes:  breakMinutes,
		notifications: notifications,
		systemNotices: systemNotices,
		launchAtLogin: launchAtLogin,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.workMinutes.SetText(strconv.Itoa(int(settings.WorkDuration / time.Minute)))
	prefs.breakMinutes.SetText(strconv.Itoa(int(settings.BreakDuration / time.Minute)))
	prefs.notifications.SetChecked(settings.Notifications)
	prefs.systemNotices.SetChecked(settings.SystemNotifications)
	prefs.launchAtLogin.SetChecked(settings.LaunchAtLogin)
}

// Settings returns the last saved values.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.workMinutes.Text); ok {
		settings.WorkDuration = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.breakMinutes.Text); ok {
		settings.BreakDuration = time.Duration(minutes) * time.Minute
	}
	settings.Notifications = prefs.notifications.Checked
	settings.SystemNotifications = prefs.systemNotices.Checked
	settings.LaunchAtLogin = prefs.launchAtLogin.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
