package notice

import (
	"errors"

	"pomodoro/internal/core/timer"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrNoApp indicates the notifier was built without a running fyne app.
var ErrNoApp = errors.New("notice: no fyne app")

// Config controls how phase notifications are delivered.
type Config struct {
	// Enabled is the user's notification preference. It is the permission the
	// engine reads once at startup.
	Enabled bool
	// System also posts a platform notification. It carries no actions, so it
	// only mentions the phase that finished.
	System bool
}

// Notifier shows phase-complete notices in a small window that can be clicked
// or dismissed. All methods run on the fyne UI goroutine.
type Notifier struct {
	app     fyne.App
	config  Config
	log     zerolog.Logger
	window  *Window
	current *Handle
}

// Handle is a live notice.
type Handle struct {
	id        string
	notifier  *Notifier
	callbacks timer.NotificationCallbacks
	closed    bool
}

// New creates a notifier bound to app.
func New(app fyne.App, config Config, log *zerolog.Logger) *Notifier {
	logger := zerolog.Nop()
	if log != nil {
		logger = log.With().Str("module", "notice").Logger()
	}
	return &Notifier{
		app:    app,
		config: config,
		log:    logger,
	}
}

// RequestPermission reports the user's preference. There is no platform prompt.
func (notifier *Notifier) RequestPermission() timer.Permission {
	if notifier.config.Enabled && notifier.app != nil {
		return timer.PermissionGranted
	}
	return timer.PermissionDenied
}

// Show presents a notice, replacing any notice still on screen.
func (notifier *Notifier) Show(notification timer.Notification, callbacks timer.NotificationCallbacks) (timer.NotificationHandle, error) {
	if notifier.app == nil {
		return nil, ErrNoApp
	}

	handle := &Handle{
		id:        uuid.NewString(),
		notifier:  notifier,
		callbacks: callbacks,
	}
	if notifier.current != nil {
		notifier.current.closed = true
	}
	notifier.current = handle

	if notifier.window == nil {
		notifier.window = newWindow(notifier.app, notifier.click, notifier.dismiss)
	}
	notifier.window.Present(notification)

	if notifier.config.System {
		notifier.app.SendNotification(systemNotification(notification))
	}
	notifier.log.Debug().Str("id", handle.id).Str("title", notification.Title).Msg("notice shown")
	return handle, nil
}

func systemNotification(notification timer.Notification) *fyne.Notification {
	return fyne.NewNotification(notification.Title, notification.Phase.Title()+" phase finished.")
}

// Current returns the notice on screen, if any.
func (notifier *Notifier) Current() *Handle {
	return notifier.current
}

func (notifier *Notifier) click() {
	handle := notifier.take()
	if handle != nil && handle.callbacks.OnClick != nil {
		handle.callbacks.OnClick()
	}
}

func (notifier *Notifier) dismiss() {
	handle := notifier.take()
	if handle != nil && handle.callbacks.OnClose != nil {
		handle.callbacks.OnClose()
	}
}

func (notifier *Notifier) take() *Handle {
	handle := notifier.current
	if handle == nil {
		if notifier.window != nil {
			notifier.window.Hide()
		}
		return nil
	}
	notifier.release(handle)
	return handle
}

func (notifier *Notifier) release(handle *Handle) {
	handle.closed = true
	if notifier.current != handle {
		return
	}
	notifier.current = nil
	if notifier.window != nil {
		notifier.window.Hide()
	}
}

// ID returns the notice identifier.
func (handle *Handle) ID() string {
	return handle.id
}

// Close removes the notice without firing its callbacks.
func (handle *Handle) Close() {
	if handle.closed {
		return
	}
	handle.notifier.release(handle)
}

// Closed reports whether the notice is gone.
func (handle *Handle) Closed() bool {
	return handle.closed
}
