package term

import (
	"sync"

	"pomodoro/internal/core/timer"

	"github.com/google/uuid"
)

// Banner is a notification rendered inside the terminal UI.
type Banner struct {
	id           string
	notification timer.Notification
	callbacks    timer.NotificationCallbacks
	notifier     *Notifier
}

// ID returns the banner identifier.
func (banner *Banner) ID() string {
	return banner.id
}

// Close removes the banner without firing its callbacks.
func (banner *Banner) Close() {
	banner.notifier.release(banner)
}

// Notification returns the banner content.
func (banner *Banner) Notification() timer.Notification {
	return banner.notification
}

// Notifier shows at most one banner at a time. Open and Dismiss are driven by
// key presses in the model.
type Notifier struct {
	mu      sync.Mutex
	enabled bool
	current *Banner
}

// NewNotifier creates a banner notifier. enabled is the permission reported to
// the engine.
func NewNotifier(enabled bool) *Notifier {
	return &Notifier{enabled: enabled}
}

// RequestPermission reports whether banners are enabled.
func (notifier *Notifier) RequestPermission() timer.Permission {
	if notifier.enabled {
		return timer.PermissionGranted
	}
	return timer.PermissionDenied
}

// Show replaces the current banner.
func (notifier *Notifier) Show(notification timer.Notification, callbacks timer.NotificationCallbacks) (timer.NotificationHandle, error) {
	banner := &Banner{
		id:           uuid.NewString(),
		notification: notification,
		callbacks:    callbacks,
		notifier:     notifier,
	}
	notifier.mu.Lock()
	notifier.current = banner
	notifier.mu.Unlock()
	return banner, nil
}

// Current returns the banner on screen, if any.
func (notifier *Notifier) Current() *Banner {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	return notifier.current
}

// Open activates the banner on screen. It reports whether there was one.
func (notifier *Notifier) Open() bool {
	banner := notifier.take()
	if banner == nil {
		return false
	}
	if banner.callbacks.OnClick != nil {
		banner.callbacks.OnClick()
	}
	return true
}

// Dismiss closes the banner on screen as the user. It reports whether there was one.
func (notifier *Notifier) Dismiss() bool {
	banner := notifier.take()
	if banner == nil {
		return false
	}
	if banner.callbacks.OnClose != nil {
		banner.callbacks.OnClose()
	}
	return true
}

func (notifier *Notifier) take() *Banner {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	banner := notifier.current
	notifier.current = nil
	return banner
}

func (notifier *Notifier) release(banner *Banner) {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if notifier.current == banner {
		notifier.current = nil
	}
}
