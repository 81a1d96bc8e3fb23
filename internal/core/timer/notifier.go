package timer

// Permission is the outcome of asking the platform for notification access.
type Permission int

const (
	PermissionDenied Permission = iota
	PermissionGranted
)

func (permission Permission) String() string {
	if permission == PermissionGranted {
		return "granted"
	}
	return "denied"
}

// NotificationTag groups notifications so a platform can replace a stale one.
const NotificationTag = "main-action"

// Notification is the content of a phase-complete alert.
type Notification struct {
	Title string
	Body  string
	Tag   string
	Phase Phase
}

// NotificationCallbacks are registered when a notification is shown.
// OnClick fires when the user activates the notification, OnClose when the user
// dismisses it without clicking. Neither fires for a programmatic Close.
type NotificationCallbacks struct {
	OnClick func()
	OnClose func()
}

// NotificationHandle is a live notification owned by the engine.
type NotificationHandle interface {
	ID() string
	Close()
}

// Notifier produces user-visible notifications.
//
// Implementations must not invoke callbacks synchronously from Show or from a
// handle's Close: the engine calls both while holding its lock.
type Notifier interface {
	RequestPermission() Permission
	Show(notification Notification, callbacks NotificationCallbacks) (NotificationHandle, error)
}

func completionNotification(phase Phase) Notification {
	if phase == PhaseBreak {
		return Notification{
			Title: "Break Time Complete!",
			Body:  "Click here to start working",
			Tag:   NotificationTag,
			Phase: phase,
		}
	}
	return Notification{
		Title: "Work Time Complete!",
		Body:  "Click here to start your break",
		Tag:   NotificationTag,
		Phase: phase,
	}
}
