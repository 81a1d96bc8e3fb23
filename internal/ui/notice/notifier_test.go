package notice

import (
	"testing"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workNotification() timer.Notification {
	return timer.Notification{
		Title: "Work Time Complete!",
		Body:  "Click here to start your break",
		Tag:   timer.NotificationTag,
		Phase: timer.PhaseWork,
	}
}

func testTimerConfig() model.TimerConfig {
	return model.TimerConfig{Work: 2 * time.Second, Break: time.Second}
}

func TestRequestPermission(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	assert.Equal(t, timer.PermissionGranted, New(app, Config{Enabled: true}, nil).RequestPermission())
	assert.Equal(t, timer.PermissionDenied, New(app, Config{}, nil).RequestPermission())
	assert.Equal(t, timer.PermissionDenied, New(nil, Config{Enabled: true}, nil).RequestPermission())
}

func TestShowWithoutApp(t *testing.T) {
	_, err := New(nil, Config{Enabled: true}, nil).Show(workNotification(), timer.NotificationCallbacks{})
	assert.ErrorIs(t, err, ErrNoApp)
}

func TestSystemNotificationOff(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	notifier := New(app, Config{Enabled: true}, nil)
	test.AssertNotificationSent(t, nil, func() {
		_, err := notifier.Show(workNotification(), timer.NotificationCallbacks{})
		require.NoError(t, err)
	})
}

func TestSystemNotificationHasNoCallToAction(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	notifier := New(app, Config{Enabled: true, System: true}, nil)
	expected := fyne.NewNotification("Work Time Complete!", "Work phase finished.")
	test.AssertNotificationSent(t, expected, func() {
		_, err := notifier.Show(workNotification(), timer.NotificationCallbacks{})
		require.NoError(t, err)
	})
}

func TestOpenFiresClick(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var clicked, closed int
	notifier := New(app, Config{Enabled: true}, nil)
	handle, err := notifier.Show(workNotification(), timer.NotificationCallbacks{
		OnClick: func() { clicked++ },
		OnClose: func() { closed++ },
	})
	require.NoError(t, err)
	require.NotEmpty(t, handle.ID())
	assert.Equal(t, "Work Time Complete!", notifier.window.titleLabel.Text)
	assert.Equal(t, "Click here to start your break", notifier.window.bodyLabel.Text)

	test.Tap(notifier.window.openButton)
	assert.Equal(t, 1, clicked)
	assert.Equal(t, 0, closed)
	assert.Nil(t, notifier.Current())

	test.Tap(notifier.window.openButton)
	assert.Equal(t, 1, clicked)
}

func TestDismissFiresClose(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var clicked, closed int
	notifier := New(app, Config{Enabled: true}, nil)
	_, err := notifier.Show(workNotification(), timer.NotificationCallbacks{
		OnClick: func() { clicked++ },
		OnClose: func() { closed++ },
	})
	require.NoError(t, err)

	test.Tap(notifier.window.dismissButton)
	assert.Equal(t, 0, clicked)
	assert.Equal(t, 1, closed)
}

func TestCloseIsSilent(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var fired int
	notifier := New(app, Config{Enabled: true}, nil)
	handle, err := notifier.Show(workNotification(), timer.NotificationCallbacks{
		OnClick: func() { fired++ },
		OnClose: func() { fired++ },
	})
	require.NoError(t, err)

	handle.Close()
	handle.Close()
	assert.Equal(t, 0, fired)
	assert.Nil(t, notifier.Current())
	assert.True(t, handle.(*Handle).Closed())
}

func TestStaleHandleCloseKeepsNewNotice(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	notifier := New(app, Config{Enabled: true}, nil)
	first, err := notifier.Show(workNotification(), timer.NotificationCallbacks{})
	require.NoError(t, err)
	second, err := notifier.Show(workNotification(), timer.NotificationCallbacks{})
	require.NoError(t, err)

	first.Close()
	assert.Same(t, second, notifier.Current())
	assert.NotEqual(t, first.ID(), second.ID())
}

func TestEngineRoundTrip(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	notifier := New(app, Config{Enabled: true}, nil)
	engine, err := timer.New(testTimerConfig(), timer.Options{Notifier: notifier})
	require.NoError(t, err)
	defer engine.Close()

	var focused bool
	engine.SetForegrounder(func() { focused = true })

	engine.Play()
	for i := 0; i < 2; i++ {
		engine.Tick()
	}
	require.True(t, engine.Snapshot().HasNotification)

	test.Tap(notifier.window.openButton)
	state := engine.Snapshot()
	assert.Equal(t, timer.PhaseBreak, state.Phase)
	assert.False(t, state.Running)
	assert.False(t, state.HasNotification)
	assert.True(t, focused)
}
