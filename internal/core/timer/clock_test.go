package timer

import (
	"sync/atomic"
	"testing"
	"time"

	"pomodoro/internal/core/model"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestTickerClockTicks(t *testing.T) {
	defer goleak.VerifyNone(t)

	var ticked int64
	clock := NewTickerClock(5*time.Millisecond, nil)
	clock.Start(func() { atomic.AddInt64(&ticked, 1) })

	require.Eventually(t, func() bool {
		return atomic.LoadInt64(&ticked) >= 3
	}, time.Second, time.Millisecond)

	clock.Stop()
	clock.Wait()

	stopped := atomic.LoadInt64(&ticked)
	<-time.After(30 * time.Millisecond)
	require.Equal(t, stopped, atomic.LoadInt64(&ticked))
}

func TestTickerClockDispatch(t *testing.T) {
	defer goleak.VerifyNone(t)

	var dispatched, ticked int64
	clock := NewTickerClock(5*time.Millisecond, func(fn func()) {
		atomic.AddInt64(&dispatched, 1)
		fn()
	})
	clock.Start(func() { atomic.AddInt64(&ticked, 1) })

	require.Eventually(t, func() bool {
		return atomic.LoadInt64(&ticked) >= 2
	}, time.Second, time.Millisecond)

	clock.Stop()
	clock.Wait()
	require.Equal(t, atomic.LoadInt64(&dispatched), atomic.LoadInt64(&ticked))
}

func TestTickerClockRestartReplacesLoop(t *testing.T) {
	defer goleak.VerifyNone(t)

	var first, second int64
	clock := NewTickerClock(5*time.Millisecond, nil)
	clock.Start(func() { atomic.AddInt64(&first, 1) })
	clock.Start(func() { atomic.AddInt64(&second, 1) })

	require.Eventually(t, func() bool {
		return atomic.LoadInt64(&second) >= 2
	}, time.Second, time.Millisecond)

	clock.Stop()
	clock.Wait()

	stale := atomic.LoadInt64(&first)
	<-time.After(20 * time.Millisecond)
	require.Equal(t, stale, atomic.LoadInt64(&first))
}

func TestTickerClockDrivesEngine(t *testing.T) {
	defer goleak.VerifyNone(t)

	clock := NewTickerClock(2*time.Millisecond, nil)
	engine, err := New(testConfig(), Options{Clock: clock})
	require.NoError(t, err)

	engine.Play()
	require.Eventually(t, func() bool {
		return engine.Snapshot().Elapsed >= 0
	}, time.Second, time.Millisecond)

	engine.Close()
	clock.Wait()

	elapsed := engine.Snapshot().Elapsed
	<-time.After(20 * time.Millisecond)
	require.Equal(t, elapsed, engine.Snapshot().Elapsed)
}

func testConfig() model.TimerConfig {
	return model.TimerConfig{Work: 3 * time.Second, Break: time.Second}
}
