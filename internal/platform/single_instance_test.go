package platform

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func uniqueAppName(t *testing.T) string {
	return fmt.Sprintf("pomodoro-test-%s-%d", t.Name(), time.Now().UnixNano())
}

func TestInstanceLock(t *testing.T) {
	defer goleak.VerifyNone(t)

	name := uniqueAppName(t)
	lock, err := AcquireInstanceLock(name)
	require.NoError(t, err)
	assert.Equal(t, instanceAddress(name), lock.Address())

	_, err = AcquireInstanceLock(name)
	assert.True(t, errors.Is(err, ErrAlreadyRunning))

	require.NoError(t, lock.Release())

	again, err := AcquireInstanceLock(name)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestActivateRunningInstance(t *testing.T) {
	defer goleak.VerifyNone(t)

	name := uniqueAppName(t)
	lock, err := AcquireInstanceLock(name)
	require.NoError(t, err)

	var activated int64
	lock.Serve(func() { atomic.AddInt64(&activated, 1) })

	require.NoError(t, ActivateRunningInstance(name, time.Second))
	require.Eventually(t, func() bool {
		return atomic.LoadInt64(&activated) == 1
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, lock.Release())
}

func TestInstanceAddressIsStable(t *testing.T) {
	assert.Equal(t, instanceAddress("Pomodoro"), instanceAddress("Pomodoro"))
	assert.NotEqual(t, instanceAddress("Pomodoro"), instanceAddress("pomodoro"))

	var nilLock *InstanceLock
	assert.Empty(t, nilLock.Address())
	assert.NoError(t, nilLock.Release())
}
