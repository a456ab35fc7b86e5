package platform

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortFromNameIsStableAndInRange(t *testing.T) {
	first := portFromName("Countdown")
	assert.Equal(t, first, portFromName("Countdown"))
	for _, name := range []string{"", "a", "Countdown", "another app"} {
		port := portFromName(name)
		assert.GreaterOrEqual(t, port, 20000)
		assert.LessOrEqual(t, port, 39999)
	}
}

func TestSecondAcquireFails(t *testing.T) {
	appName := "countdown-test-" + t.Name()
	guard, err := AcquireSingleInstance(appName, nil)
	if err != nil {
		t.Skipf("port for %q unavailable: %v", appName, err)
	}
	defer guard.Release()
	assert.NotEmpty(t, guard.Address())

	_, err = AcquireSingleInstance(appName, nil)
	assert.True(t, errors.Is(err, ErrAlreadyRunning), "got %v", err)
}

func TestSignalRunningRaises(t *testing.T) {
	appName := "countdown-test-" + t.Name()
	raised := make(chan struct{}, 1)
	guard, err := AcquireSingleInstance(appName, func() {
		raised <- struct{}{}
	})
	if err != nil {
		t.Skipf("port for %q unavailable: %v", appName, err)
	}
	defer guard.Release()

	require.NoError(t, SignalRunning(appName))
	select {
	case <-raised:
	case <-time.After(2 * time.Second):
		t.Fatal("raise callback was not invoked")
	}
}

func TestReleaseFreesLock(t *testing.T) {
	appName := "countdown-test-" + t.Name()
	guard, err := AcquireSingleInstance(appName, nil)
	if err != nil {
		t.Skipf("port for %q unavailable: %v", appName, err)
	}
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(appName, nil)
	require.NoError(t, err)
	require.NoError(t, again.Release())

	var nilGuard *InstanceGuard
	assert.NoError(t, nilGuard.Release())
	assert.Empty(t, nilGuard.Address())
}
