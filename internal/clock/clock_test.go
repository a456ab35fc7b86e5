package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemScheduleAndCancel(t *testing.T) {
	system := NewSystem()
	var calls atomic.Int32

	handle := system.Schedule(5*time.Millisecond, func() {
		calls.Add(1)
	})
	require.NotZero(t, handle)
	require.Equal(t, 1, system.Active())

	require.Eventually(t, func() bool {
		return calls.Load() >= 2
	}, time.Second, time.Millisecond)

	system.Cancel(handle)
	assert.Equal(t, 0, system.Active())

	// Allow any in-flight callback to settle before sampling.
	time.Sleep(20 * time.Millisecond)
	settled := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, calls.Load())
}

func TestSystemCancelIsIdempotent(t *testing.T) {
	system := NewSystem()
	handle := system.Schedule(time.Hour, func() {})

	system.Cancel(handle)
	system.Cancel(handle)
	system.Cancel(0)
	system.Cancel(Handle(42))
	assert.Equal(t, 0, system.Active())
}

func TestSystemHandlesAreDistinct(t *testing.T) {
	system := NewSystem()
	first := system.Schedule(time.Hour, func() {})
	second := system.Schedule(time.Hour, func() {})
	defer system.Cancel(first)
	defer system.Cancel(second)

	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, system.Active())
}
