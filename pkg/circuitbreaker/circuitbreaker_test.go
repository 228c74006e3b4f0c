package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutePassesThroughWhileClosed(t *testing.T) {
	cb := New(Settings{Name: "test", MaxFailures: 3, Cooldown: time.Minute})

	calls := 0
	err := cb.Execute(func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestOpensAfterConsecutiveFailures(t *testing.T) {
	cb := New(Settings{Name: "test", MaxFailures: 3, Cooldown: time.Minute})
	boom := errors.New("boom")

	for i := 0; i < 3; i++ {
		err := cb.Execute(func() error { return boom })
		assert.ErrorIs(t, err, boom)
	}

	// Open: the function is not even called.
	calls := 0
	err := cb.Execute(func() error {
		calls++
		return nil
	})
	assert.ErrorIs(t, err, ErrOpen)
	assert.Equal(t, 0, calls)
}

func TestSuccessResetsFailureCount(t *testing.T) {
	cb := New(Settings{Name: "test", MaxFailures: 2, Cooldown: time.Minute})
	boom := errors.New("boom")

	require.Error(t, cb.Execute(func() error { return boom }))
	require.NoError(t, cb.Execute(func() error { return nil }))

	// The earlier failure no longer counts.
	require.Error(t, cb.Execute(func() error { return boom }))
	err := cb.Execute(func() error { return nil })
	assert.NoError(t, err)
}

func TestHalfOpenProbeAfterCooldown(t *testing.T) {
	cb := New(Settings{Name: "test", MaxFailures: 1, Cooldown: 10 * time.Millisecond})
	boom := errors.New("boom")

	require.Error(t, cb.Execute(func() error { return boom }))
	assert.ErrorIs(t, cb.Execute(func() error { return nil }), ErrOpen)

	time.Sleep(20 * time.Millisecond)

	// The probe goes through and closes the breaker again.
	require.NoError(t, cb.Execute(func() error { return nil }))
	assert.NoError(t, cb.Execute(func() error { return nil }))
}
