package session_test

import (
	"testing"

	"rentalvoice/internal/core/domain/model/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateString(t *testing.T) {
	tests := []struct {
		state    session.State
		expected string
	}{
		{session.Idle, "idle"},
		{session.Connecting, "connecting"},
		{session.Connected, "connected"},
		{session.Failed, "error"},
		{session.State(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestStateZeroValueIsIdle(t *testing.T) {
	var s session.State
	assert.Equal(t, session.Idle, s)
	assert.True(t, s.CanStart())
}

func TestStateStart(t *testing.T) {
	t.Run("allowed from idle and error", func(t *testing.T) {
		for _, from := range []session.State{session.Idle, session.Failed} {
			next, err := from.Start()
			require.NoError(t, err)
			assert.Equal(t, session.Connecting, next)
		}
	})

	t.Run("rejected while connecting or connected", func(t *testing.T) {
		for _, from := range []session.State{session.Connecting, session.Connected} {
			next, err := from.Start()
			require.Error(t, err)
			assert.Equal(t, from, next)
			assert.False(t, from.CanStart())
		}
	})
}

func TestStateEstablished(t *testing.T) {
	next, err := session.Connecting.Established()
	require.NoError(t, err)
	assert.Equal(t, session.Connected, next)

	for _, from := range []session.State{session.Idle, session.Connected, session.Failed} {
		_, err := from.Established()
		require.Error(t, err)
	}
}

func TestStateFail(t *testing.T) {
	next, err := session.Connecting.Fail()
	require.NoError(t, err)
	assert.Equal(t, session.Failed, next)

	for _, from := range []session.State{session.Idle, session.Connected, session.Failed} {
		_, err := from.Fail()
		require.Error(t, err)
	}
}

func TestStateDisconnect(t *testing.T) {
	next, err := session.Connected.Disconnect()
	require.NoError(t, err)
	assert.Equal(t, session.Idle, next)

	for _, from := range []session.State{session.Idle, session.Connecting, session.Failed} {
		_, err := from.Disconnect()
		require.Error(t, err)
	}
}

func TestStateEnd(t *testing.T) {
	t.Run("allowed from connected and connecting", func(t *testing.T) {
		for _, from := range []session.State{session.Connected, session.Connecting} {
			next, err := from.End()
			require.NoError(t, err)
			assert.Equal(t, session.Idle, next)
		}
	})

	t.Run("rejected otherwise", func(t *testing.T) {
		for _, from := range []session.State{session.Idle, session.Failed} {
			_, err := from.End()
			require.Error(t, err)
		}
	})
}

func TestFullLifecycle(t *testing.T) {
	s := session.Idle

	s, err := s.Start()
	require.NoError(t, err)
	s, err = s.Established()
	require.NoError(t, err)
	s, err = s.Disconnect()
	require.NoError(t, err)
	assert.Equal(t, session.Idle, s)

	// failed attempt then retry
	s, err = s.Start()
	require.NoError(t, err)
	s, err = s.Fail()
	require.NoError(t, err)
	s, err = s.Start()
	require.NoError(t, err)
	assert.Equal(t, session.Connecting, s)
}
