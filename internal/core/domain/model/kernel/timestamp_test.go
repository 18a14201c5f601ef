package kernel_test

import (
	"testing"
	"time"

	"rentalvoice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimestamp(t *testing.T) {
	t.Run("should truncate to milliseconds", func(t *testing.T) {
		now := time.Date(2025, 3, 14, 9, 26, 53, 589_793_238, time.UTC)
		ts := kernel.NewTimestamp(now)

		assert.Equal(t, now.UnixMilli(), ts.Millis())
		assert.True(t, ts.Time().Equal(now.Truncate(time.Millisecond)))
		require.NoError(t, ts.Validate())
	})
}

func TestTimestampFromMillis(t *testing.T) {
	t.Run("should restore from positive millis", func(t *testing.T) {
		ts, err := kernel.TimestampFromMillis(1735689600000)

		require.NoError(t, err)
		assert.Equal(t, int64(1735689600000), ts.Millis())
	})

	t.Run("should reject non-positive millis", func(t *testing.T) {
		for _, millis := range []int64{0, -1} {
			_, err := kernel.TimestampFromMillis(millis)
			require.ErrorIs(t, err, kernel.ErrTimestampIsNotConstructed)
		}
	})
}

func TestTimestampOrdering(t *testing.T) {
	earlier, err := kernel.TimestampFromMillis(1000)
	require.NoError(t, err)
	later, err := kernel.TimestampFromMillis(2000)
	require.NoError(t, err)

	assert.True(t, earlier.Before(later))
	assert.True(t, later.After(earlier))
	assert.False(t, earlier.After(later))
	assert.False(t, earlier.IsEqual(later))
	assert.True(t, earlier.IsEqual(earlier))
}

func TestTimestampNext(t *testing.T) {
	ts, err := kernel.TimestampFromMillis(1000)
	require.NoError(t, err)

	next := ts.Next()
	assert.Equal(t, int64(1001), next.Millis())
	assert.True(t, next.After(ts))
}

func TestTimestampValidate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var ts kernel.Timestamp
		require.ErrorIs(t, ts.Validate(), kernel.ErrTimestampIsNotConstructed)
	})
}
