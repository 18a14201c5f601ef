package kernel

import (
	"time"

	"rentalvoice/internal/pkg/errs"
)

// ErrTimestampIsNotConstructed indicates a Timestamp that was not created through
// NewTimestamp or TimestampFromMillis. The zero value is invalid.
var ErrTimestampIsNotConstructed = errs.NewValueIsRequiredError(
	"Timestamp must be created via NewTimestamp or TimestampFromMillis",
)

// Timestamp is a value object representing an order creation time with
// millisecond precision. It is assigned once at ingestion and is immutable
// thereafter; the storage key of an order is derived from it, so two orders
// may never share a Timestamp.
//
// Example usage:
//
//	ts := kernel.NewTimestamp(time.Now())
//	restored, err := kernel.TimestampFromMillis(1735689600000)
type Timestamp struct {
	millis int64
}

// NewTimestamp creates a Timestamp from a wall-clock time, truncated to milliseconds.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{millis: t.UnixMilli()}
}

// TimestampFromMillis reconstructs a Timestamp from its persisted millisecond value.
// Returns an error for non-positive values.
func TimestampFromMillis(millis int64) (Timestamp, error) {
	ts := Timestamp{millis: millis}
	if err := ts.Validate(); err != nil {
		return Timestamp{}, err
	}
	return ts, nil
}

// Millis returns the timestamp as milliseconds since the Unix epoch.
func (t Timestamp) Millis() int64 {
	return t.millis
}

// Time returns the timestamp as a time.Time in UTC.
func (t Timestamp) Time() time.Time {
	return time.UnixMilli(t.millis).UTC()
}

// Next returns the smallest Timestamp strictly greater than this one.
// Used to keep creation timestamps collision-free when two orders arrive
// within the same millisecond.
func (t Timestamp) Next() Timestamp {
	return Timestamp{millis: t.millis + 1}
}

// Before reports whether t is strictly earlier than other.
func (t Timestamp) Before(other Timestamp) bool {
	return t.millis < other.millis
}

// After reports whether t is strictly later than other.
func (t Timestamp) After(other Timestamp) bool {
	return t.millis > other.millis
}

// IsEqual compares two Timestamps for equality.
func (t Timestamp) IsEqual(other Timestamp) bool {
	return t.millis == other.millis
}

// Validate checks that the Timestamp was properly constructed.
// Returns ErrTimestampIsNotConstructed for the zero value and other
// non-positive millisecond counts.
func (t Timestamp) Validate() error {
	if t.millis <= 0 {
		return ErrTimestampIsNotConstructed
	}
	return nil
}
