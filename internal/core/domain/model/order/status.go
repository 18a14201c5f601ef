package order

import (
	"fmt"

	"rentalvoice/internal/pkg/errs"
)

// Status represents the administrative state of a rental order.
//
// Unlike a classic workflow state machine, the set of transitions is
// deliberately unrestricted: an administrator may move an order between any two
// valid statuses, and the last write wins. The type therefore only validates
// membership in the closed enum and provides string conversion for persistence
// and the admin API.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned to every ingested order.
	// Orders in this status await review by an administrator.
	Pending

	// Confirmed indicates an administrator has accepted the order.
	Confirmed

	// Completed indicates the rental has been fulfilled and closed out.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Completed: "completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Completed: "completed",
	}
}

// ValidStatuses returns the closed set of valid statuses in lifecycle order.
// Used by the read model to compute per-status counts.
func ValidStatuses() []Status {
	return []Status{Pending, Confirmed, Completed}
}

// ParseStatus converts the wire representation ("pending", "confirmed",
// "completed") into a Status. Returns an error for any other input, including
// "unknown" and the empty string.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, Completed.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
//
// Returns "pending", "confirmed", or "completed" for valid statuses and
// "unknown" for invalid values. This method implements the fmt.Stringer
// interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
