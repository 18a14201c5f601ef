package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"rentalvoice/internal/pkg/errs"
)

// orderIDPrefix is the fixed prefix of every order identifier.
const orderIDPrefix = "ORD-"

// ErrOrderIDIsNotConstructed indicates an OrderID that was not created through
// NewOrderID or ParseOrderID. The zero value is invalid.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or ParseOrderID",
)

// OrderID is a value object identifying an order. Its textual form is
// "ORD-<millis>", where <millis> is the order's creation Timestamp, so the
// identifier and the storage key are always derived from the same value and
// cannot drift apart.
//
// Example usage:
//
//	ts := kernel.NewTimestamp(time.Now())
//	id := kernel.NewOrderID(ts)
//	fmt.Println(id.String()) // e.g. "ORD-1735689600000"
//
//	parsed, err := kernel.ParseOrderID("ORD-1735689600000")
type OrderID struct {
	timestamp Timestamp
}

// NewOrderID derives an order identifier from the order's creation timestamp.
func NewOrderID(timestamp Timestamp) OrderID {
	return OrderID{timestamp: timestamp}
}

// ParseOrderID parses the textual "ORD-<millis>" form of an order identifier.
// Returns an error when the prefix or the millisecond payload is malformed.
// Typically used when reconstructing orders from persistence or handling
// identifiers arriving over the admin API.
func ParseOrderID(s string) (OrderID, error) {
	raw, ok := strings.CutPrefix(s, orderIDPrefix)
	if !ok {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause(
			"orderID", fmt.Errorf("%q does not start with %q", s, orderIDPrefix),
		)
	}

	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}

	ts, err := TimestampFromMillis(millis)
	if err != nil {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}

	return OrderID{timestamp: ts}, nil
}

// String returns the textual "ORD-<millis>" representation.
func (id OrderID) String() string {
	return orderIDPrefix + strconv.FormatInt(id.timestamp.Millis(), 10)
}

// Timestamp returns the creation timestamp the identifier was derived from.
func (id OrderID) Timestamp() Timestamp {
	return id.timestamp
}

// IsEqual compares two OrderIDs for equality.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.timestamp.IsEqual(other.timestamp)
}

// Validate checks that the OrderID was properly constructed.
// Returns ErrOrderIDIsNotConstructed for the zero value.
func (id OrderID) Validate() error {
	if err := id.timestamp.Validate(); err != nil {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
