package order

import (
	"errors"
	"fmt"

	"rentalvoice/internal/core/domain/model/kernel"
	"rentalvoice/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents an equipment-rental request captured from a voice
// conversation. It is the aggregate root of the order subsystem and the only
// entity this service persists.
//
// Order follows these invariants:
//   - Identity is derived from the creation timestamp (id = "ORD-<millis>") and is immutable
//   - All three business fields are always present; absent values carry the unset sentinel
//   - Status is always a member of the closed enum, starting at Pending
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation; the only mutation is
// WithStatus, which produces a copy differing solely in status so that rewrites
// under the same storage key leave every other field byte-identical.
type Order struct {
	// id is the unique identifier, derived from timestamp
	id kernel.OrderID

	// timestamp is the creation time; the storage key suffix
	timestamp kernel.Timestamp

	// equipment, duration, and location are the captured business fields,
	// each possibly unset
	equipment kernel.Field
	duration  kernel.Field
	location  kernel.Field

	// status is the current administrative state
	status Status

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order at the given timestamp with status Pending.
// The identifier is derived from the timestamp, so callers must guarantee the
// timestamp is unique among stored orders. Business fields may be unset; they
// are stored as-is with the unset sentinel preserved.
//
// Example:
//
//	ts := kernel.NewTimestamp(time.Now())
//	order, err := order.NewOrder(ts,
//	    kernel.NewField("excavator"),
//	    kernel.NewField("3 days"),
//	    kernel.UnsetField(),
//	)
func NewOrder(timestamp kernel.Timestamp, equipment, duration, location kernel.Field) (*Order, error) {
	if err := timestamp.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            kernel.NewOrderID(timestamp),
		timestamp:     timestamp,
		equipment:     equipment,
		duration:      duration,
		location:      location,
		status:        Pending,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts any valid status and an explicit identifier, but rejects records
// whose identifier does not agree with their timestamp, since such a record
// cannot have been produced by this subsystem.
func RestoreOrder(
	id kernel.OrderID,
	timestamp kernel.Timestamp,
	equipment, duration, location kernel.Field,
	status Status,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		timestamp.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if !id.Timestamp().IsEqual(timestamp) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"orderID",
			fmt.Errorf("id %s does not match timestamp %d", id, timestamp.Millis()),
		)
	}

	return &Order{
		id:            id,
		timestamp:     timestamp,
		equipment:     equipment,
		duration:      duration,
		location:      location,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Timestamp returns the order's creation timestamp.
func (o *Order) Timestamp() kernel.Timestamp {
	return o.timestamp
}

// Equipment returns the requested equipment field.
func (o *Order) Equipment() kernel.Field {
	return o.equipment
}

// Duration returns the rental duration field.
func (o *Order) Duration() kernel.Field {
	return o.duration
}

// Location returns the delivery site field.
func (o *Order) Location() kernel.Field {
	return o.location
}

// Status returns the current administrative status of the order.
func (o *Order) Status() Status {
	return o.status
}

// WithStatus returns a copy of the order with the given status and every other
// field unchanged. The copy keeps the original identifier and timestamp, so
// persisting it rewrites the original record in place.
//
// Any valid status is accepted from any prior status; concurrent rewrites of
// the same order resolve by last write wins.
func (o *Order) WithStatus(status Status) (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	updated := *o
	updated.status = status
	return &updated, nil
}
