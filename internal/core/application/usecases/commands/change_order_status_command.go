package commands

import (
	"errors"

	"rentalvoice/internal/core/domain/model/kernel"
	"rentalvoice/internal/core/domain/model/order"
	"rentalvoice/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand represents an administrative request to set the
// status of an existing order. Any valid status may be requested regardless of
// the order's current status; there is no transition graph.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand("ORD-1735689600000", "confirmed")
//	if err != nil {
//	    return fmt.Errorf("invalid status change: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status change failed: %w", err)
//	}
type ChangeOrderStatusCommand struct {
	orderID kernel.OrderID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command from the wire representations
// of the order identifier and the target status. Returns an error when either
// fails to parse.
func NewChangeOrderStatusCommand(orderID, status string) (ChangeOrderStatusCommand, error) {
	id, err := kernel.ParseOrderID(orderID)
	if err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	parsedStatus, err := order.ParseStatus(status)
	if err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID: id,
		status:  parsedStatus,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to mutate.
func (c ChangeOrderStatusCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Status returns the target status.
func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}
