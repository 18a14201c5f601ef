package queries

import (
	"errors"

	"rentalvoice/internal/core/application/readmodel"
	"rentalvoice/internal/core/domain/model/kernel"
	"rentalvoice/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves orders from the loaded snapshot, optionally
// restricted to a single status. Orders are returned newest first.
//
// Example:
//
//	query, err := NewListOrdersQuery("pending")
//	if err != nil {
//	    return fmt.Errorf("invalid filter: %w", err)
//	}
//
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	filter readmodel.StatusFilter

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query from the wire representation of the
// status filter. "all" and the empty string select every order; any other
// token must be a valid status name.
func NewListOrdersQuery(statusFilter string) (ListOrdersQuery, error) {
	filter, err := readmodel.ParseStatusFilter(statusFilter)
	if err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Filter returns the status filter to apply.
func (q ListOrdersQuery) Filter() readmodel.StatusFilter {
	return q.filter
}

// ListOrdersQueryResponse is the wire representation of a single order.
// The three business fields marshal to null when unset, keeping captured and
// absent values distinguishable on the wire.
type ListOrdersQueryResponse struct {
	ID        string       `json:"id"`
	Timestamp int64        `json:"timestamp"`
	Equipment kernel.Field `json:"equipment"`
	Duration  kernel.Field `json:"duration"`
	Location  kernel.Field `json:"location"`
	Status    string       `json:"status"`
}
