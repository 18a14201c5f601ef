package readmodel

import (
	"rentalvoice/internal/core/domain/model/order"
)

// filterAllKeyword is the wire token selecting all orders regardless of status.
const filterAllKeyword = "all"

// StatusFilter selects orders by status, or all orders.
// The zero value selects nothing; use the constructors.
type StatusFilter struct {
	all    bool
	status order.Status
}

// FilterAll returns a filter matching every order.
func FilterAll() StatusFilter {
	return StatusFilter{all: true}
}

// FilterByStatus returns a filter matching only orders with the given status.
func FilterByStatus(status order.Status) (StatusFilter, error) {
	if err := status.Validate(); err != nil {
		return StatusFilter{}, err
	}
	return StatusFilter{status: status}, nil
}

// ParseStatusFilter converts the wire representation into a filter:
// "all" (or the empty string) selects everything, otherwise the token must be
// a valid status name.
func ParseStatusFilter(s string) (StatusFilter, error) {
	if s == filterAllKeyword || s == "" {
		return FilterAll(), nil
	}

	status, err := order.ParseStatus(s)
	if err != nil {
		return StatusFilter{}, err
	}
	return StatusFilter{status: status}, nil
}

// Matches reports whether an order with the given status passes the filter.
func (f StatusFilter) Matches(status order.Status) bool {
	return f.all || f.status == status
}

// String returns the wire representation of the filter.
func (f StatusFilter) String() string {
	if f.all {
		return filterAllKeyword
	}
	return f.status.String()
}
