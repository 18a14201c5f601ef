package queries

import (
	"errors"

	"rentalvoice/internal/pkg/guard"
)

var (
	ErrGetOrderStatsQueryIsNotConstructed = errors.New(
		"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
	)
)

// GetOrderStatsQuery retrieves aggregate per-status counts over all loaded
// orders. This is a parameterless query.
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a query for aggregate order counts.
func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatsQueryIsNotConstructed if validation fails.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// GetOrderStatsQueryResponse carries the aggregate counts.
// Total always equals the sum of the three buckets.
type GetOrderStatsQueryResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
}
