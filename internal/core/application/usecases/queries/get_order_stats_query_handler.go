package queries

import (
	"context"

	"rentalvoice/internal/core/application/readmodel"
)

// GetOrderStatsQueryHandler computes aggregate counts from the read model
// snapshot.
type GetOrderStatsQueryHandler struct {
	readModel *readmodel.ReadModel
}

// NewGetOrderStatsQueryHandler creates a handler for aggregate count queries.
func NewGetOrderStatsQueryHandler(readModel *readmodel.ReadModel) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{readModel: readModel}
}

// Handle executes the stats query against the loaded snapshot.
func (h GetOrderStatsQueryHandler) Handle(
	_ context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	stats := h.readModel.Aggregate()

	return GetOrderStatsQueryResponse{
		Total:     stats.Total,
		Pending:   stats.Pending,
		Confirmed: stats.Confirmed,
		Completed: stats.Completed,
	}, nil
}
