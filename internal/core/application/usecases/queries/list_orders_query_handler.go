package queries

import (
	"context"

	"rentalvoice/internal/core/application/readmodel"
)

// ListOrdersQueryHandler serves order listings from the read model snapshot.
// It never touches storage; staleness is bounded by the refresh-on-write path
// and the periodic reconciliation job.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(readModel)
//	query, _ := NewListOrdersQuery("all")
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
type ListOrdersQueryHandler struct {
	readModel *readmodel.ReadModel
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(readModel *readmodel.ReadModel) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{readModel: readModel}
}

// Handle executes the listing query against the loaded snapshot.
// Results keep the snapshot's newest-first ordering.
func (h ListOrdersQueryHandler) Handle(
	_ context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	matched := h.readModel.Filter(query.Filter())

	responses := make([]ListOrdersQueryResponse, 0, len(matched))
	for _, o := range matched {
		responses = append(responses, ListOrdersQueryResponse{
			ID:        o.ID().String(),
			Timestamp: o.Timestamp().Millis(),
			Equipment: o.Equipment(),
			Duration:  o.Duration(),
			Location:  o.Location(),
			Status:    o.Status().String(),
		})
	}

	return responses, nil
}
