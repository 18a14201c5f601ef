// Package orderstore implements the typed order persistence port on top of the
// raw key-value storage port. It owns the serialized record format and the
// listing/sorting contract, handling the conversion between order aggregates
// and their stored representation.
package orderstore

import (
	"rentalvoice/internal/core/domain/model/kernel"
	"rentalvoice/internal/core/domain/model/order"
)

// orderDTO is the persisted record shape. Every field is always present in the
// serialized form; unset business fields are stored as JSON null.
type orderDTO struct {
	ID        string       `json:"id"`
	Timestamp int64        `json:"timestamp"`
	Equipment kernel.Field `json:"equipment"`
	Duration  kernel.Field `json:"duration"`
	Location  kernel.Field `json:"location"`
	Status    string       `json:"status"`
}

// fromDomain converts an order aggregate to its stored representation.
func fromDomain(aggregate *order.Order) orderDTO {
	return orderDTO{
		ID:        aggregate.ID().String(),
		Timestamp: aggregate.Timestamp().Millis(),
		Equipment: aggregate.Equipment(),
		Duration:  aggregate.Duration(),
		Location:  aggregate.Location(),
		Status:    aggregate.Status().String(),
	}
}

// toDomain reconstructs an order aggregate from a stored record.
// Returns an error for records whose identifier, timestamp, or status does not
// validate; callers treat such records as corrupt and exclude them.
func toDomain(dto orderDTO) (*order.Order, error) {
	id, err := kernel.ParseOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	timestamp, err := kernel.TimestampFromMillis(dto.Timestamp)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, timestamp, dto.Equipment, dto.Duration, dto.Location, status)
}
