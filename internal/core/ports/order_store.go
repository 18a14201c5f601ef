package ports

import (
	"context"

	"rentalvoice/internal/core/domain/model/order"
)

// OrderStore is the typed persistence contract for order aggregates.
// It owns the encode/decode of orders to storage values and the listing
// contract; callers never see raw keys or serialized records.
type OrderStore interface {
	// Put persists the order under its timestamp-derived key, overwriting any
	// existing record there. Used both for initial ingestion and for status
	// rewrites, which replace the record in place.
	Put(ctx context.Context, aggregate *order.Order) error

	// List returns all stored orders sorted by timestamp descending (newest
	// first). Records that fail to decode are excluded rather than aborting
	// the listing.
	List(ctx context.Context) ([]*order.Order, error)
}
