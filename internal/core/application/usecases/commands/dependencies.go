// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, persistence through the
// order store, and a read-model refresh so views observe the change.
package commands

import (
	"context"

	"rentalvoice/internal/core/domain/model/kernel"
	"rentalvoice/internal/core/domain/model/order"
)

// Dependencies consumed by command handlers beyond the order store port.
type (
	// ReadModelRefresher re-derives the cached order projection from storage.
	// Handlers call it after every successful write.
	ReadModelRefresher interface {
		Refresh(ctx context.Context) error
	}

	// OrderFinder locates a loaded order by its identifier.
	// Used by status mutations, which operate on the currently loaded snapshot
	// and tolerate stale identifiers from views rendered before a refresh.
	OrderFinder interface {
		Find(id kernel.OrderID) (*order.Order, bool)
	}
)
