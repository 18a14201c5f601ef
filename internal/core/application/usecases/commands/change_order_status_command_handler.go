package commands

import (
	"context"
	"log/slog"

	"rentalvoice/internal/core/ports"
)

// ChangeOrderStatusCommandHandler applies status mutations to existing orders.
// The mutation rewrites the full record under its original storage key, so
// every field except status stays byte-identical. A command naming an unknown
// order is a no-op: views rendered before the last refresh may hold stale
// identifiers and must not fail.
//
// Concurrent status changes to the same order are not coordinated; the later
// write wins silently.
type ChangeOrderStatusCommandHandler struct {
	store     ports.OrderStore
	finder    OrderFinder
	refresher ReadModelRefresher
	logger    *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(
	store ports.OrderStore,
	finder OrderFinder,
	refresher ReadModelRefresher,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		store:     store,
		finder:    finder,
		refresher: refresher,
		logger:    logger.With("component", "change_order_status_handler"),
	}
}

// Handle processes the status change command.
// Locates the order in the loaded snapshot, rewrites it with the new status
// under the same key, and refreshes the read model.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	current, ok := h.finder.Find(cmd.OrderID())
	if !ok {
		h.logger.DebugContext(ctx, "Status change for unknown order ignored",
			"order_id", cmd.OrderID().String())
		return nil
	}

	updated, err := current.WithStatus(cmd.Status())
	if err != nil {
		return err
	}

	if err := h.store.Put(ctx, updated); err != nil {
		h.logger.ErrorContext(ctx, "Failed to persist status change",
			"order_id", cmd.OrderID().String(), "status", cmd.Status().String(), "error", err)
		return err
	}

	h.logger.InfoContext(ctx, "Order status changed",
		"order_id", cmd.OrderID().String(), "status", cmd.Status().String())

	if err := h.refresher.Refresh(ctx); err != nil {
		h.logger.ErrorContext(ctx, "Read model refresh after status change failed", "error", err)
	}

	return nil
}
