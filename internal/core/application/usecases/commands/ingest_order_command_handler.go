package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"rentalvoice/internal/core/domain/model/kernel"
	"rentalvoice/internal/core/domain/model/order"
	"rentalvoice/internal/core/ports"
)

// IngestOrderCommandHandler converts metadata payloads into persisted orders.
// Payloads without an order object are dropped silently; persistence failures
// are logged and returned without retry.
//
// Example:
//
//	handler := NewIngestOrderCommandHandler(store, readModel, time.Now, logger)
//	cmd, _ := NewIngestOrderCommand(payload)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // storage write failed; the order was not persisted
//	}
type IngestOrderCommandHandler struct {
	store     ports.OrderStore
	refresher ReadModelRefresher
	now       func() time.Time
	logger    *slog.Logger

	// mu guards last so creation timestamps stay strictly increasing even
	// when two metadata events arrive within the same millisecond.
	mu   sync.Mutex
	last kernel.Timestamp
}

// NewIngestOrderCommandHandler creates a handler for order ingestion.
// now supplies creation timestamps and is injectable for tests.
func NewIngestOrderCommandHandler(
	store ports.OrderStore,
	refresher ReadModelRefresher,
	now func() time.Time,
	logger *slog.Logger,
) *IngestOrderCommandHandler {
	return &IngestOrderCommandHandler{
		store:     store,
		refresher: refresher,
		now:       now,
		logger:    logger.With("component", "ingest_order_handler"),
	}
}

// Handle processes the ingestion command.
// Parses the payload, constructs a canonical order with status pending and a
// fresh timestamp, persists it, and refreshes the read model. A payload
// without an order object produces no record and no error.
func (h *IngestOrderCommandHandler) Handle(ctx context.Context, cmd IngestOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	fields, ok := parseOrderMetadata(cmd.Payload())
	if !ok {
		h.logger.DebugContext(ctx, "Metadata payload without order object, dropped")
		return nil
	}

	aggregate, err := order.NewOrder(
		h.nextTimestamp(),
		fields.equipment(),
		fields.duration(),
		fields.location(),
	)
	if err != nil {
		return err
	}

	if err := h.store.Put(ctx, aggregate); err != nil {
		h.logger.ErrorContext(ctx, "Failed to persist ingested order",
			"order_id", aggregate.ID().String(), "error", err)
		return err
	}

	h.logger.InfoContext(ctx, "Order ingested",
		"order_id", aggregate.ID().String(),
		"equipment", aggregate.Equipment().Or("unset"))

	if err := h.refresher.Refresh(ctx); err != nil {
		// the write succeeded; the reconciliation job will catch the view up
		h.logger.ErrorContext(ctx, "Read model refresh after ingestion failed", "error", err)
	}

	return nil
}

// nextTimestamp returns a creation timestamp strictly greater than any
// previously issued by this handler.
func (h *IngestOrderCommandHandler) nextTimestamp() kernel.Timestamp {
	h.mu.Lock()
	defer h.mu.Unlock()

	ts := kernel.NewTimestamp(h.now())
	if !ts.After(h.last) {
		ts = h.last.Next()
	}
	h.last = ts
	return ts
}
