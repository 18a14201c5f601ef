// Package readmodel provides the derived view over persisted orders: the
// sorted listing, per-status filtering, and aggregate counts consumed by the
// admin surface.
//
// The read model is a pure projection. It caches the last listing loaded from
// the order store and holds no state that could not be rebuilt by re-reading
// storage; Refresh replaces the snapshot wholesale.
package readmodel

import (
	"context"
	"sync"

	"rentalvoice/internal/core/domain/model/kernel"
	"rentalvoice/internal/core/domain/model/order"
	"rentalvoice/internal/core/ports"
)

// Stats holds the aggregate counts over the loaded orders.
type Stats struct {
	Total     int
	Pending   int
	Confirmed int
	Completed int
}

// ReadModel caches the most recent order listing behind a read-write lock.
// Refresh is triggered after every successful write and periodically by the
// reconciliation job; readers always see the last successfully loaded snapshot.
type ReadModel struct {
	store ports.OrderStore

	mu     sync.RWMutex
	orders []*order.Order
}

// New creates an empty read model over the given store.
// Call Refresh to populate it.
func New(store ports.OrderStore) *ReadModel {
	return &ReadModel{store: store}
}

// Refresh re-lists orders from storage and replaces the cached snapshot.
// On listing failure the previous snapshot is kept and the error returned.
func (rm *ReadModel) Refresh(ctx context.Context) error {
	orders, err := rm.store.List(ctx)
	if err != nil {
		return err
	}

	rm.mu.Lock()
	rm.orders = orders
	rm.mu.Unlock()
	return nil
}

// Orders returns the loaded orders, newest first.
func (rm *ReadModel) Orders() []*order.Order {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	result := make([]*order.Order, len(rm.orders))
	copy(result, rm.orders)
	return result
}

// Find locates a loaded order by its identifier.
func (rm *ReadModel) Find(id kernel.OrderID) (*order.Order, bool) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	for _, o := range rm.orders {
		if o.ID().IsEqual(id) {
			return o, true
		}
	}
	return nil, false
}

// Filter returns the subsequence of loaded orders matching the given filter,
// preserving the newest-first ordering.
func (rm *ReadModel) Filter(filter StatusFilter) []*order.Order {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	result := make([]*order.Order, 0, len(rm.orders))
	for _, o := range rm.orders {
		if filter.Matches(o.Status()) {
			result = append(result, o)
		}
	}
	return result
}

// Aggregate computes per-status counts by scanning the loaded orders.
// Since the status enum is closed, Total equals the sum of the three buckets.
func (rm *ReadModel) Aggregate() Stats {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	stats := Stats{Total: len(rm.orders)}
	for _, o := range rm.orders {
		switch o.Status() {
		case order.Pending:
			stats.Pending++
		case order.Confirmed:
			stats.Confirmed++
		case order.Completed:
			stats.Completed++
		case order.Unknown:
			// unreachable: the store never restores an Unknown status
		}
	}
	return stats
}
