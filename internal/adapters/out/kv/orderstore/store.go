package orderstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"rentalvoice/internal/core/domain/model/kernel"
	"rentalvoice/internal/core/domain/model/order"
	"rentalvoice/internal/core/ports"
)

// keyPrefix is the storage namespace for order records.
const keyPrefix = "order:"

// Key returns the storage key for the order created at the given timestamp.
// The key is stable and collision-free because timestamps are unique among
// stored orders; status rewrites reuse the same key to replace in place.
func Key(timestamp kernel.Timestamp) string {
	return keyPrefix + strconv.FormatInt(timestamp.Millis(), 10)
}

// Store implements the OrderStore port over any KeyValueStore.
type Store struct {
	kv ports.KeyValueStore
}

// NewStore creates an order store backed by the given key-value store.
func NewStore(kv ports.KeyValueStore) *Store {
	return &Store{kv: kv}
}

// Put serializes the order and writes it under its timestamp-derived key,
// overwriting any existing record there.
func (s *Store) Put(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	value, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("encode order %s: %w", aggregate.ID(), err)
	}

	if err := s.kv.Set(ctx, Key(aggregate.Timestamp()), string(value)); err != nil {
		return fmt.Errorf("store order %s: %w", aggregate.ID(), err)
	}

	return nil
}

// List enumerates the order namespace, decodes every record, and returns the
// orders sorted by timestamp descending (newest first). Entries that are
// missing, not valid JSON, or fail domain validation are excluded rather than
// aborting the listing.
func (s *Store) List(ctx context.Context) ([]*order.Order, error) {
	keys, err := s.kv.List(ctx, keyPrefix)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	orders := make([]*order.Order, 0, len(keys))
	for _, key := range keys {
		value, found, err := s.kv.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("read order at %s: %w", key, err)
		}
		if !found {
			continue
		}

		var dto orderDTO
		if err := json.Unmarshal([]byte(value), &dto); err != nil {
			continue
		}

		aggregate, err := toDomain(dto)
		if err != nil {
			continue
		}

		orders = append(orders, aggregate)
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].Timestamp().After(orders[j].Timestamp())
	})

	return orders, nil
}
