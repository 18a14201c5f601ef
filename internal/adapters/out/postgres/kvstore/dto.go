// Package kvstore provides the GORM-based implementation of the key-value
// storage port. Orders are stored as opaque serialized values in a single
// table, keyed by their namespaced storage key.
package kvstore

// KVEntryDTO represents one row of the key-value table.
// Value holds the serialized record as written by the order store.
type KVEntryDTO struct {
	Key   string `gorm:"primaryKey;size:255"`
	Value string
}

// TableName specifies the database table name for key-value entries.
// Overrides GORM's default naming convention to use "kv_entries".
func (KVEntryDTO) TableName() string {
	return "kv_entries"
}
