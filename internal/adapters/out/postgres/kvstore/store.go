package kvstore

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormKeyValueStore implements the KeyValueStore port using GORM.
type GormKeyValueStore struct {
	db *gorm.DB
}

// NewGormKeyValueStore creates a new GORM key-value store.
func NewGormKeyValueStore(db *gorm.DB) *GormKeyValueStore {
	return &GormKeyValueStore{db: db}
}

// List returns all keys starting with prefix, in ascending key order.
func (s *GormKeyValueStore) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := s.db.WithContext(ctx).
		Model(&KVEntryDTO{}).
		Where("key LIKE ?", prefix+"%").
		Order("key").
		Pluck("key", &keys).Error
	if err != nil {
		return nil, err
	}

	return keys, nil
}

// Get retrieves the value stored under key.
// A missing key is not an error; the second return value reports existence.
func (s *GormKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	var dto KVEntryDTO
	if err := s.db.WithContext(ctx).First(&dto, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	return dto.Value, true, nil
}

// Set writes value under key, overwriting any existing value (upsert).
func (s *GormKeyValueStore) Set(ctx context.Context, key, value string) error {
	dto := KVEntryDTO{Key: key, Value: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&dto).Error
}
