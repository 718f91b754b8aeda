package storage

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// kvEntry is the row backing one stored key.
type kvEntry struct {
	Key   string `gorm:"primaryKey;type:varchar(100)"`
	Value []byte
}

func (kvEntry) TableName() string { return "kv_entries" }

// GORMStore is a KV implementation persisted through GORM, so client state
// survives restarts the way browser local storage survives page loads.
type GORMStore struct {
	db *gorm.DB
}

// NewGORMStore creates a store on an already-open GORM connection and ensures
// the backing table exists.
func NewGORMStore(db *gorm.DB) (*GORMStore, error) {
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_entries: %w", err)
	}
	return &GORMStore{db: db}, nil
}

// OpenSQLite opens (or creates) a SQLite-backed store at path.
func OpenSQLite(path string) (*GORMStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open local store %s: %w", path, err)
	}
	return NewGORMStore(db)
}

// Get returns the stored value for key, if any.
func (s *GORMStore) Get(key string) ([]byte, bool, error) {
	var entry kvEntry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return entry.Value, true, nil
}

// Put stores value under key, replacing any previous value.
func (s *GORMStore) Put(key string, value []byte) error {
	entry := kvEntry{Key: key, Value: value}
	if err := s.db.Save(&entry).Error; err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is a no-op.
func (s *GORMStore) Delete(key string) error {
	if err := s.db.Delete(&kvEntry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}
