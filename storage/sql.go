// storage/sql.go
package storage

import (
	"encoding/json"
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one row of the key-value table backing SQLStore.
type Record struct {
	Key   string `gorm:"primaryKey;size:256" json:"key"`
	Value string `gorm:"type:text;not null" json:"value"`
}

func (Record) TableName() string { return "records" }

// SQLStore persists records in a single GORM-managed table. Works against
// Postgres for deployments and SQLite for local/dev runs — the Store
// contract is identical either way.
type SQLStore struct {
	DB *gorm.DB
}

func NewSQLStore(db *gorm.DB) (*SQLStore, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &SQLStore{DB: db}, nil
}

func (s *SQLStore) Get(key string, out interface{}) bool {
	var rec Record
	if err := s.DB.Where("key = ?", key).First(&rec).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("⚠️ [STORE] Read failed for %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(rec.Value), out); err != nil {
		log.Printf("⚠️ [STORE] Corrupt record at %s: %v", key, err)
		return false
	}
	return true
}

func (s *SQLStore) Set(key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("⚠️ [STORE] Failed to serialize record for %s: %v", key, err)
		return
	}
	rec := Record{Key: key, Value: string(raw)}
	if err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error; err != nil {
		log.Printf("⚠️ [STORE] Write failed for %s: %v", key, err)
	}
}

func (s *SQLStore) Remove(key string) {
	if err := s.DB.Where("key = ?", key).Delete(&Record{}).Error; err != nil {
		log.Printf("⚠️ [STORE] Delete failed for %s: %v", key, err)
	}
}

func (s *SQLStore) Keys(prefix string) []string {
	var keys []string
	if err := s.DB.Model(&Record{}).
		Where("key LIKE ?", prefix+"%").
		Pluck("key", &keys).Error; err != nil {
		log.Printf("⚠️ [STORE] Key scan failed for prefix %s: %v", prefix, err)
		return nil
	}
	return keys
}
