package store

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is a single persisted slot.
type Entry struct {
	UserID    string    `json:"user_id" gorm:"primaryKey"`
	Key       string    `json:"key" gorm:"primaryKey"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Entry) TableName() string {
	return "store_entries"
}

// gormStore implements Store on a single gorm table.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-based Store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Get(userID, key string, dest any) (bool, error) {
	var entry Entry
	err := s.db.Where("user_id = ? AND key = ?", userID, key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal([]byte(entry.Value), dest); err != nil {
		// Corrupt slot: fall back to the caller's default rather than fail.
		log.Printf("[WARN] store: corrupt value for user=%s key=%s: %v", userID, key, err)
		return false, nil
	}
	return true, nil
}

func (s *gormStore) Set(userID, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	entry := Entry{
		UserID:    userID,
		Key:       key,
		Value:     string(data),
		UpdatedAt: time.Now(),
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (s *gormStore) Delete(userID, key string) error {
	return s.db.Where("user_id = ? AND key = ?", userID, key).Delete(&Entry{}).Error
}
