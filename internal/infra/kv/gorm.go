package kv

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvEntryはKVStoreをRDBに載せるための1行。
type kvEntry struct {
	Key   string `gorm:"primaryKey;column:key;size:255"`
	Value []byte `gorm:"column:value"`
}

func (kvEntry) TableName() string {
	return "kv_entries"
}

// GormはGORM（Postgres想定）を裏にしたKVStore。
type Gorm struct {
	db *gorm.DB
}

// NewGormはテーブルをマイグレーションしてから返す。
func NewGorm(db *gorm.DB) (*Gorm, error) {
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, err
	}
	return &Gorm{db: db}, nil
}

func (s *Gorm) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var row kvEntry
	err := s.db.WithContext(ctx).
		Where("key = ?", key).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return row.Value, true, nil
}

func (s *Gorm) Set(ctx context.Context, key string, value []byte) error {
	row := kvEntry{Key: key, Value: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&row).Error
}

func (s *Gorm) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&kvEntry{}).Error
}
