package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"memos-graph-sync/internal/syncstatus"
)

type settingRecord struct {
	Name      string `gorm:"primaryKey;size:64"`
	Value     string
	UpdatedAt time.Time
}

func (settingRecord) TableName() string {
	return "settings"
}

type implRepository struct {
	db *gorm.DB
}

// New creates a sqlite settings repository and migrates its schema.
func New(db *gorm.DB) (syncstatus.SettingsRepository, error) {
	if err := db.AutoMigrate(&settingRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate settings: %w", err)
	}
	return &implRepository{db: db}, nil
}

func (r *implRepository) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var rec settingRecord
	err := r.db.WithContext(ctx).Where("name = ?", key).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load setting %s: %w", key, err)
	}
	return []byte(rec.Value), true, nil
}

func (r *implRepository) Save(ctx context.Context, key string, value []byte) error {
	rec := settingRecord{Name: key, Value: string(value), UpdatedAt: time.Now()}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	return nil
}
