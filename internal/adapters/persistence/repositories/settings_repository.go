package repositories

import (
	"context"

	"employee-tracker/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsRepository implements SettingsRepository interface
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// GetAll returns all settings as a key-value map
func (r *settingsRepository) GetAll(ctx context.Context) (map[string]string, error) {
	var rows []models.Setting
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}
	return settings, nil
}

// Upsert writes the supplied keys in one transaction; on any failure none of
// the writes become visible. Keys not present in values stay untouched.
func (r *settingsRepository) Upsert(ctx context.Context, values map[string]string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value"}),
			}).Create(&models.Setting{Key: key, Value: value}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
