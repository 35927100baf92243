package services

import (
	"context"
	"fmt"
	"strconv"

	"employee-tracker/internal/adapters/persistence/repositories"
	"employee-tracker/internal/core/domain"
	"employee-tracker/internal/core/policy"
)

// SettingsService exposes the work-hour policy configuration. Values are
// stored as strings; callers parse them through policy.SnapshotFrom at
// decision time so every decision works off an explicit snapshot.
type SettingsService struct {
	settingsRepo repositories.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repositories.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Get returns all settings as a key-value map
func (s *SettingsService) Get(ctx context.Context) (map[string]string, error) {
	return s.settingsRepo.GetAll(ctx)
}

// Update validates and writes the supplied keys atomically; keys not present
// stay untouched.
func (s *SettingsService) Update(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return domain.ErrInvalidInput
	}

	for key, value := range values {
		if err := validateSetting(key, value); err != nil {
			return err
		}
	}

	return s.settingsRepo.Upsert(ctx, values)
}

// validateSetting checks known keys for well-formed values. Unknown keys
// pass through untouched.
func validateSetting(key, value string) error {
	switch key {
	case policy.KeyWorkStartTime:
		if !policy.ValidWorkStartTime(value) {
			return fmt.Errorf("%w: %s must be HH:MM", domain.ErrInvalidSetting, key)
		}
	case policy.KeyDailyWorkHours, policy.KeyOvertimeRate:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number", domain.ErrInvalidSetting, key)
		}
	}
	return nil
}
