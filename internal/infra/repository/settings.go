package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/clinicstack/clinic-manager/internal/models"
	"github.com/clinicstack/clinic-manager/internal/tenant"
)

// FindSetting looks up one config row by its natural key. Returns (nil, nil)
// when the workspace has no row for that key.
func (s *GormStore) FindSetting(ctx context.Context, scope tenant.Scope, key string) (*models.ClinicSetting, error) {
	var setting models.ClinicSetting
	err := s.db.WithContext(ctx).
		Where("workspace_id = ? AND key = ?", scope.WorkspaceID, key).
		First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (s *GormStore) CreateSetting(ctx context.Context, scope tenant.Scope, setting *models.ClinicSetting) error {
	setting.WorkspaceID = scope.WorkspaceID
	return s.db.WithContext(ctx).Create(setting).Error
}

func (s *GormStore) UpdateSetting(ctx context.Context, scope tenant.Scope, setting *models.ClinicSetting) error {
	setting.WorkspaceID = scope.WorkspaceID
	return s.db.WithContext(ctx).Save(setting).Error
}

func (s *GormStore) ListSettings(ctx context.Context, scope tenant.Scope) ([]models.ClinicSetting, error) {
	var settings []models.ClinicSetting
	if err := s.db.WithContext(ctx).
		Where("workspace_id = ?", scope.WorkspaceID).
		Order("key ASC").
		Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// SettingValue returns the value for a key, or def when unset.
func (s *GormStore) SettingValue(ctx context.Context, scope tenant.Scope, key, def string) (string, error) {
	setting, err := s.FindSetting(ctx, scope, key)
	if err != nil {
		return "", err
	}
	if setting == nil || setting.Value == "" {
		return def, nil
	}
	return setting.Value, nil
}
