package repository

import (
	"context"

	"github.com/clinicstack/clinic-manager/internal/models"
	"github.com/clinicstack/clinic-manager/internal/tenant"
)

func (s *GormStore) CreateFileRecord(ctx context.Context, scope tenant.Scope, f *models.FileRecord) error {
	f.WorkspaceID = scope.WorkspaceID
	return s.db.WithContext(ctx).Create(f).Error
}

func (s *GormStore) GetFileRecord(ctx context.Context, scope tenant.Scope, id string) (*models.FileRecord, error) {
	var f models.FileRecord
	if err := s.db.WithContext(ctx).
		Where("id = ? AND workspace_id = ?", id, scope.WorkspaceID).
		First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *GormStore) ListFilesByPatient(ctx context.Context, scope tenant.Scope, patientID string) ([]models.FileRecord, error) {
	var files []models.FileRecord
	if err := s.db.WithContext(ctx).
		Where("workspace_id = ? AND patient_id = ?", scope.WorkspaceID, patientID).
		Order("created_at DESC").
		Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}
