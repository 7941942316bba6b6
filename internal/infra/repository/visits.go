package repository

import (
	"context"

	"github.com/clinicstack/clinic-manager/internal/models"
	"github.com/clinicstack/clinic-manager/internal/tenant"
)

func (s *GormStore) CreateVisit(ctx context.Context, scope tenant.Scope, v *models.Visit) error {
	v.WorkspaceID = scope.WorkspaceID
	return s.db.WithContext(ctx).Create(v).Error
}

func (s *GormStore) GetVisit(ctx context.Context, scope tenant.Scope, id string) (*models.Visit, error) {
	var v models.Visit
	if err := s.db.WithContext(ctx).
		Where("id = ? AND workspace_id = ?", id, scope.WorkspaceID).
		First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *GormStore) ListVisitsByPatient(ctx context.Context, scope tenant.Scope, patientID string) ([]models.Visit, error) {
	var visits []models.Visit
	if err := s.db.WithContext(ctx).
		Where("workspace_id = ? AND patient_id = ?", scope.WorkspaceID, patientID).
		Order("visit_at DESC").
		Find(&visits).Error; err != nil {
		return nil, err
	}
	return visits, nil
}
