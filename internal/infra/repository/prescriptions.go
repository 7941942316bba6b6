package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/clinicstack/clinic-manager/internal/models"
	"github.com/clinicstack/clinic-manager/internal/tenant"
)

// FindPrescriptionByVisit looks up the prescription's natural key. Returns
// (nil, nil) when the visit has no prescription yet.
func (s *GormStore) FindPrescriptionByVisit(ctx context.Context, scope tenant.Scope, visitID string) (*models.Prescription, error) {
	var rx models.Prescription
	err := s.db.WithContext(ctx).
		Where("workspace_id = ? AND visit_id = ?", scope.WorkspaceID, visitID).
		First(&rx).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rx, nil
}

func (s *GormStore) CreatePrescription(ctx context.Context, scope tenant.Scope, rx *models.Prescription) error {
	rx.WorkspaceID = scope.WorkspaceID
	return s.db.WithContext(ctx).Create(rx).Error
}

func (s *GormStore) UpdatePrescription(ctx context.Context, scope tenant.Scope, rx *models.Prescription) error {
	rx.WorkspaceID = scope.WorkspaceID
	return s.db.WithContext(ctx).Save(rx).Error
}

func (s *GormStore) SetPrescriptionPDF(ctx context.Context, scope tenant.Scope, id, url string) error {
	return s.db.WithContext(ctx).
		Model(&models.Prescription{}).
		Where("id = ? AND workspace_id = ?", id, scope.WorkspaceID).
		Update("pdf_url", url).Error
}
