package repository

import (
	"context"
	"strings"

	"github.com/clinicstack/clinic-manager/internal/models"
	"github.com/clinicstack/clinic-manager/internal/tenant"
)

func (s *GormStore) CreatePatient(ctx context.Context, scope tenant.Scope, p *models.Patient) error {
	p.WorkspaceID = scope.WorkspaceID
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *GormStore) GetPatient(ctx context.Context, scope tenant.Scope, id string) (*models.Patient, error) {
	var p models.Patient
	if err := s.db.WithContext(ctx).
		Where("id = ? AND workspace_id = ?", id, scope.WorkspaceID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *GormStore) UpdatePatient(ctx context.Context, scope tenant.Scope, p *models.Patient) error {
	p.WorkspaceID = scope.WorkspaceID
	return s.db.WithContext(ctx).
		Where("workspace_id = ?", scope.WorkspaceID).
		Save(p).Error
}

// ListPatients returns the workspace's patients, newest first. A non-empty
// query narrows by name, phone or uhid substring.
func (s *GormStore) ListPatients(ctx context.Context, scope tenant.Scope, query string) ([]models.Patient, error) {
	q := s.db.WithContext(ctx).Where("workspace_id = ?", scope.WorkspaceID)

	query = strings.ToLower(strings.TrimSpace(query))
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(uhid) LIKE ?",
			like, like, like,
		)
	}

	var patients []models.Patient
	if err := q.
		Order("created_at DESC").
		Find(&patients).Error; err != nil {
		return nil, err
	}

	return patients, nil
}
