package repository

import (
	"context"

	"github.com/clinicstack/clinic-manager/internal/models"
	"github.com/clinicstack/clinic-manager/internal/tenant"
)

func (s *GormStore) GetWorkspace(ctx context.Context, scope tenant.Scope) (*models.Workspace, error) {
	var ws models.Workspace
	if err := s.db.WithContext(ctx).
		First(&ws, "id = ?", scope.WorkspaceID).Error; err != nil {
		return nil, err
	}
	return &ws, nil
}

func (s *GormStore) UpdateWorkspace(ctx context.Context, scope tenant.Scope, ws *models.Workspace) error {
	ws.ID = scope.WorkspaceID
	return s.db.WithContext(ctx).Save(ws).Error
}
