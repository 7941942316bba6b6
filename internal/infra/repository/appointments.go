package repository

import (
	"context"
	"time"

	"github.com/clinicstack/clinic-manager/internal/models"
	"github.com/clinicstack/clinic-manager/internal/tenant"
)

func (s *GormStore) CreateAppointment(ctx context.Context, scope tenant.Scope, ap *models.Appointment) error {
	ap.WorkspaceID = scope.WorkspaceID
	return s.db.WithContext(ctx).Create(ap).Error
}

func (s *GormStore) GetAppointment(ctx context.Context, scope tenant.Scope, id string) (*models.Appointment, error) {
	var ap models.Appointment
	if err := s.db.WithContext(ctx).
		Where("id = ? AND workspace_id = ?", id, scope.WorkspaceID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (s *GormStore) UpdateAppointment(ctx context.Context, scope tenant.Scope, ap *models.Appointment) error {
	ap.WorkspaceID = scope.WorkspaceID
	return s.db.WithContext(ctx).Save(ap).Error
}

// ListAppointmentsForPeriod returns the workspace's appointments with
// start_at within [start, end), optionally narrowed by status.
func (s *GormStore) ListAppointmentsForPeriod(
	ctx context.Context,
	scope tenant.Scope,
	start time.Time,
	end time.Time,
	status string,
) ([]models.Appointment, error) {

	q := s.db.WithContext(ctx).
		Preload("Patient").
		Where(
			"workspace_id = ? AND start_at >= ? AND start_at < ?",
			scope.WorkspaceID, start, end,
		)

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var apps []models.Appointment
	if err := q.
		Order("start_at ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}
