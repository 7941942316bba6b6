package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clinicstack/clinic-manager/internal/domain/usage"
	"github.com/clinicstack/clinic-manager/internal/models"
	"github.com/clinicstack/clinic-manager/internal/tenant"
)

// BumpUsage upserts the (workspace, month) meter row atomically via an
// on-conflict increment, so concurrent creates never lose counts.
func (s *GormStore) BumpUsage(ctx context.Context, scope tenant.Scope, monthYear string, d usage.Delta) error {
	meter := models.UsageMeter{
		ID:           models.NewID(),
		WorkspaceID:  scope.WorkspaceID,
		MonthYear:    monthYear,
		PatientCount: d.Patients,
		VisitCount:   d.Visits,
		InvoiceCount: d.Invoices,
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "workspace_id"},
				{Name: "month_year"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"patient_count": gorm.Expr("usage_meters.patient_count + ?", d.Patients),
				"visit_count":   gorm.Expr("usage_meters.visit_count + ?", d.Visits),
				"invoice_count": gorm.Expr("usage_meters.invoice_count + ?", d.Invoices),
			}),
		}).
		Create(&meter).Error
}

// GetUsage returns the month's meter, or (nil, nil) when nothing was
// recorded yet.
func (s *GormStore) GetUsage(ctx context.Context, scope tenant.Scope, monthYear string) (*models.UsageMeter, error) {
	var meter models.UsageMeter
	err := s.db.WithContext(ctx).
		Where("workspace_id = ? AND month_year = ?", scope.WorkspaceID, monthYear).
		First(&meter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &meter, nil
}
