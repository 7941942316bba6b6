package repository

import (
	"context"

	"github.com/clinicstack/clinic-manager/internal/models"
	"github.com/clinicstack/clinic-manager/internal/tenant"
)

func (s *GormStore) CreateInvoice(ctx context.Context, scope tenant.Scope, inv *models.Invoice) error {
	inv.WorkspaceID = scope.WorkspaceID
	return s.db.WithContext(ctx).Create(inv).Error
}

func (s *GormStore) GetInvoice(ctx context.Context, scope tenant.Scope, id string) (*models.Invoice, error) {
	var inv models.Invoice
	if err := s.db.WithContext(ctx).
		Preload("Patient").
		Where("id = ? AND workspace_id = ?", id, scope.WorkspaceID).
		First(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (s *GormStore) UpdateInvoice(ctx context.Context, scope tenant.Scope, inv *models.Invoice) error {
	inv.WorkspaceID = scope.WorkspaceID
	return s.db.WithContext(ctx).Save(inv).Error
}

func (s *GormStore) SetInvoicePDF(ctx context.Context, scope tenant.Scope, id, url string) error {
	return s.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("id = ? AND workspace_id = ?", id, scope.WorkspaceID).
		Update("pdf_url", url).Error
}

func (s *GormStore) ListInvoices(ctx context.Context, scope tenant.Scope, status string) ([]models.Invoice, error) {
	q := s.db.WithContext(ctx).
		Preload("Patient").
		Where("workspace_id = ?", scope.WorkspaceID)

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var invoices []models.Invoice
	if err := q.
		Order("created_at DESC").
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (s *GormStore) ListInvoicesByPatient(ctx context.Context, scope tenant.Scope, patientID string) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := s.db.WithContext(ctx).
		Where("workspace_id = ? AND patient_id = ?", scope.WorkspaceID, patientID).
		Order("created_at DESC").
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}
