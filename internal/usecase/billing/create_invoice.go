package billing

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/clinicstack/clinic-manager/internal/audit"
	"github.com/clinicstack/clinic-manager/internal/docgen"
	domain "github.com/clinicstack/clinic-manager/internal/domain/billing"
	"github.com/clinicstack/clinic-manager/internal/domain/usage"
	"github.com/clinicstack/clinic-manager/internal/httperr"
	"github.com/clinicstack/clinic-manager/internal/models"
	"github.com/clinicstack/clinic-manager/internal/tenant"
)

type Repository interface {
	GetPatient(ctx context.Context, scope tenant.Scope, id string) (*models.Patient, error)
	CreateInvoice(ctx context.Context, scope tenant.Scope, inv *models.Invoice) error
	SetInvoicePDF(ctx context.Context, scope tenant.Scope, id, url string) error
	SettingValue(ctx context.Context, scope tenant.Scope, key, def string) (string, error)
	BumpUsage(ctx context.Context, scope tenant.Scope, monthYear string, d usage.Delta) error
}

// ======================================================
// INPUT
// ======================================================

type CreateInvoiceInput struct {
	PatientID string
	VisitID   string
	Currency  string
	Status    string // PENDING or PAID
	Items     domain.Items
}

// ======================================================
// USE CASE
// ======================================================

// CreateInvoice persists a billing snapshot: line amounts and totals are
// computed here, at save time, and never recomputed afterwards. A PAID
// invoice additionally triggers document generation fire-and-forget — the
// invoice stays persisted even when that trigger fails.
type CreateInvoice struct {
	repo  Repository
	docs  docgen.Generator
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewCreateInvoice(
	repo Repository,
	docs docgen.Generator,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CreateInvoice {
	return &CreateInvoice{
		repo:  repo,
		docs:  docs,
		audit: audit,
		log:   log,
	}
}

func (uc *CreateInvoice) Execute(
	ctx context.Context,
	scope tenant.Scope,
	in CreateInvoiceInput,
) (*models.Invoice, error) {

	if len(in.Items) == 0 {
		return nil, httperr.ErrBusiness("items_required")
	}
	if in.Status != "PENDING" && in.Status != "PAID" {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	if _, err := uc.repo.GetPatient(ctx, scope, in.PatientID); err != nil {
		return nil, httperr.ErrBusiness("patient_not_found")
	}

	currency := in.Currency
	if currency == "" {
		var err error
		currency, err = uc.repo.SettingValue(ctx, scope, models.SettingCurrency, "INR")
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	items := domain.Normalize(in.Items)
	totals := domain.ComputeTotals(items)

	inv := &models.Invoice{
		PatientID: in.PatientID,
		InvoiceNo: domain.NewInvoiceNumber(now),
		Currency:  currency,
		Subtotal:  totals.Subtotal,
		Tax:       totals.Tax,
		Total:     totals.Total,
		Status:    in.Status,
		Items:     items,
	}
	if in.VisitID != "" {
		inv.VisitID = &in.VisitID
	}

	if err := uc.repo.CreateInvoice(ctx, scope, inv); err != nil {
		return nil, err
	}

	// Meter failures never undo the create; the meter is display-only.
	if err := uc.repo.BumpUsage(ctx, scope, usage.MonthKey(now), usage.Delta{Invoices: 1}); err != nil {
		uc.log.Warn("usage meter not bumped",
			zap.String("month", usage.MonthKey(now)),
			zap.Error(err),
		)
	}

	uc.audit.Dispatch(audit.Event{
		WorkspaceID: scope.WorkspaceID,
		UserID:      scope.UserID,
		Action:      "invoice_created",
		Entity:      "invoice",
		EntityID:    inv.ID,
	})

	if in.Status == "PAID" {
		go uc.generateDocument(scope, inv.ID)
	}

	return inv, nil
}

// generateDocument runs detached from the request: navigating away leaves it
// to complete or fail on its own, with no retry.
func (uc *CreateInvoice) generateDocument(scope tenant.Scope, invoiceID string) {
	ctx, cancel := contextWithDetachedTimeout()
	defer cancel()

	url, err := uc.docs.Generate(ctx, docgen.KindInvoice, invoiceID)
	if err != nil {
		uc.log.Warn("invoice document generation failed",
			zap.String("invoice_id", invoiceID),
			zap.Error(err),
		)
		return
	}

	if err := uc.repo.SetInvoicePDF(ctx, scope, invoiceID, url); err != nil {
		uc.log.Warn("invoice pdf url not saved",
			zap.String("invoice_id", invoiceID),
			zap.Error(err),
		)
	}
}
