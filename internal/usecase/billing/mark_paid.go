package billing

import (
	"context"

	"go.uber.org/zap"

	"github.com/clinicstack/clinic-manager/internal/audit"
	"github.com/clinicstack/clinic-manager/internal/docgen"
	"github.com/clinicstack/clinic-manager/internal/httperr"
	"github.com/clinicstack/clinic-manager/internal/models"
	"github.com/clinicstack/clinic-manager/internal/tenant"
)

type MarkPaidRepository interface {
	GetInvoice(ctx context.Context, scope tenant.Scope, id string) (*models.Invoice, error)
	UpdateInvoice(ctx context.Context, scope tenant.Scope, inv *models.Invoice) error
	SetInvoicePDF(ctx context.Context, scope tenant.Scope, id, url string) error
}

type MarkPaid struct {
	repo  MarkPaidRepository
	docs  docgen.Generator
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewMarkPaid(
	repo MarkPaidRepository,
	docs docgen.Generator,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *MarkPaid {
	return &MarkPaid{
		repo:  repo,
		docs:  docs,
		audit: audit,
		log:   log,
	}
}

func (uc *MarkPaid) Execute(
	ctx context.Context,
	scope tenant.Scope,
	invoiceID string,
) (*models.Invoice, error) {

	inv, err := uc.repo.GetInvoice(ctx, scope, invoiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("invoice_not_found")
	}

	if inv.Status != "PENDING" {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	inv.Status = "PAID"
	if err := uc.repo.UpdateInvoice(ctx, scope, inv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		WorkspaceID: scope.WorkspaceID,
		UserID:      scope.UserID,
		Action:      "invoice_paid",
		Entity:      "invoice",
		EntityID:    inv.ID,
	})

	go func() {
		genCtx, cancel := contextWithDetachedTimeout()
		defer cancel()

		url, err := uc.docs.Generate(genCtx, docgen.KindInvoice, inv.ID)
		if err != nil {
			uc.log.Warn("invoice document generation failed",
				zap.String("invoice_id", inv.ID),
				zap.Error(err),
			)
			return
		}
		if err := uc.repo.SetInvoicePDF(genCtx, scope, inv.ID, url); err != nil {
			uc.log.Warn("invoice pdf url not saved",
				zap.String("invoice_id", inv.ID),
				zap.Error(err),
			)
		}
	}()

	return inv, nil
}
