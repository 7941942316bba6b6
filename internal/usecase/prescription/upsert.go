package prescription

import (
	"context"

	"github.com/clinicstack/clinic-manager/internal/audit"
	"github.com/clinicstack/clinic-manager/internal/domain/clinical"
	"github.com/clinicstack/clinic-manager/internal/httperr"
	"github.com/clinicstack/clinic-manager/internal/keymutex"
	"github.com/clinicstack/clinic-manager/internal/models"
	"github.com/clinicstack/clinic-manager/internal/tenant"
)

type Repository interface {
	GetVisit(ctx context.Context, scope tenant.Scope, id string) (*models.Visit, error)
	FindPrescriptionByVisit(ctx context.Context, scope tenant.Scope, visitID string) (*models.Prescription, error)
	CreatePrescription(ctx context.Context, scope tenant.Scope, rx *models.Prescription) error
	UpdatePrescription(ctx context.Context, scope tenant.Scope, rx *models.Prescription) error
}

// ======================================================
// USE CASE
// ======================================================

// UpsertByVisit saves a visit's prescription: update in place when one
// exists, create otherwise. A per-visit mutex serializes the lookup and the
// write, so two concurrent saves cannot produce duplicate rows.
type UpsertByVisit struct {
	repo  Repository
	locks *keymutex.KeyMutex
	audit *audit.Dispatcher
}

func NewUpsertByVisit(repo Repository, audit *audit.Dispatcher) *UpsertByVisit {
	return &UpsertByVisit{
		repo:  repo,
		locks: keymutex.New(),
		audit: audit,
	}
}

func (uc *UpsertByVisit) Execute(
	ctx context.Context,
	scope tenant.Scope,
	visitID string,
	items clinical.RxItems,
) (*models.Prescription, error) {

	v, err := uc.repo.GetVisit(ctx, scope, visitID)
	if err != nil {
		return nil, httperr.ErrBusiness("visit_not_found")
	}

	unlock := uc.locks.Lock(scope.WorkspaceID + ":" + visitID)
	defer unlock()

	existing, err := uc.repo.FindPrescriptionByVisit(ctx, scope, visitID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Items = items
		if err := uc.repo.UpdatePrescription(ctx, scope, existing); err != nil {
			return nil, err
		}
		uc.dispatch(scope, "prescription_updated", existing.ID)
		return existing, nil
	}

	rx := &models.Prescription{
		VisitID:   visitID,
		PatientID: v.PatientID,
		DoctorID:  scope.UserID,
		Items:     items,
	}

	if err := uc.repo.CreatePrescription(ctx, scope, rx); err != nil {
		return nil, err
	}

	uc.dispatch(scope, "prescription_created", rx.ID)
	return rx, nil
}

func (uc *UpsertByVisit) dispatch(scope tenant.Scope, action, id string) {
	uc.audit.Dispatch(audit.Event{
		WorkspaceID: scope.WorkspaceID,
		UserID:      scope.UserID,
		Action:      action,
		Entity:      "prescription",
		EntityID:    id,
	})
}
