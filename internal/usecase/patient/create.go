package patient

import (
	"context"
	"time"

	"github.com/clinicstack/clinic-manager/internal/audit"
	"github.com/clinicstack/clinic-manager/internal/domain/usage"
	"github.com/clinicstack/clinic-manager/internal/httperr"
	"github.com/clinicstack/clinic-manager/internal/models"
	"github.com/clinicstack/clinic-manager/internal/tenant"
)

// Repository is the slice of the record store the patient usecases need.
type Repository interface {
	CreatePatient(ctx context.Context, scope tenant.Scope, p *models.Patient) error
	BumpUsage(ctx context.Context, scope tenant.Scope, monthYear string, d usage.Delta) error
}

// ======================================================
// INPUT
// ======================================================

type CreatePatientInput struct {
	Name   string
	Phone  string
	DOB    *time.Time
	Age    *int
	Gender string
	City   string
	UHID   string
	Notes  string
}

// ======================================================
// USE CASE
// ======================================================

type CreatePatient struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewCreatePatient(repo Repository, audit *audit.Dispatcher) *CreatePatient {
	return &CreatePatient{repo: repo, audit: audit}
}

func (uc *CreatePatient) Execute(
	ctx context.Context,
	scope tenant.Scope,
	in CreatePatientInput,
) (*models.Patient, error) {

	if in.Name == "" {
		return nil, httperr.ErrBusiness("name_required")
	}

	p := &models.Patient{
		Name:   in.Name,
		Phone:  in.Phone,
		DOB:    in.DOB,
		Age:    in.Age,
		Gender: in.Gender,
		City:   in.City,
		UHID:   in.UHID,
		Notes:  in.Notes,
	}

	if err := uc.repo.CreatePatient(ctx, scope, p); err != nil {
		return nil, err
	}

	// Meter failures never undo the create; the meter is display-only.
	_ = uc.repo.BumpUsage(ctx, scope, usage.MonthKey(time.Now()), usage.Delta{Patients: 1})

	uc.audit.Dispatch(audit.Event{
		WorkspaceID: scope.WorkspaceID,
		UserID:      scope.UserID,
		Action:      "patient_created",
		Entity:      "patient",
		EntityID:    p.ID,
	})

	return p, nil
}
