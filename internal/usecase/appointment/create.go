package appointment

import (
	"context"
	"time"

	"github.com/clinicstack/clinic-manager/internal/audit"
	domain "github.com/clinicstack/clinic-manager/internal/domain/appointment"
	"github.com/clinicstack/clinic-manager/internal/domain/usage"
	"github.com/clinicstack/clinic-manager/internal/httperr"
	"github.com/clinicstack/clinic-manager/internal/models"
	"github.com/clinicstack/clinic-manager/internal/tenant"
)

type Repository interface {
	GetWorkspace(ctx context.Context, scope tenant.Scope) (*models.Workspace, error)
	GetPatient(ctx context.Context, scope tenant.Scope, id string) (*models.Patient, error)
	CreateAppointment(ctx context.Context, scope tenant.Scope, ap *models.Appointment) error
	GetAppointment(ctx context.Context, scope tenant.Scope, id string) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, scope tenant.Scope, ap *models.Appointment) error
	ListAppointmentsForPeriod(ctx context.Context, scope tenant.Scope, start, end time.Time, status string) ([]models.Appointment, error)
	BumpUsage(ctx context.Context, scope tenant.Scope, monthYear string, d usage.Delta) error
}

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	PatientID string
	StartAt   time.Time
	Reason    string
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(repo Repository, audit *audit.Dispatcher) *CreateAppointment {
	return &CreateAppointment{repo: repo, audit: audit}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	scope tenant.Scope,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if in.StartAt.IsZero() {
		return nil, httperr.ErrBusiness("start_at_required")
	}

	if _, err := uc.repo.GetPatient(ctx, scope, in.PatientID); err != nil {
		return nil, httperr.ErrBusiness("patient_not_found")
	}

	ap := &models.Appointment{
		PatientID: in.PatientID,
		DoctorID:  scope.UserID,
		StartAt:   in.StartAt,
		Status:    string(domain.InitialStatus()),
		Reason:    in.Reason,
		Notes:     in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, scope, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		WorkspaceID: scope.WorkspaceID,
		UserID:      scope.UserID,
		Action:      "appointment_created",
		Entity:      "appointment",
		EntityID:    ap.ID,
	})

	return ap, nil
}
