package visit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/clinicstack/clinic-manager/internal/audit"
	domain "github.com/clinicstack/clinic-manager/internal/domain/appointment"
	"github.com/clinicstack/clinic-manager/internal/domain/clinical"
	"github.com/clinicstack/clinic-manager/internal/domain/usage"
	"github.com/clinicstack/clinic-manager/internal/httperr"
	"github.com/clinicstack/clinic-manager/internal/models"
	"github.com/clinicstack/clinic-manager/internal/tenant"
)

type Repository interface {
	GetPatient(ctx context.Context, scope tenant.Scope, id string) (*models.Patient, error)
	CreateVisit(ctx context.Context, scope tenant.Scope, v *models.Visit) error
	GetAppointment(ctx context.Context, scope tenant.Scope, id string) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, scope tenant.Scope, ap *models.Appointment) error
	BumpUsage(ctx context.Context, scope tenant.Scope, monthYear string, d usage.Delta) error
}

// DraftStore clears the in-progress clinical draft after a save.
type DraftStore interface {
	Clear(ctx context.Context, scope tenant.Scope, patientID string) error
}

// ======================================================
// INPUT
// ======================================================

type CompleteVisitInput struct {
	PatientID     string
	AppointmentID string
	Clinical      clinical.Record
}

// ======================================================
// USE CASE
// ======================================================

// CompleteVisit persists a finished clinical encounter. The visit insert is
// the step that matters: the appointment status update, draft cleanup and
// usage bump that follow are never rolled back or retried when they fail.
type CompleteVisit struct {
	repo   Repository
	drafts DraftStore
	audit  *audit.Dispatcher
	log    *zap.Logger
}

func NewCompleteVisit(
	repo Repository,
	drafts DraftStore,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CompleteVisit {
	return &CompleteVisit{
		repo:   repo,
		drafts: drafts,
		audit:  audit,
		log:    log,
	}
}

func (uc *CompleteVisit) Execute(
	ctx context.Context,
	scope tenant.Scope,
	in CompleteVisitInput,
) (*models.Visit, error) {

	if _, err := uc.repo.GetPatient(ctx, scope, in.PatientID); err != nil {
		return nil, httperr.ErrBusiness("patient_not_found")
	}

	now := time.Now()

	v := &models.Visit{
		PatientID:    in.PatientID,
		DoctorID:     scope.UserID,
		VisitAt:      now,
		Status:       "COMPLETED",
		ClinicalData: in.Clinical,
	}
	if in.AppointmentID != "" {
		v.AppointmentID = &in.AppointmentID
	}

	if err := uc.repo.CreateVisit(ctx, scope, v); err != nil {
		return nil, err
	}

	if in.AppointmentID != "" {
		if err := uc.completeAppointment(ctx, scope, in.AppointmentID, now); err != nil {
			uc.log.Warn("appointment not marked completed after visit save",
				zap.String("appointment_id", in.AppointmentID),
				zap.Error(err),
			)
		}
	}

	if err := uc.drafts.Clear(ctx, scope, in.PatientID); err != nil {
		uc.log.Warn("visit draft not cleared",
			zap.String("patient_id", in.PatientID),
			zap.Error(err),
		)
	}

	// Meter failures never undo the save; the meter is display-only.
	if err := uc.repo.BumpUsage(ctx, scope, usage.MonthKey(now), usage.Delta{Visits: 1}); err != nil {
		uc.log.Warn("usage meter not bumped",
			zap.String("month", usage.MonthKey(now)),
			zap.Error(err),
		)
	}

	uc.audit.Dispatch(audit.Event{
		WorkspaceID: scope.WorkspaceID,
		UserID:      scope.UserID,
		Action:      "visit_completed",
		Entity:      "visit",
		EntityID:    v.ID,
	})

	return v, nil
}

func (uc *CompleteVisit) completeAppointment(
	ctx context.Context,
	scope tenant.Scope,
	appointmentID string,
	now time.Time,
) error {

	ap, err := uc.repo.GetAppointment(ctx, scope, appointmentID)
	if err != nil {
		return err
	}

	if err := domain.Complete(ap, now); err != nil {
		return err
	}

	return uc.repo.UpdateAppointment(ctx, scope, ap)
}
