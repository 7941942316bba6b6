package appointment

import (
	"context"

	"github.com/clinicstack/clinic-manager/internal/audit"
	domain "github.com/clinicstack/clinic-manager/internal/domain/appointment"
	"github.com/clinicstack/clinic-manager/internal/httperr"
	"github.com/clinicstack/clinic-manager/internal/models"
	"github.com/clinicstack/clinic-manager/internal/tenant"
	"github.com/clinicstack/clinic-manager/internal/timezone"
)

// Transition applies an explicit status change (COMPLETED or NO_SHOW) to a
// scheduled appointment.
type Transition struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewTransition(repo Repository, audit *audit.Dispatcher) *Transition {
	return &Transition{repo: repo, audit: audit}
}

func (uc *Transition) Execute(
	ctx context.Context,
	scope tenant.Scope,
	appointmentID string,
	target domain.Status,
) (*models.Appointment, error) {

	ws, err := uc.repo.GetWorkspace(ctx, scope)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, scope, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	var action string
	switch target {
	case domain.StatusCompleted:
		if err := domain.Complete(ap, timezone.NowIn(ws.Timezone)); err != nil {
			return nil, err
		}
		action = "appointment_completed"
	case domain.StatusNoShow:
		if err := domain.MarkNoShow(ap); err != nil {
			return nil, err
		}
		action = "appointment_no_show"
	default:
		return nil, httperr.ErrBusiness("invalid_status")
	}

	if err := uc.repo.UpdateAppointment(ctx, scope, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		WorkspaceID: scope.WorkspaceID,
		UserID:      scope.UserID,
		Action:      action,
		Entity:      "appointment",
		EntityID:    ap.ID,
	})

	return ap, nil
}
