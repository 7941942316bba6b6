package appointment

import (
	"context"
	"time"

	"github.com/clinicstack/clinic-manager/internal/models"
	"github.com/clinicstack/clinic-manager/internal/tenant"
	"github.com/clinicstack/clinic-manager/internal/timezone"
)

type ListByDay struct {
	repo Repository
}

func NewListByDay(repo Repository) *ListByDay {
	return &ListByDay{repo: repo}
}

// Execute lists the workspace's appointments for one calendar day in the
// clinic's timezone, optionally narrowed by status.
func (uc *ListByDay) Execute(
	ctx context.Context,
	scope tenant.Scope,
	date time.Time,
	status string,
) ([]models.Appointment, error) {

	ws, err := uc.repo.GetWorkspace(ctx, scope)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(ws.Timezone)

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	end := start.Add(24 * time.Hour)

	return uc.repo.ListAppointmentsForPeriod(ctx, scope, start, end, status)
}

type ListByMonth struct {
	repo Repository
}

func NewListByMonth(repo Repository) *ListByMonth {
	return &ListByMonth{repo: repo}
}

func (uc *ListByMonth) Execute(
	ctx context.Context,
	scope tenant.Scope,
	year int,
	month time.Month,
) ([]models.Appointment, error) {

	ws, err := uc.repo.GetWorkspace(ctx, scope)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(ws.Timezone)

	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	return uc.repo.ListAppointmentsForPeriod(ctx, scope, start, end, "")
}
