package patient

import (
	"context"

	"github.com/clinicstack/clinic-manager/internal/domain/timeline"
	"github.com/clinicstack/clinic-manager/internal/models"
	"github.com/clinicstack/clinic-manager/internal/tenant"
)

// TimelineRepository is the read side feeding a patient's timeline.
type TimelineRepository interface {
	GetPatient(ctx context.Context, scope tenant.Scope, id string) (*models.Patient, error)
	ListVisitsByPatient(ctx context.Context, scope tenant.Scope, patientID string) ([]models.Visit, error)
	ListInvoicesByPatient(ctx context.Context, scope tenant.Scope, patientID string) ([]models.Invoice, error)
	ListFilesByPatient(ctx context.Context, scope tenant.Scope, patientID string) ([]models.FileRecord, error)
}

type PatientTimeline struct {
	repo TimelineRepository
}

func NewPatientTimeline(repo TimelineRepository) *PatientTimeline {
	return &PatientTimeline{repo: repo}
}

type TimelineResult struct {
	Patient *models.Patient  `json:"patient"`
	Entries []timeline.Entry `json:"entries"`
}

// Execute loads a patient with every dated record it owns and merges them
// into one chronologically descending sequence.
func (uc *PatientTimeline) Execute(
	ctx context.Context,
	scope tenant.Scope,
	patientID string,
) (*TimelineResult, error) {

	p, err := uc.repo.GetPatient(ctx, scope, patientID)
	if err != nil {
		return nil, err
	}

	visits, err := uc.repo.ListVisitsByPatient(ctx, scope, patientID)
	if err != nil {
		return nil, err
	}

	invoices, err := uc.repo.ListInvoicesByPatient(ctx, scope, patientID)
	if err != nil {
		return nil, err
	}

	files, err := uc.repo.ListFilesByPatient(ctx, scope, patientID)
	if err != nil {
		return nil, err
	}

	return &TimelineResult{
		Patient: p,
		Entries: timeline.Merge(visits, invoices, files),
	}, nil
}
