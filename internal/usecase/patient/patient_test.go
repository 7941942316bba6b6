package patient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/clinicstack/clinic-manager/internal/audit"
	"github.com/clinicstack/clinic-manager/internal/domain/timeline"
	"github.com/clinicstack/clinic-manager/internal/domain/usage"
	"github.com/clinicstack/clinic-manager/internal/httperr"
	"github.com/clinicstack/clinic-manager/internal/models"
	"github.com/clinicstack/clinic-manager/internal/tenant"
)

// ======================================================
// FAKES
// ======================================================

type fakePatientRepo struct {
	created *models.Patient
	bumped  usage.Delta
	bumpErr error

	patient  *models.Patient
	visits   []models.Visit
	invoices []models.Invoice
	files    []models.FileRecord
}

func (f *fakePatientRepo) CreatePatient(_ context.Context, scope tenant.Scope, p *models.Patient) error {
	p.ID = "pat-1"
	p.WorkspaceID = scope.WorkspaceID
	f.created = p
	return nil
}

func (f *fakePatientRepo) BumpUsage(_ context.Context, _ tenant.Scope, _ string, d usage.Delta) error {
	if f.bumpErr != nil {
		return f.bumpErr
	}
	f.bumped = d
	return nil
}

func (f *fakePatientRepo) GetPatient(_ context.Context, _ tenant.Scope, id string) (*models.Patient, error) {
	if f.patient == nil || f.patient.ID != id {
		return nil, httperr.ErrBusiness("patient_not_found")
	}
	return f.patient, nil
}

func (f *fakePatientRepo) ListVisitsByPatient(_ context.Context, _ tenant.Scope, _ string) ([]models.Visit, error) {
	return f.visits, nil
}

func (f *fakePatientRepo) ListInvoicesByPatient(_ context.Context, _ tenant.Scope, _ string) ([]models.Invoice, error) {
	return f.invoices, nil
}

func (f *fakePatientRepo) ListFilesByPatient(_ context.Context, _ tenant.Scope, _ string) ([]models.FileRecord, error) {
	return f.files, nil
}

type nopSink struct{}

func (nopSink) Log(_, _, _, _, _ string, _ any) error { return nil }

func nopDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nopSink{}, zap.NewNop())
}

// ======================================================
// TESTS
// ======================================================

func TestCreatePatientStampsWorkspace(t *testing.T) {
	repo := &fakePatientRepo{}
	uc := NewCreatePatient(repo, nopDispatcher())

	scope := tenant.Scope{WorkspaceID: "ws-1", UserID: "user-1"}

	p, err := uc.Execute(context.Background(), scope, CreatePatientInput{
		Name:  "Asha Verma",
		Phone: "9876543210",
		City:  "Pune",
	})

	require.NoError(t, err)
	assert.Equal(t, "ws-1", p.WorkspaceID)
	assert.Equal(t, "Asha Verma", p.Name)
	assert.Equal(t, 1, repo.bumped.Patients)
}

func TestCreatePatientRequiresName(t *testing.T) {
	repo := &fakePatientRepo{}
	uc := NewCreatePatient(repo, nopDispatcher())

	_, err := uc.Execute(context.Background(), tenant.Scope{WorkspaceID: "ws-1"}, CreatePatientInput{})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "name_required"))
	assert.Nil(t, repo.created)
}

func TestCreatePatientSurvivesMeterFailure(t *testing.T) {
	repo := &fakePatientRepo{bumpErr: errors.New("db down")}
	uc := NewCreatePatient(repo, nopDispatcher())

	p, err := uc.Execute(context.Background(), tenant.Scope{WorkspaceID: "ws-1"}, CreatePatientInput{
		Name: "Asha Verma",
	})

	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestPatientTimelineMergesRecords(t *testing.T) {
	base := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

	repo := &fakePatientRepo{
		patient: &models.Patient{ID: "pat-1", WorkspaceID: "ws-1", Name: "Asha Verma"},
		visits: []models.Visit{
			{ID: "v1", PatientID: "pat-1", VisitAt: base},
		},
		invoices: []models.Invoice{
			{ID: "i1", PatientID: "pat-1", CreatedAt: base.Add(48 * time.Hour)},
		},
		files: []models.FileRecord{
			{ID: "f1", PatientID: "pat-1", CreatedAt: base.Add(24 * time.Hour)},
		},
	}

	uc := NewPatientTimeline(repo)

	res, err := uc.Execute(context.Background(), tenant.Scope{WorkspaceID: "ws-1"}, "pat-1")

	require.NoError(t, err)
	assert.Equal(t, "Asha Verma", res.Patient.Name)

	require.Len(t, res.Entries, 3)
	assert.Equal(t, timeline.TypeInvoice, res.Entries[0].Type)
	assert.Equal(t, timeline.TypeFile, res.Entries[1].Type)
	assert.Equal(t, timeline.TypeVisit, res.Entries[2].Type)
}

func TestPatientTimelineUnknownPatient(t *testing.T) {
	uc := NewPatientTimeline(&fakePatientRepo{})

	_, err := uc.Execute(context.Background(), tenant.Scope{WorkspaceID: "ws-1"}, "pat-unknown")

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "patient_not_found"))
}
