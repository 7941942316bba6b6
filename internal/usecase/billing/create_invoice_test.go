package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/clinicstack/clinic-manager/internal/audit"
	"github.com/clinicstack/clinic-manager/internal/docgen"
	domain "github.com/clinicstack/clinic-manager/internal/domain/billing"
	"github.com/clinicstack/clinic-manager/internal/domain/usage"
	"github.com/clinicstack/clinic-manager/internal/httperr"
	"github.com/clinicstack/clinic-manager/internal/models"
	"github.com/clinicstack/clinic-manager/internal/tenant"
)

// ======================================================
// FAKES
// ======================================================

type fakeBillingRepo struct {
	patient *models.Patient

	created *models.Invoice
	invoice *models.Invoice
	updated *models.Invoice

	bumped  usage.Delta
	bumpErr error

	pdfSet chan string
}

func newFakeBillingRepo() *fakeBillingRepo {
	return &fakeBillingRepo{
		patient: &models.Patient{ID: "pat-1", WorkspaceID: "ws-1"},
		pdfSet:  make(chan string, 1),
	}
}

func (f *fakeBillingRepo) GetPatient(_ context.Context, _ tenant.Scope, id string) (*models.Patient, error) {
	if f.patient == nil || f.patient.ID != id {
		return nil, httperr.ErrBusiness("patient_not_found")
	}
	return f.patient, nil
}

func (f *fakeBillingRepo) CreateInvoice(_ context.Context, scope tenant.Scope, inv *models.Invoice) error {
	inv.ID = "inv-1"
	inv.WorkspaceID = scope.WorkspaceID
	f.created = inv
	return nil
}

func (f *fakeBillingRepo) GetInvoice(_ context.Context, _ tenant.Scope, id string) (*models.Invoice, error) {
	if f.invoice == nil || f.invoice.ID != id {
		return nil, httperr.ErrBusiness("invoice_not_found")
	}
	return f.invoice, nil
}

func (f *fakeBillingRepo) UpdateInvoice(_ context.Context, _ tenant.Scope, inv *models.Invoice) error {
	f.updated = inv
	return nil
}

func (f *fakeBillingRepo) SetInvoicePDF(_ context.Context, _ tenant.Scope, _ string, url string) error {
	f.pdfSet <- url
	return nil
}

func (f *fakeBillingRepo) SettingValue(_ context.Context, _ tenant.Scope, _ string, def string) (string, error) {
	return def, nil
}

func (f *fakeBillingRepo) BumpUsage(_ context.Context, _ tenant.Scope, _ string, d usage.Delta) error {
	if f.bumpErr != nil {
		return f.bumpErr
	}
	f.bumped = d
	return nil
}

type recordSink struct{ actions chan string }

func newRecordSink() *recordSink {
	return &recordSink{actions: make(chan string, 10)}
}

func (s *recordSink) Log(_, _, action, _, _ string, _ any) error {
	s.actions <- action
	return nil
}

func testDispatcher() (*audit.Dispatcher, *recordSink) {
	sink := newRecordSink()
	return audit.NewDispatcher(sink, zap.NewNop()), sink
}

// ======================================================
// TESTS
// ======================================================

func TestCreateInvoiceSnapshotsTotals(t *testing.T) {
	repo := newFakeBillingRepo()
	dispatcher, sink := testDispatcher()
	uc := NewCreateInvoice(repo, docgen.NewStub("https://docs.example.com", zap.NewNop()), dispatcher, zap.NewNop())

	scope := tenant.Scope{WorkspaceID: "ws-1", UserID: "user-1"}

	inv, err := uc.Execute(context.Background(), scope, CreateInvoiceInput{
		PatientID: "pat-1",
		Status:    "PENDING",
		Items: domain.Items{
			{Title: "Consultation", Qty: 1, Price: 700},
			{Title: "OCT Scan", Qty: 1, Price: 1500},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 2200.0, inv.Subtotal)
	assert.Equal(t, 110.0, inv.Tax)
	assert.Equal(t, 2310.0, inv.Total)
	assert.Equal(t, "INR", inv.Currency)
	assert.Equal(t, "ws-1", repo.created.WorkspaceID)
	assert.Equal(t, 1, repo.bumped.Invoices)
	assert.Contains(t, inv.InvoiceNo, "INV-")

	select {
	case action := <-sink.actions:
		assert.Equal(t, "invoice_created", action)
	case <-time.After(time.Second):
		t.Fatal("audit event not dispatched")
	}
}

func TestCreateInvoiceRequiresItems(t *testing.T) {
	repo := newFakeBillingRepo()
	dispatcher, _ := testDispatcher()
	uc := NewCreateInvoice(repo, docgen.NewStub("https://docs.example.com", zap.NewNop()), dispatcher, zap.NewNop())

	_, err := uc.Execute(context.Background(), tenant.Scope{WorkspaceID: "ws-1"}, CreateInvoiceInput{
		PatientID: "pat-1",
		Status:    "PENDING",
	})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "items_required"))
	assert.Nil(t, repo.created)
}

func TestCreateInvoiceRejectsUnknownStatus(t *testing.T) {
	repo := newFakeBillingRepo()
	dispatcher, _ := testDispatcher()
	uc := NewCreateInvoice(repo, docgen.NewStub("https://docs.example.com", zap.NewNop()), dispatcher, zap.NewNop())

	_, err := uc.Execute(context.Background(), tenant.Scope{WorkspaceID: "ws-1"}, CreateInvoiceInput{
		PatientID: "pat-1",
		Status:    "DRAFT",
		Items:     domain.Items{{Title: "Consultation", Qty: 1, Price: 700}},
	})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestCreateInvoiceSurvivesMeterFailure(t *testing.T) {
	repo := newFakeBillingRepo()
	repo.bumpErr = errors.New("db down")
	dispatcher, _ := testDispatcher()
	uc := NewCreateInvoice(repo, docgen.NewStub("https://docs.example.com", zap.NewNop()), dispatcher, zap.NewNop())

	inv, err := uc.Execute(context.Background(), tenant.Scope{WorkspaceID: "ws-1"}, CreateInvoiceInput{
		PatientID: "pat-1",
		Status:    "PENDING",
		Items:     domain.Items{{Title: "Consultation", Qty: 1, Price: 700}},
	})

	require.NoError(t, err)
	assert.NotNil(t, inv)
	assert.NotNil(t, repo.created)
}

func TestCreateInvoicePaidTriggersDocument(t *testing.T) {
	repo := newFakeBillingRepo()
	dispatcher, _ := testDispatcher()
	uc := NewCreateInvoice(repo, docgen.NewStub("https://docs.example.com", zap.NewNop()), dispatcher, zap.NewNop())

	inv, err := uc.Execute(context.Background(), tenant.Scope{WorkspaceID: "ws-1"}, CreateInvoiceInput{
		PatientID: "pat-1",
		Status:    "PAID",
		Items:     domain.Items{{Title: "Consultation", Qty: 1, Price: 700}},
	})

	require.NoError(t, err)
	assert.Equal(t, "PAID", inv.Status)

	select {
	case url := <-repo.pdfSet:
		assert.Equal(t, "https://docs.example.com/invoice-inv-1.pdf", url)
	case <-time.After(time.Second):
		t.Fatal("document generation never ran")
	}
}

func TestMarkPaidTransitionsPendingInvoice(t *testing.T) {
	repo := newFakeBillingRepo()
	repo.invoice = &models.Invoice{ID: "inv-1", WorkspaceID: "ws-1", Status: "PENDING"}
	dispatcher, _ := testDispatcher()
	uc := NewMarkPaid(repo, docgen.NewStub("https://docs.example.com", zap.NewNop()), dispatcher, zap.NewNop())

	inv, err := uc.Execute(context.Background(), tenant.Scope{WorkspaceID: "ws-1"}, "inv-1")

	require.NoError(t, err)
	assert.Equal(t, "PAID", inv.Status)
	require.NotNil(t, repo.updated)

	select {
	case url := <-repo.pdfSet:
		assert.Equal(t, "https://docs.example.com/invoice-inv-1.pdf", url)
	case <-time.After(time.Second):
		t.Fatal("document generation never ran")
	}
}

func TestMarkPaidRejectsAlreadyPaid(t *testing.T) {
	repo := newFakeBillingRepo()
	repo.invoice = &models.Invoice{ID: "inv-1", WorkspaceID: "ws-1", Status: "PAID"}
	dispatcher, _ := testDispatcher()
	uc := NewMarkPaid(repo, docgen.NewStub("https://docs.example.com", zap.NewNop()), dispatcher, zap.NewNop())

	_, err := uc.Execute(context.Background(), tenant.Scope{WorkspaceID: "ws-1"}, "inv-1")

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Nil(t, repo.updated)
}
