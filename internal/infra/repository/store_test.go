package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/clinicstack/clinic-manager/internal/domain/usage"
	"github.com/clinicstack/clinic-manager/internal/models"
	"github.com/clinicstack/clinic-manager/internal/tenant"
)

// newTestStore opens an in-memory sqlite database with the full schema, so
// the workspace filters run against real SQL instead of a fake.
func newTestStore(t *testing.T) *GormStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Workspace{},
		&models.User{},
		&models.Patient{},
		&models.Appointment{},
		&models.Visit{},
		&models.Prescription{},
		&models.Invoice{},
		&models.ClinicSetting{},
		&models.UsageMeter{},
		&models.AuditLog{},
		&models.FileRecord{},
	))

	return NewGormStore(db)
}

var (
	scopeA = tenant.Scope{WorkspaceID: "ws-a", UserID: "user-a"}
	scopeB = tenant.Scope{WorkspaceID: "ws-b", UserID: "user-b"}
)

// seedTwoClinics fills both workspaces with one of everything, giving every
// list call a wrong-tenant row it must not return.
func seedTwoClinics(t *testing.T, store *GormStore) (patientA, patientB *models.Patient) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, store.db.Create(&models.Workspace{ID: "ws-a", Name: "Clinic A", Timezone: "Asia/Kolkata"}).Error)
	require.NoError(t, store.db.Create(&models.Workspace{ID: "ws-b", Name: "Clinic B", Timezone: "Asia/Kolkata"}).Error)

	patientA = &models.Patient{Name: "Asha Verma", Phone: "9876543210"}
	patientB = &models.Patient{Name: "Bilal Khan", Phone: "9123456780"}
	require.NoError(t, store.CreatePatient(ctx, scopeA, patientA))
	require.NoError(t, store.CreatePatient(ctx, scopeB, patientB))

	startAt := time.Date(2024, time.March, 7, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.CreateAppointment(ctx, scopeA, &models.Appointment{
		PatientID: patientA.ID, DoctorID: "user-a", StartAt: startAt, Status: "SCHEDULED",
	}))
	require.NoError(t, store.CreateAppointment(ctx, scopeB, &models.Appointment{
		PatientID: patientB.ID, DoctorID: "user-b", StartAt: startAt, Status: "SCHEDULED",
	}))

	require.NoError(t, store.CreateVisit(ctx, scopeA, &models.Visit{
		PatientID: patientA.ID, DoctorID: "user-a", VisitAt: startAt, Status: "COMPLETED",
	}))
	require.NoError(t, store.CreateVisit(ctx, scopeB, &models.Visit{
		PatientID: patientB.ID, DoctorID: "user-b", VisitAt: startAt, Status: "COMPLETED",
	}))

	require.NoError(t, store.CreateInvoice(ctx, scopeA, &models.Invoice{
		PatientID: patientA.ID, InvoiceNo: "INV-000001", Currency: "INR", Total: 100, Status: "PENDING",
	}))
	require.NoError(t, store.CreateInvoice(ctx, scopeB, &models.Invoice{
		PatientID: patientB.ID, InvoiceNo: "INV-000002", Currency: "INR", Total: 200, Status: "PENDING",
	}))

	require.NoError(t, store.CreateFileRecord(ctx, scopeA, &models.FileRecord{
		PatientID: patientA.ID, Name: "fundus.jpg", S3Path: "reports/a/1-fundus.jpg", Type: "IMAGE",
	}))
	require.NoError(t, store.CreateFileRecord(ctx, scopeB, &models.FileRecord{
		PatientID: patientB.ID, Name: "oct.pdf", S3Path: "reports/b/1-oct.pdf", Type: "PDF",
	}))

	require.NoError(t, store.CreateSetting(ctx, scopeA, &models.ClinicSetting{Key: "currency", Value: "INR"}))
	require.NoError(t, store.CreateSetting(ctx, scopeB, &models.ClinicSetting{Key: "currency", Value: "USD"}))

	return patientA, patientB
}

func TestCreateStampsScopeWorkspace(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Caller-supplied workspace id must be overridden by the scope's.
	p := &models.Patient{Name: "Asha Verma", WorkspaceID: "ws-b"}
	require.NoError(t, store.CreatePatient(ctx, scopeA, p))

	assert.Equal(t, "ws-a", p.WorkspaceID)

	got, err := store.GetPatient(ctx, scopeA, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "ws-a", got.WorkspaceID)
}

func TestListsNeverCrossWorkspaces(t *testing.T) {
	store := newTestStore(t)
	patientA, patientB := seedTwoClinics(t, store)
	ctx := context.Background()

	patients, err := store.ListPatients(ctx, scopeA, "")
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, patientA.ID, patients[0].ID)
	for _, p := range patients {
		assert.Equal(t, "ws-a", p.WorkspaceID)
	}

	visits, err := store.ListVisitsByPatient(ctx, scopeA, patientA.ID)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "ws-a", visits[0].WorkspaceID)

	invoices, err := store.ListInvoices(ctx, scopeA, "")
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "ws-a", invoices[0].WorkspaceID)

	byPatient, err := store.ListInvoicesByPatient(ctx, scopeA, patientA.ID)
	require.NoError(t, err)
	require.Len(t, byPatient, 1)
	assert.Equal(t, "INV-000001", byPatient[0].InvoiceNo)

	files, err := store.ListFilesByPatient(ctx, scopeA, patientA.ID)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "fundus.jpg", files[0].Name)

	period, err := store.ListAppointmentsForPeriod(ctx, scopeA,
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		"",
	)
	require.NoError(t, err)
	require.Len(t, period, 1)
	assert.Equal(t, "ws-a", period[0].WorkspaceID)

	settings, err := store.ListSettings(ctx, scopeA)
	require.NoError(t, err)
	require.Len(t, settings, 1)
	assert.Equal(t, "INR", settings[0].Value)

	// The mirror view: workspace B sees only its own rows.
	patientsB, err := store.ListPatients(ctx, scopeB, "")
	require.NoError(t, err)
	require.Len(t, patientsB, 1)
	assert.Equal(t, patientB.ID, patientsB[0].ID)
}

func TestListMatchesOwnWorkspaceEvenWithForeignPatientID(t *testing.T) {
	store := newTestStore(t)
	_, patientB := seedTwoClinics(t, store)
	ctx := context.Background()

	// Asking for another workspace's patient id yields nothing, not their rows.
	visits, err := store.ListVisitsByPatient(ctx, scopeA, patientB.ID)
	require.NoError(t, err)
	assert.Empty(t, visits)

	invoices, err := store.ListInvoicesByPatient(ctx, scopeA, patientB.ID)
	require.NoError(t, err)
	assert.Empty(t, invoices)

	files, err := store.ListFilesByPatient(ctx, scopeA, patientB.ID)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestGetsRejectCrossWorkspaceIDs(t *testing.T) {
	store := newTestStore(t)
	patientA, _ := seedTwoClinics(t, store)
	ctx := context.Background()

	_, err := store.GetPatient(ctx, scopeB, patientA.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	invoicesA, err := store.ListInvoices(ctx, scopeA, "")
	require.NoError(t, err)
	require.Len(t, invoicesA, 1)

	_, err = store.GetInvoice(ctx, scopeB, invoicesA[0].ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	setting, err := store.FindSetting(ctx, scopeB, "currency")
	require.NoError(t, err)
	require.NotNil(t, setting)
	assert.Equal(t, "USD", setting.Value)
}

func TestBumpUsageIsPerWorkspace(t *testing.T) {
	store := newTestStore(t)
	seedTwoClinics(t, store)
	ctx := context.Background()

	require.NoError(t, store.BumpUsage(ctx, scopeA, "2024-03", usage.Delta{Patients: 1}))
	require.NoError(t, store.BumpUsage(ctx, scopeA, "2024-03", usage.Delta{Visits: 1, Invoices: 1}))
	require.NoError(t, store.BumpUsage(ctx, scopeB, "2024-03", usage.Delta{Patients: 5}))

	meterA, err := store.GetUsage(ctx, scopeA, "2024-03")
	require.NoError(t, err)
	require.NotNil(t, meterA)
	assert.Equal(t, 1, meterA.PatientCount)
	assert.Equal(t, 1, meterA.VisitCount)
	assert.Equal(t, 1, meterA.InvoiceCount)

	meterB, err := store.GetUsage(ctx, scopeB, "2024-03")
	require.NoError(t, err)
	require.NotNil(t, meterB)
	assert.Equal(t, 5, meterB.PatientCount)
	assert.Equal(t, 0, meterB.VisitCount)
}

func TestUpdateWorkspaceScopedToOwnRow(t *testing.T) {
	store := newTestStore(t)
	seedTwoClinics(t, store)
	ctx := context.Background()

	ws, err := store.GetWorkspace(ctx, scopeA)
	require.NoError(t, err)

	ws.Name = "City Eye Clinic"
	ws.Timezone = "Asia/Dubai"
	// Even a tampered id saves onto the scope's own workspace.
	ws.ID = "ws-b"
	require.NoError(t, store.UpdateWorkspace(ctx, scopeA, ws))

	updated, err := store.GetWorkspace(ctx, scopeA)
	require.NoError(t, err)
	assert.Equal(t, "City Eye Clinic", updated.Name)
	assert.Equal(t, "Asia/Dubai", updated.Timezone)

	other, err := store.GetWorkspace(ctx, scopeB)
	require.NoError(t, err)
	assert.Equal(t, "Clinic B", other.Name)
}
