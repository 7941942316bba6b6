package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/clinicstack/clinic-manager/internal/audit"
	"github.com/clinicstack/clinic-manager/internal/config"
	"github.com/clinicstack/clinic-manager/internal/docgen"
	"github.com/clinicstack/clinic-manager/internal/drafts"
	"github.com/clinicstack/clinic-manager/internal/handlers"
	infraRepo "github.com/clinicstack/clinic-manager/internal/infra/repository"
	"github.com/clinicstack/clinic-manager/internal/middleware"
	"github.com/clinicstack/clinic-manager/internal/storage"
	ucAppointment "github.com/clinicstack/clinic-manager/internal/usecase/appointment"
	ucBilling "github.com/clinicstack/clinic-manager/internal/usecase/billing"
	ucPatient "github.com/clinicstack/clinic-manager/internal/usecase/patient"
	ucPrescription "github.com/clinicstack/clinic-manager/internal/usecase/prescription"
	ucSettings "github.com/clinicstack/clinic-manager/internal/usecase/settings"
	ucVisit "github.com/clinicstack/clinic-manager/internal/usecase/visit"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	store := infraRepo.NewGormStore(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	draftStore := drafts.NewStore(rdb)
	blobStore := storage.NewBlobStore(cfg, log)
	docGenerator := docgen.NewStub(cfg.DocBaseURL, log)

	// ======================================================
	// USE CASES — PATIENTS
	// ======================================================
	createPatientUC := ucPatient.NewCreatePatient(store, auditDispatcher)
	patientTimelineUC := ucPatient.NewPatientTimeline(store)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		store,
		auditDispatcher,
	)

	listByDayUC := ucAppointment.NewListByDay(store)
	listByMonthUC := ucAppointment.NewListByMonth(store)

	transitionUC := ucAppointment.NewTransition(
		store,
		auditDispatcher,
	)

	// ======================================================
	// USE CASES — VISITS / PRESCRIPTIONS
	// ======================================================
	completeVisitUC := ucVisit.NewCompleteVisit(
		store,
		draftStore,
		auditDispatcher,
		log,
	)

	upsertPrescriptionUC := ucPrescription.NewUpsertByVisit(store, auditDispatcher)

	// ======================================================
	// USE CASES — BILLING / SETTINGS
	// ======================================================
	createInvoiceUC := ucBilling.NewCreateInvoice(
		store,
		docGenerator,
		auditDispatcher,
		log,
	)

	markPaidUC := ucBilling.NewMarkPaid(
		store,
		docGenerator,
		auditDispatcher,
		log,
	)

	upsertSettingUC := ucSettings.NewUpsert(store, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	workspaceHandler := handlers.NewWorkspaceHandler(store)

	patientHandler := handlers.NewPatientHandler(
		store,
		createPatientUC,
		patientTimelineUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listByDayUC,
		listByMonthUC,
		transitionUC,
	)

	visitHandler := handlers.NewVisitHandler(
		store,
		draftStore,
		completeVisitUC,
	)

	prescriptionHandler := handlers.NewPrescriptionHandler(
		store,
		upsertPrescriptionUC,
		docGenerator,
	)

	invoiceHandler := handlers.NewInvoiceHandler(
		store,
		createInvoiceUC,
		markPaidUC,
	)

	settingsHandler := handlers.NewSettingsHandler(store, upsertSettingUC)
	usageHandler := handlers.NewUsageHandler(store)

	fileHandler := handlers.NewFileHandler(
		store,
		blobStore,
		auditDispatcher,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/workspace", workspaceHandler.Get)
			secured.PATCH("/me/workspace", workspaceHandler.Update)

			// ------------------------------
			// PATIENTS
			// ------------------------------
			secured.POST("/me/patients", patientHandler.Create)
			secured.GET("/me/patients", patientHandler.List)
			secured.GET("/me/patients/:id", patientHandler.Get)
			secured.PATCH("/me/patients/:id", patientHandler.Update)

			secured.GET("/me/patients/:id/visits", visitHandler.ListByPatient)
			secured.GET("/me/patients/:id/draft", visitHandler.GetDraft)
			secured.PUT("/me/patients/:id/draft", visitHandler.SaveDraft)
			secured.DELETE("/me/patients/:id/draft", visitHandler.DeleteDraft)

			secured.POST("/me/patients/:id/files", fileHandler.Upload)
			secured.GET("/me/patients/:id/files", fileHandler.ListByPatient)

			secured.GET("/me/files/:id/url", fileHandler.SignedURL)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/no-show", appointmentHandler.NoShow)

			// ------------------------------
			// VISITS / PRESCRIPTIONS
			// ------------------------------
			secured.POST("/me/visits", visitHandler.Complete)

			secured.GET("/me/visits/:id/prescription", prescriptionHandler.GetByVisit)
			secured.PUT("/me/visits/:id/prescription", prescriptionHandler.Upsert)
			secured.POST("/me/visits/:id/prescription/pdf", prescriptionHandler.GeneratePDF)

			// ------------------------------
			// BILLING
			// ------------------------------
			secured.POST("/me/invoices", invoiceHandler.Create)
			secured.GET("/me/invoices", invoiceHandler.List)
			secured.GET("/me/invoices/export", invoiceHandler.Export)
			secured.GET("/me/invoices/:id", invoiceHandler.Get)
			secured.PATCH("/me/invoices/:id/pay", invoiceHandler.MarkPaid)

			// ------------------------------
			// SETTINGS / USAGE / AUDIT
			// ------------------------------
			secured.GET("/me/settings", settingsHandler.List)
			secured.PUT("/me/settings", settingsHandler.Upsert)

			secured.GET("/me/usage", usageHandler.Get)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
