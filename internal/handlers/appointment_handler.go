package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/clinicstack/clinic-manager/internal/domain/appointment"
	"github.com/clinicstack/clinic-manager/internal/httperr"
	"github.com/clinicstack/clinic-manager/internal/httpresp"
	"github.com/clinicstack/clinic-manager/internal/middleware"
	ucAppointment "github.com/clinicstack/clinic-manager/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC     *ucAppointment.CreateAppointment
	listByDayUC  *ucAppointment.ListByDay
	listMonthUC  *ucAppointment.ListByMonth
	transitionUC *ucAppointment.Transition
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	listByDayUC *ucAppointment.ListByDay,
	listMonthUC *ucAppointment.ListByMonth,
	transitionUC *ucAppointment.Transition,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:     createUC,
		listByDayUC:  listByDayUC,
		listMonthUC:  listMonthUC,
		transitionUC: transitionUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	PatientID string    `json:"patient_id" binding:"required"`
	StartAt   time.Time `json:"start_at" binding:"required"`
	Reason    string    `json:"reason"`
	Notes     string    `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	scope := middleware.Scope(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment data.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), scope, ucAppointment.CreateAppointmentInput{
		PatientID: req.PatientID,
		StartAt:   req.StartAt,
		Reason:    req.Reason,
		Notes:     req.Notes,
	})
	if err != nil {
		writeError(c, err, "failed_to_create_appointment", "Could not schedule the appointment.")
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	scope := middleware.Scope(c)

	dateStr := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	apps, err := h.listByDayUC.Execute(c.Request.Context(), scope, date, c.Query("status"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, apps)
}

// ======================================================
// LIST BY MONTH
// ======================================================

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	scope := middleware.Scope(c)

	monthStr := c.DefaultQuery("month", time.Now().Format("2006-01"))
	month, err := time.Parse("2006-01", monthStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "Month must be YYYY-MM.")
		return
	}

	apps, err := h.listMonthUC.Execute(c.Request.Context(), scope, month.Year(), month.Month())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, apps)
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, domain.StatusCompleted)
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	h.transition(c, domain.StatusNoShow)
}

func (h *AppointmentHandler) transition(c *gin.Context, target domain.Status) {
	scope := middleware.Scope(c)

	ap, err := h.transitionUC.Execute(c.Request.Context(), scope, c.Param("id"), target)
	if err != nil {
		writeError(c, err, "failed_to_update_appointment", "Could not update the appointment.")
		return
	}

	c.JSON(http.StatusOK, ap)
}
