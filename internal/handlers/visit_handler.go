package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicstack/clinic-manager/internal/domain/clinical"
	"github.com/clinicstack/clinic-manager/internal/drafts"
	"github.com/clinicstack/clinic-manager/internal/httperr"
	"github.com/clinicstack/clinic-manager/internal/httpresp"
	"github.com/clinicstack/clinic-manager/internal/infra/repository"
	"github.com/clinicstack/clinic-manager/internal/middleware"
	ucVisit "github.com/clinicstack/clinic-manager/internal/usecase/visit"
)

// ======================================================
// HANDLER
// ======================================================

type VisitHandler struct {
	store      *repository.GormStore
	drafts     *drafts.Store
	completeUC *ucVisit.CompleteVisit
}

func NewVisitHandler(
	store *repository.GormStore,
	draftStore *drafts.Store,
	completeUC *ucVisit.CompleteVisit,
) *VisitHandler {
	return &VisitHandler{
		store:      store,
		drafts:     draftStore,
		completeUC: completeUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CompleteVisitRequest struct {
	PatientID     string          `json:"patient_id" binding:"required"`
	AppointmentID string          `json:"appointment_id"`
	Clinical      clinical.Record `json:"clinical_data"`
}

// ======================================================
// COMPLETE VISIT
// ======================================================

func (h *VisitHandler) Complete(c *gin.Context) {
	scope := middleware.Scope(c)

	var req CompleteVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid visit data.")
		return
	}

	v, err := h.completeUC.Execute(c.Request.Context(), scope, ucVisit.CompleteVisitInput{
		PatientID:     req.PatientID,
		AppointmentID: req.AppointmentID,
		Clinical:      req.Clinical,
	})
	if err != nil {
		writeError(c, err, "failed_to_save_visit", "Could not save the visit.")
		return
	}

	c.JSON(http.StatusCreated, v)
}

// ======================================================
// LIST BY PATIENT
// ======================================================

func (h *VisitHandler) ListByPatient(c *gin.Context) {
	scope := middleware.Scope(c)

	visits, err := h.store.ListVisitsByPatient(c.Request.Context(), scope, c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_visits", "Could not list visits.")
		return
	}

	httpresp.List(c, visits)
}

// ======================================================
// DRAFTS (visit-in-progress clinical data)
// ======================================================

func (h *VisitHandler) GetDraft(c *gin.Context) {
	scope := middleware.Scope(c)

	rec, err := h.drafts.Load(c.Request.Context(), scope, c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_load_draft", "Could not load the draft.")
		return
	}
	if rec == nil {
		c.JSON(http.StatusOK, gin.H{"draft": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": rec})
}

func (h *VisitHandler) SaveDraft(c *gin.Context) {
	scope := middleware.Scope(c)

	var rec clinical.Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid draft data.")
		return
	}

	if err := h.drafts.Save(c.Request.Context(), scope, c.Param("id"), rec); err != nil {
		httperr.Internal(c, "failed_to_save_draft", "Could not save the draft.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": true})
}

func (h *VisitHandler) DeleteDraft(c *gin.Context) {
	scope := middleware.Scope(c)

	if err := h.drafts.Clear(c.Request.Context(), scope, c.Param("id")); err != nil {
		httperr.Internal(c, "failed_to_clear_draft", "Could not clear the draft.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"cleared": true})
}
