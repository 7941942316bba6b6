package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicstack/clinic-manager/internal/docgen"
	"github.com/clinicstack/clinic-manager/internal/domain/clinical"
	"github.com/clinicstack/clinic-manager/internal/httperr"
	"github.com/clinicstack/clinic-manager/internal/infra/repository"
	"github.com/clinicstack/clinic-manager/internal/middleware"
	ucPrescription "github.com/clinicstack/clinic-manager/internal/usecase/prescription"
)

// ======================================================
// HANDLER
// ======================================================

type PrescriptionHandler struct {
	store    *repository.GormStore
	upsertUC *ucPrescription.UpsertByVisit
	docs     docgen.Generator
}

func NewPrescriptionHandler(
	store *repository.GormStore,
	upsertUC *ucPrescription.UpsertByVisit,
	docs docgen.Generator,
) *PrescriptionHandler {
	return &PrescriptionHandler{
		store:    store,
		upsertUC: upsertUC,
		docs:     docs,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpsertPrescriptionRequest struct {
	Items clinical.RxItems `json:"items" binding:"required"`
}

// ======================================================
// GET BY VISIT
// ======================================================

func (h *PrescriptionHandler) GetByVisit(c *gin.Context) {
	scope := middleware.Scope(c)

	rx, err := h.store.FindPrescriptionByVisit(c.Request.Context(), scope, c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_get_prescription", "Could not load the prescription.")
		return
	}
	if rx == nil {
		httperr.NotFound(c, "prescription_not_found", "No prescription for this visit.")
		return
	}

	c.JSON(http.StatusOK, rx)
}

// ======================================================
// UPSERT BY VISIT
// ======================================================

func (h *PrescriptionHandler) Upsert(c *gin.Context) {
	scope := middleware.Scope(c)

	var req UpsertPrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid prescription data.")
		return
	}

	rx, err := h.upsertUC.Execute(c.Request.Context(), scope, c.Param("id"), req.Items)
	if err != nil {
		writeError(c, err, "failed_to_save_prescription", "Could not save the prescription.")
		return
	}

	c.JSON(http.StatusOK, rx)
}

// ======================================================
// GENERATE DOCUMENT
// ======================================================

func (h *PrescriptionHandler) GeneratePDF(c *gin.Context) {
	scope := middleware.Scope(c)

	rx, err := h.store.FindPrescriptionByVisit(c.Request.Context(), scope, c.Param("id"))
	if err != nil || rx == nil {
		httperr.NotFound(c, "prescription_not_found", "No prescription for this visit.")
		return
	}

	url, err := h.docs.Generate(c.Request.Context(), docgen.KindPrescription, rx.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_document", "Could not generate the document.")
		return
	}

	if err := h.store.SetPrescriptionPDF(c.Request.Context(), scope, rx.ID, url); err != nil {
		httperr.Internal(c, "failed_to_save_document_url", "Could not save the document url.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"pdf_url": url})
}
