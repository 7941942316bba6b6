package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainBilling "github.com/clinicstack/clinic-manager/internal/domain/billing"
	"github.com/clinicstack/clinic-manager/internal/export"
	"github.com/clinicstack/clinic-manager/internal/httperr"
	"github.com/clinicstack/clinic-manager/internal/httpresp"
	"github.com/clinicstack/clinic-manager/internal/infra/repository"
	"github.com/clinicstack/clinic-manager/internal/middleware"
	ucBilling "github.com/clinicstack/clinic-manager/internal/usecase/billing"
)

// ======================================================
// HANDLER
// ======================================================

type InvoiceHandler struct {
	store      *repository.GormStore
	createUC   *ucBilling.CreateInvoice
	markPaidUC *ucBilling.MarkPaid
}

func NewInvoiceHandler(
	store *repository.GormStore,
	createUC *ucBilling.CreateInvoice,
	markPaidUC *ucBilling.MarkPaid,
) *InvoiceHandler {
	return &InvoiceHandler{
		store:      store,
		createUC:   createUC,
		markPaidUC: markPaidUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateInvoiceRequest struct {
	PatientID string              `json:"patient_id" binding:"required"`
	VisitID   string              `json:"visit_id"`
	Currency  string              `json:"currency"`
	Status    string              `json:"status" binding:"required"`
	Items     domainBilling.Items `json:"items" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *InvoiceHandler) Create(c *gin.Context) {
	scope := middleware.Scope(c)

	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid invoice data.")
		return
	}

	inv, err := h.createUC.Execute(c.Request.Context(), scope, ucBilling.CreateInvoiceInput{
		PatientID: req.PatientID,
		VisitID:   req.VisitID,
		Currency:  req.Currency,
		Status:    req.Status,
		Items:     req.Items,
	})
	if err != nil {
		writeError(c, err, "failed_to_create_invoice", "Could not save the invoice.")
		return
	}

	c.JSON(http.StatusCreated, inv)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *InvoiceHandler) List(c *gin.Context) {
	scope := middleware.Scope(c)

	invoices, err := h.store.ListInvoices(c.Request.Context(), scope, c.Query("status"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_invoices", "Could not list invoices.")
		return
	}

	httpresp.List(c, invoices)
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	scope := middleware.Scope(c)

	inv, err := h.store.GetInvoice(c.Request.Context(), scope, c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "invoice_not_found", "Invoice not found.")
		return
	}

	c.JSON(http.StatusOK, inv)
}

// ======================================================
// MARK PAID
// ======================================================

func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	scope := middleware.Scope(c)

	inv, err := h.markPaidUC.Execute(c.Request.Context(), scope, c.Param("id"))
	if err != nil {
		writeError(c, err, "failed_to_update_invoice", "Could not update the invoice.")
		return
	}

	c.JSON(http.StatusOK, inv)
}

// ======================================================
// EXPORT (XLSX)
// ======================================================

func (h *InvoiceHandler) Export(c *gin.Context) {
	scope := middleware.Scope(c)

	invoices, err := h.store.ListInvoices(c.Request.Context(), scope, c.Query("status"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_invoices", "Could not list invoices.")
		return
	}

	data, err := export.InvoicesExcel(invoices)
	if err != nil {
		httperr.Internal(c, "failed_to_export_invoices", "Could not build the export file.")
		return
	}

	filename := fmt.Sprintf("invoices-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		data,
	)
}
