package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clinicstack/clinic-manager/internal/domain/usage"
	"github.com/clinicstack/clinic-manager/internal/httperr"
	"github.com/clinicstack/clinic-manager/internal/infra/repository"
	"github.com/clinicstack/clinic-manager/internal/middleware"
)

type UsageHandler struct {
	store *repository.GormStore
}

func NewUsageHandler(store *repository.GormStore) *UsageHandler {
	return &UsageHandler{store: store}
}

// Get returns the current month's meter with the plan limits and the
// clamped percentages the progress bars render. Display-only: nothing here
// gates creation.
func (h *UsageHandler) Get(c *gin.Context) {
	scope := middleware.Scope(c)

	monthYear := c.DefaultQuery("month", usage.MonthKey(time.Now()))

	meter, err := h.store.GetUsage(c.Request.Context(), scope, monthYear)
	if err != nil {
		httperr.Internal(c, "failed_to_get_usage", "Could not load usage.")
		return
	}

	var patients, visits, invoices int
	if meter != nil {
		patients = meter.PatientCount
		visits = meter.VisitCount
		invoices = meter.InvoiceCount
	}

	limits := usage.TrialLimits()

	c.JSON(http.StatusOK, gin.H{
		"month_year": monthYear,
		"limits":     limits,
		"usage": gin.H{
			"patients": gin.H{"current": patients, "percent": usage.Ratio(patients, limits.Patients)},
			"visits":   gin.H{"current": visits, "percent": usage.Ratio(visits, limits.Visits)},
			"invoices": gin.H{"current": invoices, "percent": usage.Ratio(invoices, limits.Invoices)},
		},
	})
}
