package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicstack/clinic-manager/internal/httperr"
	"github.com/clinicstack/clinic-manager/internal/httpresp"
	"github.com/clinicstack/clinic-manager/internal/infra/repository"
	"github.com/clinicstack/clinic-manager/internal/middleware"
	ucSettings "github.com/clinicstack/clinic-manager/internal/usecase/settings"
)

type SettingsHandler struct {
	store    *repository.GormStore
	upsertUC *ucSettings.Upsert
}

func NewSettingsHandler(store *repository.GormStore, upsertUC *ucSettings.Upsert) *SettingsHandler {
	return &SettingsHandler{store: store, upsertUC: upsertUC}
}

type UpsertSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

func (h *SettingsHandler) List(c *gin.Context) {
	scope := middleware.Scope(c)

	settings, err := h.store.ListSettings(c.Request.Context(), scope)
	if err != nil {
		httperr.Internal(c, "failed_to_list_settings", "Could not load settings.")
		return
	}

	httpresp.List(c, settings)
}

func (h *SettingsHandler) Upsert(c *gin.Context) {
	scope := middleware.Scope(c)

	var req UpsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid setting data.")
		return
	}

	setting, err := h.upsertUC.Execute(c.Request.Context(), scope, req.Key, req.Value)
	if err != nil {
		writeError(c, err, "failed_to_save_setting", "Could not save the setting.")
		return
	}

	c.JSON(http.StatusOK, setting)
}
