package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicstack/clinic-manager/internal/httperr"
	"github.com/clinicstack/clinic-manager/internal/infra/repository"
	"github.com/clinicstack/clinic-manager/internal/middleware"
	"github.com/clinicstack/clinic-manager/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type WorkspaceHandler struct {
	store *repository.GormStore
}

func NewWorkspaceHandler(store *repository.GormStore) *WorkspaceHandler {
	return &WorkspaceHandler{store: store}
}

type UpdateWorkspaceRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Address  *string `json:"address"`
	Timezone *string `json:"timezone"`
}

func (h *WorkspaceHandler) Get(c *gin.Context) {
	scope := middleware.Scope(c)

	ws, err := h.store.GetWorkspace(c.Request.Context(), scope)
	if err != nil {
		httperr.NotFound(c, "workspace_not_found", "Workspace not found.")
		return
	}

	c.JSON(http.StatusOK, ws)
}

func (h *WorkspaceHandler) Update(c *gin.Context) {
	scope := middleware.Scope(c)

	ws, err := h.store.GetWorkspace(c.Request.Context(), scope)
	if err != nil {
		httperr.NotFound(c, "workspace_not_found", "Workspace not found.")
		return
	}

	var req UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			httperr.BadRequest(c, "name_required", "Workspace name cannot be empty.")
			return
		}
		ws.Name = *req.Name
	}
	if req.Phone != nil {
		ws.Phone = *req.Phone
	}
	if req.Email != nil {
		ws.Email = *req.Email
	}
	if req.Address != nil {
		ws.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Unknown IANA timezone.")
			return
		}
		ws.Timezone = *req.Timezone
	}

	if err := h.store.UpdateWorkspace(c.Request.Context(), scope, ws); err != nil {
		httperr.Internal(c, "failed_to_update_workspace", "Could not save workspace settings.")
		return
	}

	c.JSON(http.StatusOK, ws)
}
