package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clinicstack/clinic-manager/internal/middleware"
	"github.com/clinicstack/clinic-manager/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	scope := middleware.Scope(c)

	var user models.User
	if err := h.db.Preload("Workspace").
		First(&user, "id = ?", scope.UserID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":           user.ID,
			"name":         user.Name,
			"email":        user.Email,
			"phone":        user.Phone,
			"role":         user.Role,
			"workspace_id": user.WorkspaceID,
		},
		"workspace": gin.H{
			"id":      user.Workspace.ID,
			"name":    user.Workspace.Name,
			"phone":   user.Workspace.Phone,
			"address": user.Workspace.Address,
			"plan_id": user.Workspace.PlanID,
			"status":  user.Workspace.Status,
		},
	})
}
