package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/clinicstack/clinic-manager/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	workspaceID string,
	userID string,
	action string,
	entity string,
	entityID string,
	details any,
) error {

	var detailsJSON string
	if details != nil {
		if b, err := json.Marshal(details); err == nil {
			detailsJSON = string(b)
		}
	}

	row := models.AuditLog{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Action:      action,
		Entity:      entity,
		EntityID:    entityID,
		Details:     detailsJSON,
	}

	return l.db.Create(&row).Error
}
