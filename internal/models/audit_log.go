package models

import (
	"time"

	"gorm.io/gorm"
)

type AuditLog struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	WorkspaceID string `gorm:"type:uuid;index;not null" json:"workspace_id"`

	UserID string `gorm:"type:uuid;index" json:"user_id"`
	Action string `gorm:"size:50;not null" json:"action"`

	Entity   string `gorm:"size:50" json:"entity"`
	EntityID string `gorm:"type:uuid" json:"entity_id"`
	Details  string `gorm:"type:text" json:"details"`

	CreatedAt time.Time `json:"created_at"`
}

func (l *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = NewID()
	}
	return nil
}
