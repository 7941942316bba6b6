package models

import (
	"time"

	"gorm.io/gorm"
)

type Workspace struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Phone   string `gorm:"size:20" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`
	Address string `gorm:"size:255" json:"address"`

	PlanID string `gorm:"size:50;default:'trial'" json:"plan_id"`
	Status string `gorm:"size:20;default:'active'" json:"status"`

	Timezone string `gorm:"size:50" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (w *Workspace) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = NewID()
	}
	return nil
}
