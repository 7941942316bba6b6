package models

import (
	"time"

	"gorm.io/gorm"
)

type Patient struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	WorkspaceID string `gorm:"type:uuid;index:idx_patients_ws_phone,priority:1;index:idx_patients_ws_name,priority:1;not null" json:"workspace_id"`

	Name   string     `gorm:"size:100;not null;index:idx_patients_ws_name,priority:2" json:"name"`
	Phone  string     `gorm:"size:20;index:idx_patients_ws_phone,priority:2" json:"phone"`
	DOB    *time.Time `json:"dob"`
	Age    *int       `json:"age"`
	Gender string     `gorm:"size:10" json:"gender"`
	City   string     `gorm:"size:100" json:"city"`
	UHID   string     `gorm:"size:50" json:"uhid"`
	Notes  string     `gorm:"size:1000" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	return nil
}
