package models

import (
	"time"

	"gorm.io/gorm"
)

type Appointment struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	WorkspaceID string `gorm:"type:uuid;index:idx_appointments_ws_start,priority:1;not null" json:"workspace_id"`

	PatientID string  `gorm:"type:uuid;index;not null" json:"patient_id"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient"`

	DoctorID string `gorm:"type:uuid;not null" json:"doctor_id"`

	StartAt time.Time `gorm:"index:idx_appointments_ws_start,priority:2;not null" json:"start_at"`
	Status  string    `gorm:"size:20;default:'SCHEDULED'" json:"status"`

	Reason string `gorm:"size:255" json:"reason"`
	Notes  string `gorm:"size:1000" json:"notes"`

	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = NewID()
	}
	return nil
}
