package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/clinicstack/clinic-manager/internal/domain/clinical"
)

type Visit struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	WorkspaceID string `gorm:"type:uuid;index;not null" json:"workspace_id"`

	PatientID string  `gorm:"type:uuid;index;not null" json:"patient_id"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient"`

	DoctorID      string  `gorm:"type:uuid;not null" json:"doctor_id"`
	AppointmentID *string `gorm:"type:uuid;index" json:"appointment_id"`

	VisitAt time.Time `gorm:"index;not null" json:"visit_at"`
	Status  string    `gorm:"size:20;default:'COMPLETED'" json:"status"`

	ClinicalData clinical.Record `gorm:"serializer:json" json:"clinical_data"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (v *Visit) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = NewID()
	}
	return nil
}
