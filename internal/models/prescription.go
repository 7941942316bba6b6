package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/clinicstack/clinic-manager/internal/domain/clinical"
)

// Prescription is 1:1 with a Visit by convention; the upsert path keys on
// visit_id rather than a database constraint.
type Prescription struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	WorkspaceID string `gorm:"type:uuid;index;not null" json:"workspace_id"`

	VisitID   string `gorm:"type:uuid;index;not null" json:"visit_id"`
	PatientID string `gorm:"type:uuid;index;not null" json:"patient_id"`
	DoctorID  string `gorm:"type:uuid;not null" json:"doctor_id"`

	Items clinical.RxItems `gorm:"serializer:json" json:"items"`

	PDFURL string `gorm:"size:500" json:"pdf_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Prescription) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	return nil
}
