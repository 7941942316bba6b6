package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/clinicstack/clinic-manager/internal/domain/billing"
)

type Invoice struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	WorkspaceID string `gorm:"type:uuid;index;not null" json:"workspace_id"`

	PatientID string  `gorm:"type:uuid;index;not null" json:"patient_id"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient"`

	VisitID *string `gorm:"type:uuid;index" json:"visit_id"`

	InvoiceNo string `gorm:"size:20;not null" json:"invoice_no"`
	Currency  string `gorm:"size:10;not null" json:"currency"`

	// Snapshot computed at save time, not recomputed afterwards.
	Subtotal float64 `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Tax      float64 `gorm:"type:decimal(10,2)" json:"tax"`
	Total    float64 `gorm:"type:decimal(10,2);not null" json:"total"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	Items billing.Items `gorm:"serializer:json" json:"items"`

	PDFURL string `gorm:"size:500" json:"pdf_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = NewID()
	}
	return nil
}
