package models

import (
	"time"

	"gorm.io/gorm"
)

// UsageMeter counts created records per workspace per calendar month
// (month_year is "2006-01"). Display-only: exceeding a plan limit does not
// block writes.
type UsageMeter struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	WorkspaceID string `gorm:"type:uuid;uniqueIndex:idx_usage_ws_month,priority:1;not null" json:"workspace_id"`

	MonthYear string `gorm:"size:7;uniqueIndex:idx_usage_ws_month,priority:2;not null" json:"month_year"`

	PatientCount int `gorm:"default:0" json:"patient_count"`
	VisitCount   int `gorm:"default:0" json:"visit_count"`
	InvoiceCount int `gorm:"default:0" json:"invoice_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *UsageMeter) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = NewID()
	}
	return nil
}
