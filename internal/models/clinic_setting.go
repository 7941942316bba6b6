package models

import (
	"time"

	"gorm.io/gorm"
)

// ClinicSetting is per-workspace key-value config (currency, clinicName,
// address, phone, pdfHeader, pdfFooter). Upserted by (workspace_id, key);
// no history is kept.
type ClinicSetting struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	WorkspaceID string `gorm:"type:uuid;uniqueIndex:idx_settings_ws_key,priority:1;not null" json:"workspace_id"`

	Key   string `gorm:"size:50;uniqueIndex:idx_settings_ws_key,priority:2;not null" json:"key"`
	Value string `gorm:"size:1000" json:"value"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *ClinicSetting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = NewID()
	}
	return nil
}

// Well-known setting keys.
const (
	SettingCurrency   = "currency"
	SettingClinicName = "clinicName"
	SettingAddress    = "address"
	SettingPhone      = "phone"
	SettingPDFHeader  = "pdfHeader"
	SettingPDFFooter  = "pdfFooter"
)
