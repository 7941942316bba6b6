package models

import (
	"time"

	"gorm.io/gorm"
)

// FileRecord references a blob stored under reports/{patientId}/... in
// object storage. The row is created only after the upload succeeds.
type FileRecord struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	WorkspaceID string `gorm:"type:uuid;index;not null" json:"workspace_id"`

	PatientID string  `gorm:"type:uuid;index;not null" json:"patient_id"`
	VisitID   *string `gorm:"type:uuid" json:"visit_id"`

	Type   string `gorm:"size:20" json:"type"`
	Name   string `gorm:"size:255;not null" json:"name"`
	S3Path string `gorm:"size:500;not null" json:"s3_path"`

	Meta map[string]string `gorm:"serializer:json" json:"meta"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f *FileRecord) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = NewID()
	}
	return nil
}
