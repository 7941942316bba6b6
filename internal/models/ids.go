package models

import "github.com/google/uuid"

// NewID returns an opaque record id. Every entity uses uuid strings so ids
// can travel through URLs and JSON without numeric coercion.
func NewID() string {
	return uuid.NewString()
}
