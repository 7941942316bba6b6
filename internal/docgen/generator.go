// Package docgen renders patient-facing documents. The shipped
// implementation keeps the placeholder contract of the original rendering
// function; a real renderer can replace Stub behind the same interface.
package docgen

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type Kind string

const (
	KindPrescription Kind = "PRESCRIPTION"
	KindInvoice      Kind = "INVOICE"
)

// Generator produces a url for a rendered document of the given kind.
type Generator interface {
	Generate(ctx context.Context, kind Kind, id string) (string, error)
}

// Stub returns a deterministic placeholder url without rendering anything.
type Stub struct {
	BaseURL string
	Log     *zap.Logger
}

func NewStub(baseURL string, log *zap.Logger) *Stub {
	return &Stub{BaseURL: baseURL, Log: log}
}

func (s *Stub) Generate(ctx context.Context, kind Kind, id string) (string, error) {
	s.Log.Info("document generation requested",
		zap.String("kind", string(kind)),
		zap.String("id", id),
	)
	return fmt.Sprintf("%s/%s-%s.pdf", s.BaseURL, strings.ToLower(string(kind)), id), nil
}

var _ Generator = (*Stub)(nil)
