package docgen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStubGenerate(t *testing.T) {
	stub := NewStub("https://docs.example.com", zap.NewNop())

	url, err := stub.Generate(context.Background(), KindPrescription, "rx-1")
	require.NoError(t, err)
	assert.Equal(t, "https://docs.example.com/prescription-rx-1.pdf", url)

	url, err = stub.Generate(context.Background(), KindInvoice, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, "https://docs.example.com/invoice-inv-1.pdf", url)
}
