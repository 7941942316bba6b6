package billing

import (
	"fmt"
	"time"
)

// NewInvoiceNumber builds a short human-readable invoice number from the
// current time. Uniqueness is per-workspace and best-effort, matching the
// billing screen's behavior; the record id remains the real key.
func NewInvoiceNumber(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	return "INV-" + ms[len(ms)-6:]
}
