package billing

import "math"

// TaxRate is the flat tax applied to every invoice (5% GST).
const TaxRate = 0.05

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// ComputeTotals derives the invoice snapshot from its line items:
// subtotal = Σ qty×price, tax = subtotal×TaxRate, total = subtotal+tax.
// The caller persists the snapshot; totals are never recomputed server-side
// after save.
func ComputeTotals(items Items) Totals {
	var subtotal float64
	for _, it := range items {
		subtotal += float64(it.Qty) * it.Price
	}

	subtotal = round2(subtotal)
	tax := round2(subtotal * TaxRate)

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    round2(subtotal + tax),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
