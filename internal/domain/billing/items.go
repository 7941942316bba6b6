package billing

// Item is one invoice line. Amount is always qty × price; Normalize
// recomputes it so a stored invoice never carries a stale amount.
type Item struct {
	Title  string  `json:"title"`
	Qty    int     `json:"qty"`
	Price  float64 `json:"price"`
	Amount float64 `json:"amount"`
}

type Items []Item

// Normalize recomputes every line amount from qty × price.
func Normalize(items Items) Items {
	out := make(Items, len(items))
	for i, it := range items {
		it.Amount = round2(float64(it.Qty) * it.Price)
		out[i] = it
	}
	return out
}
