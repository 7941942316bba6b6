package clinical

// RxItem is one medicine entry of a prescription. Order matters and is
// preserved as entered.
type RxItem struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
}

type RxItems []RxItem
