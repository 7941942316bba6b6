package usage

import "time"

// Plan limits for the trial plan. Limits reset monthly and are display-only:
// crossing one does not block creation.
type Limits struct {
	Patients int `json:"patients"`
	Visits   int `json:"visits"`
	Invoices int `json:"invoices"`
}

func TrialLimits() Limits {
	return Limits{Patients: 500, Visits: 1000, Invoices: 200}
}

// Delta is the per-create increment applied to a month's meter.
type Delta struct {
	Patients int
	Visits   int
	Invoices int
}

// Ratio returns current/limit as a percentage clamped to [0,100], for
// progress-bar rendering.
func Ratio(current, limit int) float64 {
	if limit <= 0 {
		return 0
	}
	pct := float64(current) / float64(limit) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// MonthKey formats t as the meter's calendar-month key, e.g. "2024-03".
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
