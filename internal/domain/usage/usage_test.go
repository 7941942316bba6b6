package usage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	assert.Equal(t, 25.0, Ratio(125, 500))
	assert.Equal(t, 0.0, Ratio(0, 500))
	assert.Equal(t, 100.0, Ratio(500, 500))
}

func TestRatioClampsAbove100(t *testing.T) {
	assert.Equal(t, 100.0, Ratio(750, 500))
}

func TestRatioZeroLimit(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(10, 0))
	assert.Equal(t, 0.0, Ratio(10, -5))
}

func TestTrialLimits(t *testing.T) {
	limits := TrialLimits()

	assert.Equal(t, 500, limits.Patients)
	assert.Equal(t, 1000, limits.Visits)
	assert.Equal(t, 200, limits.Invoices)
}

func TestMonthKey(t *testing.T) {
	ts := time.Date(2024, time.March, 7, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03", MonthKey(ts))
}
