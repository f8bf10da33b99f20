package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ForecastType string

const (
	ForecastMonthly   ForecastType = "monthly"
	ForecastQuarterly ForecastType = "quarterly"
	ForecastYearly    ForecastType = "yearly"
)

func (t ForecastType) Valid() bool {
	switch t {
	case ForecastMonthly, ForecastQuarterly, ForecastYearly:
		return true
	}
	return false
}

// ForecastSnapshot is a persisted projection for one period, keyed by
// (Period, Type). The cron runner upserts these on a schedule; the live
// forecast endpoints always recompute from the current deal set.
type ForecastSnapshot struct {
	ID               string          `json:"id"`
	Period           string          `json:"period"` // "2026-08", "2026-Q3", "2026"
	Type             ForecastType    `json:"type"`
	TotalPipeline    decimal.Decimal `json:"total_pipeline"`
	WeightedPipeline decimal.Decimal `json:"weighted_pipeline"`
	ExpectedRevenue  decimal.Decimal `json:"expected_revenue"`

	// ActualRevenue stays nil until the period has elapsed.
	ActualRevenue *decimal.Decimal `json:"actual_revenue,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
