package analytics

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"pipecrm/internal/domain/entities"
)

// PeriodType selects the forecast bucketing granularity.
type PeriodType string

const (
	PeriodMonthly   PeriodType = "monthly"
	PeriodQuarterly PeriodType = "quarterly"
	PeriodYearly    PeriodType = "yearly"
)

// HighConfidenceProbability is the probability floor above which a deal's
// full value counts as expected revenue.
const HighConfidenceProbability = 70

const maxForecastHorizon = 12

var (
	ErrInvalidHorizon     = errors.New("forecast horizon must be between 1 and 12")
	ErrUnknownPeriod      = errors.New("unknown forecast period type")
	ErrInvalidPeriodsBack = errors.New("periods back must be between 1 and 12")
)

// PeriodForecast is the projection for one calendar period.
type PeriodForecast struct {
	Period string    `json:"period"` // "2026-08", "2026-Q3" or "2026"
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"` // exclusive

	DealCount        int             `json:"deal_count"`
	TotalPipeline    decimal.Decimal `json:"total_pipeline"`
	WeightedPipeline decimal.Decimal `json:"weighted_pipeline"`
	ExpectedRevenue  decimal.Decimal `json:"expected_revenue"`

	// ActualRevenue is nil for future periods and filled by
	// ForecastWithActuals for periods that have already elapsed.
	ActualRevenue *decimal.Decimal `json:"actual_revenue,omitempty"`
}

// Forecast projects open pipeline value into the next horizon calendar
// periods after now. Period bounds are true calendar boundaries (inclusive
// start, exclusive end), so a 31-day month and a leap year bucket correctly.
// The result is a pure function of the snapshot and now: the same inputs
// always produce the same output.
func Forecast(deals []entities.Deal, pt PeriodType, horizon int, now time.Time) ([]PeriodForecast, error) {
	if horizon < 1 || horizon > maxForecastHorizon {
		return nil, ErrInvalidHorizon
	}
	if !validPeriodType(pt) {
		return nil, ErrUnknownPeriod
	}

	out := make([]PeriodForecast, 0, horizon)
	for i := 1; i <= horizon; i++ {
		start, end, label := periodBounds(pt, now, i)
		out = append(out, bucketForecast(deals, start, end, label))
	}
	return out, nil
}

// ForecastWithActuals runs the same projection over the last periodsBack
// already-elapsed calendar periods and fills ActualRevenue with the value of
// deals won inside each period, enabling forecast-vs-actual views.
func ForecastWithActuals(deals []entities.Deal, pt PeriodType, periodsBack int, now time.Time) ([]PeriodForecast, error) {
	if periodsBack < 1 || periodsBack > maxForecastHorizon {
		return nil, ErrInvalidPeriodsBack
	}
	if !validPeriodType(pt) {
		return nil, ErrUnknownPeriod
	}

	out := make([]PeriodForecast, 0, periodsBack)
	for i := -periodsBack; i <= -1; i++ {
		start, end, label := periodBounds(pt, now, i)
		pf := bucketForecast(deals, start, end, label)

		actual := decimal.Zero
		for _, d := range deals {
			if d.Status != entities.DealStatusWon {
				continue
			}
			closed := d.CloseTime()
			if inWindow(closed, start, end) {
				actual = actual.Add(d.Value)
			}
		}
		pf.ActualRevenue = &actual
		out = append(out, pf)
	}
	return out, nil
}

// bucketForecast aggregates the active deals expected to close in [start, end).
func bucketForecast(deals []entities.Deal, start, end time.Time, label string) PeriodForecast {
	pf := PeriodForecast{
		Period:           label,
		Start:            start,
		End:              end,
		TotalPipeline:    decimal.Zero,
		WeightedPipeline: decimal.Zero,
		ExpectedRevenue:  decimal.Zero,
	}
	for _, d := range deals {
		if d.Status != entities.DealStatusActive || d.ExpectedClose == nil {
			continue
		}
		if !inWindow(*d.ExpectedClose, start, end) {
			continue
		}
		pf.DealCount++
		pf.TotalPipeline = pf.TotalPipeline.Add(d.Value)
		pf.WeightedPipeline = pf.WeightedPipeline.Add(d.WeightedValue())
		if d.Probability >= HighConfidenceProbability {
			pf.ExpectedRevenue = pf.ExpectedRevenue.Add(d.Value)
		}
	}
	return pf
}

// periodBounds returns the calendar bounds and label of the period offset
// steps away from the one containing now (offset +1 is the next period,
// -1 the previous one).
func periodBounds(pt PeriodType, now time.Time, offset int) (start, end time.Time, label string) {
	switch pt {
	case PeriodMonthly:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		start = first.AddDate(0, offset, 0)
		end = start.AddDate(0, 1, 0)
		label = start.Format("2006-01")
	case PeriodQuarterly:
		qStartMonth := time.Month((int(now.Month())-1)/3*3 + 1)
		first := time.Date(now.Year(), qStartMonth, 1, 0, 0, 0, 0, now.Location())
		start = first.AddDate(0, 3*offset, 0)
		end = start.AddDate(0, 3, 0)
		label = fmt.Sprintf("%d-Q%d", start.Year(), (int(start.Month())-1)/3+1)
	default: // PeriodYearly
		first := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		start = first.AddDate(offset, 0, 0)
		end = start.AddDate(1, 0, 0)
		label = start.Format("2006")
	}
	return start, end, label
}

func validPeriodType(pt PeriodType) bool {
	switch pt {
	case PeriodMonthly, PeriodQuarterly, PeriodYearly:
		return true
	}
	return false
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}
