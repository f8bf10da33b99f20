package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"pipecrm/internal/domain/entities"
)

// Period is a trailing dashboard window. Windows are fixed-day
// approximations (a "month" is the last 30 days, not a calendar month);
// forecast buckets are the calendar-correct ones.
type Period string

const (
	PeriodToday   Period = "today"
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

func (p Period) Valid() bool {
	switch p {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear:
		return true
	}
	return false
}

// windowStart returns the start of the trailing window ending at now.
func (p Period) windowStart(now time.Time) time.Time {
	switch p {
	case PeriodToday:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodMonth:
		return now.AddDate(0, 0, -30)
	case PeriodQuarter:
		return now.AddDate(0, 0, -90)
	default:
		return now.AddDate(0, 0, -365)
	}
}

// previousWindowStart returns the start of the window immediately before the
// current one, used for growth rates.
func (p Period) previousWindowStart(now time.Time) time.Time {
	start := p.windowStart(now)
	if p == PeriodToday {
		return start.AddDate(0, 0, -1)
	}
	return start.Add(-now.Sub(start))
}

// Snapshot is the record set a dashboard computation runs over. Callers load
// everything up front; the engine issues no further lookups.
type Snapshot struct {
	Deals      []entities.Deal
	Customers  []entities.Customer
	Activities []entities.Activity
}

type CustomerMetrics struct {
	Total       int                            `json:"total"`
	NewInPeriod int                            `json:"new_in_period"`
	ByStatus    map[entities.CustomerStatus]int `json:"by_status"`
	GrowthRate  float64                        `json:"growth_rate"`
}

type DealMetrics struct {
	Total       int `json:"total"`
	NewInPeriod int `json:"new_in_period"`
	Active      int `json:"active"`
	Won         int `json:"won"`
	Lost        int `json:"lost"`

	TotalValue       decimal.Decimal `json:"total_value"`
	WonValue         decimal.Decimal `json:"won_value"`
	PipelineValue    decimal.Decimal `json:"pipeline_value"`
	WeightedPipeline decimal.Decimal `json:"weighted_pipeline"`
	AvgDealSize      decimal.Decimal `json:"avg_deal_size"`

	WinRate        float64 `json:"win_rate"`
	GrowthRate     float64 `json:"growth_rate"`
	SalesCycleDays float64 `json:"sales_cycle_days"`
}

type ActivityMetrics struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completion_rate"`
	PerCustomer    float64 `json:"per_customer"`
}

// Metrics is the headline dashboard rollup for one trailing window. Every
// field is plain data, serializable as-is.
type Metrics struct {
	Period      Period    `json:"period"`
	GeneratedAt time.Time `json:"generated_at"`

	Customers  CustomerMetrics `json:"customers"`
	Deals      DealMetrics     `json:"deals"`
	Activities ActivityMetrics `json:"activities"`

	// ConversionRate is new deals per new customer in the window, as a
	// percentage.
	ConversionRate float64 `json:"conversion_rate"`

	// Warnings lists records skipped for being malformed. The rollup
	// degrades instead of failing on bad input.
	Warnings []string `json:"warnings,omitempty"`
}

// DashboardMetrics computes the headline numbers for the window ending at
// now. Malformed records (negative value, probability out of range, unknown
// stage) are skipped with a warning; every rate guards its denominator and
// yields 0 instead of dividing by zero.
func DashboardMetrics(snap Snapshot, period Period, now time.Time) Metrics {
	if !period.Valid() {
		period = PeriodMonth
	}
	start := period.windowStart(now)
	prevStart := period.previousWindowStart(now)

	m := Metrics{
		Period:      period,
		GeneratedAt: now,
		Customers: CustomerMetrics{
			ByStatus: make(map[entities.CustomerStatus]int, len(entities.CustomerStatuses)),
		},
		Deals: DealMetrics{
			TotalValue:       decimal.Zero,
			WonValue:         decimal.Zero,
			PipelineValue:    decimal.Zero,
			WeightedPipeline: decimal.Zero,
			AvgDealSize:      decimal.Zero,
		},
	}
	for _, s := range entities.CustomerStatuses {
		m.Customers.ByStatus[s] = 0
	}

	// Customers.
	prevNewCustomers := 0
	for _, c := range snap.Customers {
		m.Customers.Total++
		m.Customers.ByStatus[c.Status]++
		if !c.CreatedAt.Before(start) {
			m.Customers.NewInPeriod++
		} else if !c.CreatedAt.Before(prevStart) {
			prevNewCustomers++
		}
	}
	m.Customers.GrowthRate = growthRate(m.Customers.NewInPeriod, prevNewCustomers)

	// Deals.
	prevNewDeals := 0
	wonInPeriod := 0
	cycleDaySum := 0
	for _, d := range snap.Deals {
		if warn := validateDeal(d); warn != "" {
			m.Warnings = append(m.Warnings, warn)
			continue
		}

		m.Deals.Total++
		m.Deals.TotalValue = m.Deals.TotalValue.Add(d.Value)

		if !d.CreatedAt.Before(start) {
			m.Deals.NewInPeriod++
		} else if !d.CreatedAt.Before(prevStart) {
			prevNewDeals++
		}

		switch d.Status {
		case entities.DealStatusActive:
			m.Deals.Active++
			m.Deals.PipelineValue = m.Deals.PipelineValue.Add(d.Value)
			m.Deals.WeightedPipeline = m.Deals.WeightedPipeline.Add(d.WeightedValue())
		case entities.DealStatusWon:
			if !d.CloseTime().Before(start) {
				m.Deals.Won++
				wonInPeriod++
				m.Deals.WonValue = m.Deals.WonValue.Add(d.Value)
				cycleDaySum += wholeDaysBetween(d.CreatedAt, d.CloseTime())
			}
		case entities.DealStatusLost:
			if !d.CloseTime().Before(start) {
				m.Deals.Lost++
			}
		}
	}

	if closed := m.Deals.Won + m.Deals.Lost; closed > 0 {
		m.Deals.WinRate = round2(float64(m.Deals.Won) / float64(closed) * 100)
	}
	if wonInPeriod > 0 {
		m.Deals.AvgDealSize = m.Deals.WonValue.Div(decimal.NewFromInt(int64(wonInPeriod))).Round(2)
		m.Deals.SalesCycleDays = round1(float64(cycleDaySum) / float64(wonInPeriod))
	}
	m.Deals.GrowthRate = growthRate(m.Deals.NewInPeriod, prevNewDeals)

	// Activities.
	for _, a := range snap.Activities {
		if a.CreatedAt.Before(start) {
			continue
		}
		m.Activities.Total++
		if a.Completed {
			m.Activities.Completed++
		}
	}
	if m.Activities.Total > 0 {
		m.Activities.CompletionRate = round2(float64(m.Activities.Completed) / float64(m.Activities.Total) * 100)
	}
	if m.Customers.Total > 0 {
		m.Activities.PerCustomer = round2(float64(m.Activities.Total) / float64(m.Customers.Total))
	}

	if m.Customers.NewInPeriod > 0 {
		m.ConversionRate = round2(float64(m.Deals.NewInPeriod) / float64(m.Customers.NewInPeriod) * 100)
	}

	return m
}

// growthRate is (current - previous) / previous x 100, 0 when the previous
// window was empty.
func growthRate(current, previous int) float64 {
	if previous == 0 {
		return 0
	}
	return round2(float64(current-previous) / float64(previous) * 100)
}

func validateDeal(d entities.Deal) string {
	if d.Value.IsNegative() {
		return fmt.Sprintf("deal %s skipped: negative value", d.ID)
	}
	if d.Probability < 0 || d.Probability > 100 {
		return fmt.Sprintf("deal %s skipped: probability out of range", d.ID)
	}
	if !d.Stage.Valid() {
		return fmt.Sprintf("deal %s skipped: unknown stage %q", d.ID, d.Stage)
	}
	return ""
}
