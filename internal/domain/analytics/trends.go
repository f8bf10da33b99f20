package analytics

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"pipecrm/internal/domain/entities"
)

var ErrInvalidTrendLength = errors.New("trend length must be between 1 and 24")

// TrendPoint is one chart point of the sales trend series.
type TrendPoint struct {
	Period       string          `json:"period"`
	Revenue      decimal.Decimal `json:"revenue"`
	WonDeals     int             `json:"won_deals"`
	NewCustomers int             `json:"new_customers"`
	WinRate      float64         `json:"win_rate"`
}

// SalesTrends builds a chart-ready series over the last points calendar
// periods including the current one, oldest first. Revenue counts deals won
// inside each period; win rate is computed among deals closed in the period.
func SalesTrends(deals []entities.Deal, customers []entities.Customer, pt PeriodType, points int, now time.Time) ([]TrendPoint, error) {
	if points < 1 || points > 24 {
		return nil, ErrInvalidTrendLength
	}
	if !validPeriodType(pt) {
		return nil, ErrUnknownPeriod
	}

	out := make([]TrendPoint, 0, points)
	for i := -(points - 1); i <= 0; i++ {
		start, end, label := periodBounds(pt, now, i)
		p := TrendPoint{Period: label, Revenue: decimal.Zero}

		won, lost := 0, 0
		for _, d := range deals {
			if d.Status != entities.DealStatusWon && d.Status != entities.DealStatusLost {
				continue
			}
			if !inWindow(d.CloseTime(), start, end) {
				continue
			}
			if d.Status == entities.DealStatusWon {
				won++
				p.Revenue = p.Revenue.Add(d.Value)
			} else {
				lost++
			}
		}
		p.WonDeals = won
		if won+lost > 0 {
			p.WinRate = round2(float64(won) / float64(won+lost) * 100)
		}

		for _, c := range customers {
			if inWindow(c.CreatedAt, start, end) {
				p.NewCustomers++
			}
		}
		out = append(out, p)
	}
	return out, nil
}
