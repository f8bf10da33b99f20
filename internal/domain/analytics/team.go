package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"pipecrm/internal/domain/entities"
)

// OwnerPerformance is the per-rep rollup shown on the team board.
type OwnerPerformance struct {
	OwnerID     string          `json:"owner_id"`
	TotalDeals  int             `json:"total_deals"`
	WonDeals    int             `json:"won_deals"`
	LostDeals   int             `json:"lost_deals"`
	ActiveDeals int             `json:"active_deals"`
	Revenue     decimal.Decimal `json:"revenue"`
	Pipeline    decimal.Decimal `json:"pipeline_value"`
	WinRate     float64         `json:"win_rate"`
	AvgDealSize decimal.Decimal `json:"avg_deal_size"`
}

// TeamPerformance groups deals by owner and ranks owners by won revenue.
// Deals without an owner are grouped under an empty owner id.
func TeamPerformance(deals []entities.Deal) []OwnerPerformance {
	byOwner := make(map[string]*OwnerPerformance)
	for _, d := range deals {
		p := byOwner[d.OwnerID]
		if p == nil {
			p = &OwnerPerformance{
				OwnerID:     d.OwnerID,
				Revenue:     decimal.Zero,
				Pipeline:    decimal.Zero,
				AvgDealSize: decimal.Zero,
			}
			byOwner[d.OwnerID] = p
		}
		p.TotalDeals++
		switch d.Status {
		case entities.DealStatusWon:
			p.WonDeals++
			p.Revenue = p.Revenue.Add(d.Value)
		case entities.DealStatusLost:
			p.LostDeals++
		case entities.DealStatusActive:
			p.ActiveDeals++
			p.Pipeline = p.Pipeline.Add(d.Value)
		}
	}

	out := make([]OwnerPerformance, 0, len(byOwner))
	for _, p := range byOwner {
		if closed := p.WonDeals + p.LostDeals; closed > 0 {
			p.WinRate = round2(float64(p.WonDeals) / float64(closed) * 100)
		}
		if p.WonDeals > 0 {
			p.AvgDealSize = p.Revenue.Div(decimal.NewFromInt(int64(p.WonDeals))).Round(2)
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Revenue.Cmp(out[j].Revenue); c != 0 {
			return c > 0
		}
		return out[i].OwnerID < out[j].OwnerID
	})
	return out
}
