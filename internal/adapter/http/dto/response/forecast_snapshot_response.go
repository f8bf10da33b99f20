package response

import (
	"time"

	"github.com/shopspring/decimal"

	"pipecrm/internal/domain/entities"
)

type ForecastSnapshotResponse struct {
	ID               string           `json:"id"`
	Period           string           `json:"period"`
	Type             string           `json:"type"`
	TotalPipeline    decimal.Decimal  `json:"total_pipeline"`
	WeightedPipeline decimal.Decimal  `json:"weighted_pipeline"`
	ExpectedRevenue  decimal.Decimal  `json:"expected_revenue"`
	ActualRevenue    *decimal.Decimal `json:"actual_revenue,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func FromForecastSnapshot(s entities.ForecastSnapshot) ForecastSnapshotResponse {
	return ForecastSnapshotResponse{
		ID:               s.ID,
		Period:           s.Period,
		Type:             string(s.Type),
		TotalPipeline:    s.TotalPipeline,
		WeightedPipeline: s.WeightedPipeline,
		ExpectedRevenue:  s.ExpectedRevenue,
		ActualRevenue:    s.ActualRevenue,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func FromForecastSnapshots(snapshots []entities.ForecastSnapshot) []ForecastSnapshotResponse {
	out := make([]ForecastSnapshotResponse, 0, len(snapshots))
	for _, s := range snapshots {
		out = append(out, FromForecastSnapshot(s))
	}
	return out
}
