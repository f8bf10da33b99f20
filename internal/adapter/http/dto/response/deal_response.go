package response

import (
	"time"

	"github.com/shopspring/decimal"

	"pipecrm/internal/domain/entities"
)

type DealResponse struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	OwnerID       string          `json:"owner_id,omitempty"`
	Title         string          `json:"title"`
	Value         decimal.Decimal `json:"value"`
	WeightedValue decimal.Decimal `json:"weighted_value"`
	Stage         string          `json:"stage"`
	Probability   int             `json:"probability"`
	Status        string          `json:"status"`
	ExpectedClose *time.Time      `json:"expected_close,omitempty"`
	ClosedAt      *time.Time      `json:"closed_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Version       int64           `json:"version"`
	Notes         string          `json:"notes,omitempty"`
}

func FromDeal(d entities.Deal) DealResponse {
	return DealResponse{
		ID:            d.ID,
		CustomerID:    d.CustomerID,
		OwnerID:       d.OwnerID,
		Title:         d.Title,
		Value:         d.Value,
		WeightedValue: d.WeightedValue(),
		Stage:         string(d.Stage),
		Probability:   d.Probability,
		Status:        string(d.Status),
		ExpectedClose: d.ExpectedClose,
		ClosedAt:      d.ClosedAt,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
		Version:       d.Version,
		Notes:         d.Notes,
	}
}

func FromDeals(deals []entities.Deal) []DealResponse {
	out := make([]DealResponse, 0, len(deals))
	for _, d := range deals {
		out = append(out, FromDeal(d))
	}
	return out
}
