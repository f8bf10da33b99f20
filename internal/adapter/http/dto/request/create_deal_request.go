package request

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pipecrm/internal/domain/entities"
	"pipecrm/internal/usecase"
)

// CreateDealRequest is the payload for opening a deal. Stage and probability
// are optional; the pipeline applies stage defaults when they are absent.
type CreateDealRequest struct {
	CustomerID    string          `json:"customer_id" binding:"required"`
	OwnerID       string          `json:"owner_id"`
	Title         string          `json:"title" binding:"required"`
	Value         decimal.Decimal `json:"value"`
	Stage         string          `json:"stage"`
	Probability   *int            `json:"probability"`
	ExpectedClose *time.Time      `json:"expected_close"`
	Notes         string          `json:"notes"`
}

func (r CreateDealRequest) ToInput() usecase.CreateDealInput {
	return usecase.CreateDealInput{
		CustomerID:    strings.TrimSpace(r.CustomerID),
		OwnerID:       strings.TrimSpace(r.OwnerID),
		Title:         strings.TrimSpace(r.Title),
		Value:         r.Value,
		Stage:         entities.Stage(strings.TrimSpace(r.Stage)),
		Probability:   r.Probability,
		ExpectedClose: r.ExpectedClose,
		Notes:         r.Notes,
	}
}
