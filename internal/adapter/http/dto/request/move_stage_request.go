package request

import (
	"strings"

	"pipecrm/internal/domain/entities"
	"pipecrm/internal/usecase"
)

// MoveStageRequest is the payload for the stage-transition endpoint.
type MoveStageRequest struct {
	Stage       string `json:"stage" binding:"required"`
	Probability *int   `json:"probability"`
	Actor       string `json:"actor"`
	Notes       string `json:"notes"`
}

func (r MoveStageRequest) ToInput(dealID string) usecase.MoveStageInput {
	return usecase.MoveStageInput{
		DealID:      strings.TrimSpace(dealID),
		NewStage:    entities.Stage(strings.TrimSpace(r.Stage)),
		Actor:       strings.TrimSpace(r.Actor),
		Notes:       r.Notes,
		Probability: r.Probability,
	}
}
