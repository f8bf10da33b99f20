package response

import (
	"time"

	"pipecrm/internal/domain/entities"
)

type TransitionResponse struct {
	ID        string    `json:"id"`
	DealID    string    `json:"deal_id"`
	FromStage string    `json:"from_stage"`
	ToStage   string    `json:"to_stage"`
	ChangedBy string    `json:"changed_by,omitempty"`
	ChangedAt time.Time `json:"changed_at"`
	Notes     string    `json:"notes,omitempty"`
}

func FromTransition(tr entities.StageTransition) TransitionResponse {
	return TransitionResponse{
		ID:        tr.ID,
		DealID:    tr.DealID,
		FromStage: string(tr.FromStage),
		ToStage:   string(tr.ToStage),
		ChangedBy: tr.ChangedBy,
		ChangedAt: tr.ChangedAt,
		Notes:     tr.Notes,
	}
}

func FromTransitions(items []entities.StageTransition) []TransitionResponse {
	out := make([]TransitionResponse, 0, len(items))
	for _, tr := range items {
		out = append(out, FromTransition(tr))
	}
	return out
}
