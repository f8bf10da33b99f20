package entities

import "time"

// StageTransition is an append-only log entry recording a deal moving from
// one stage to another. Created exactly once per stage change and immutable
// afterwards; ordered by ChangedAt.
//
// Invariant: the ToStage of a deal's most recent transition equals the deal's
// current stage. MoveStage checks this defensively before writing.
type StageTransition struct {
	ID        string    `json:"id"`
	DealID    string    `json:"deal_id"`
	FromStage Stage     `json:"from_stage"`
	ToStage   Stage     `json:"to_stage"`
	ChangedBy string    `json:"changed_by,omitempty"`
	ChangedAt time.Time `json:"changed_at"`
	Notes     string    `json:"notes,omitempty"`
}
