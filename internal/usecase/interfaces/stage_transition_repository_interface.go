package interfaces

import (
	"context"
	"time"

	"pipecrm/internal/domain/entities"
)

// IStageTransitionRepository abstracts the append-only pipeline history log.
// Transitions are immutable once written; there is no update or delete.
// ListByDealID returns a deal's history in chronological order.
type IStageTransitionRepository interface {
	Create(ctx context.Context, tr entities.StageTransition) (entities.StageTransition, error)
	ListByDealID(ctx context.Context, dealID string) ([]entities.StageTransition, error)
	List(ctx context.Context, since *time.Time) ([]entities.StageTransition, error)
}
