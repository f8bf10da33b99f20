package interfaces

import (
	"context"
	"time"

	"pipecrm/internal/domain/entities"
)

// DealFilter narrows List results. Nil/empty fields are ignored.
type DealFilter struct {
	Status       *entities.DealStatus
	Stage        *entities.Stage
	OwnerID      string
	CreatedAfter *time.Time
}

// IDealRepository abstracts deal persistence. Both the DynamoDB and the
// Postgres implementations satisfy it; the engine never sees store types.
//
// UpdateStage is the optimistic write used by stage transitions: it only
// applies when the stored version still equals expectedVersion and returns a
// zero-value Deal (nil error) when it does not, so the caller can report the
// lost race.
type IDealRepository interface {
	Create(ctx context.Context, d entities.Deal) (entities.Deal, error)
	GetByID(ctx context.Context, id string) (entities.Deal, error)
	List(ctx context.Context, filter DealFilter) ([]entities.Deal, error)
	UpdateStage(ctx context.Context, d entities.Deal, expectedVersion int64) (entities.Deal, error)
}
