package interfaces

import (
	"context"

	"pipecrm/internal/domain/entities"
)

type ActivityFilter struct {
	DealID  string
	OwnerID string
}

// IActivityRepository exposes sales activities (calls, emails, meetings) for
// completion rates and touchpoint advisories.
type IActivityRepository interface {
	List(ctx context.Context, filter ActivityFilter) ([]entities.Activity, error)
}
