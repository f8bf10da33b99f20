package interfaces

import (
	"context"

	"pipecrm/internal/domain/entities"
)

// IForecastRepository persists forecast snapshots keyed by (period, type).
// Upsert replaces an existing snapshot for the same key.
type IForecastRepository interface {
	Upsert(ctx context.Context, fs entities.ForecastSnapshot) (entities.ForecastSnapshot, error)
	ListByType(ctx context.Context, ft entities.ForecastType) ([]entities.ForecastSnapshot, error)
}
