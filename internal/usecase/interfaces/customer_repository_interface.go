package interfaces

import (
	"context"

	"pipecrm/internal/domain/entities"
)

type CustomerFilter struct {
	Status  *entities.CustomerStatus
	OwnerID string
}

// ICustomerRepository exposes the read side of customers the analytics
// rollups need. Customer lifecycle writes live outside this service.
type ICustomerRepository interface {
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context, filter CustomerFilter) ([]entities.Customer, error)
}
