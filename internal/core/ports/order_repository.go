package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
)

// OrderRepository defines the persistence contract for service-order
// aggregates.
type OrderRepository interface {
	// Add persists a new order and assigns the store's next sequence value
	// to the aggregate.
	Add(ctx context.Context, aggregate *serviceorder.ServiceOrder) error

	// Update persists changes to an existing order, including its status
	// and lifecycle timestamps.
	Update(ctx context.Context, aggregate *serviceorder.ServiceOrder) error

	// Get retrieves an order by its sequence identifier.
	Get(ctx context.Context, id uint64) (*serviceorder.ServiceOrder, error)

	// GetAllByStatus retrieves all orders currently in the given status.
	GetAllByStatus(ctx context.Context, status serviceorder.Status) ([]*serviceorder.ServiceOrder, error)

	// GetAllByVehicle retrieves all orders for the given vehicle.
	// Used by the guarded vehicle delete.
	GetAllByVehicle(ctx context.Context, chassis int64) ([]*serviceorder.ServiceOrder, error)

	// GetAllByAssignee retrieves all orders assigned to the given employee.
	// Used by the guarded employee delete.
	GetAllByAssignee(ctx context.Context, assigneeID kernel.AccountID) ([]*serviceorder.ServiceOrder, error)

	// Delete removes an order by identifier. Callers must check
	// CanBeDeleted first; the repository does not re-check.
	Delete(ctx context.Context, id uint64) error
}
