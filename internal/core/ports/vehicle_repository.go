package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
type VehicleRepository interface {
	// Add persists a new vehicle. The chassis number must not already
	// exist; a duplicate is reported as a ConflictError.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle by chassis number.
	Get(ctx context.Context, chassis int64) (*vehicle.Vehicle, error)

	// GetAllByCustomer retrieves all vehicles owned by the given customer.
	GetAllByCustomer(ctx context.Context, customerID kernel.AccountID) ([]*vehicle.Vehicle, error)

	// CountByCustomer counts the vehicles owned by the given customer.
	// Used by the guarded customer delete.
	CountByCustomer(ctx context.Context, customerID kernel.AccountID) (int, error)

	// Delete removes a vehicle by chassis number.
	Delete(ctx context.Context, chassis int64) error
}
