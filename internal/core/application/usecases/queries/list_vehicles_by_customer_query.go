package queries

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

// ErrListVehiclesByCustomerQueryIsNotConstructed is returned when a
// ListVehiclesByCustomerQuery was not created via
// NewListVehiclesByCustomerQuery.
var ErrListVehiclesByCustomerQueryIsNotConstructed = errors.New(
	"ListVehiclesByCustomerQuery must be created via NewListVehiclesByCustomerQuery constructor",
)

// ListVehiclesByCustomerQuery retrieves every vehicle registered to one
// customer.
type ListVehiclesByCustomerQuery struct {
	customerID kernel.AccountID

	guard guard.ConstructorGuard
}

// NewListVehiclesByCustomerQuery creates a query for one customer's vehicles.
func NewListVehiclesByCustomerQuery(customerID kernel.AccountID) (ListVehiclesByCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ListVehiclesByCustomerQuery{}, err
	}

	return ListVehiclesByCustomerQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListVehiclesByCustomerQuery) Validate() error {
	return q.guard.Validate(ErrListVehiclesByCustomerQueryIsNotConstructed)
}

// CustomerID returns the owning customer's identifier.
func (q ListVehiclesByCustomerQuery) CustomerID() kernel.AccountID {
	return q.customerID
}

// VehicleResponse is the read model for one vehicle row.
type VehicleResponse struct {
	Chassis    int64
	Model      string
	Color      string
	Year       int
	Mileage    float64
	Price      float64
	CustomerID string
}
