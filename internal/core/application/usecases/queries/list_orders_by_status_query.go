// Package queries contains read-side handlers. Unlike commands, queries
// bypass the domain aggregates and read projection rows straight from the
// database with raw SQL.
package queries

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/guard"
)

// ErrListOrdersByStatusQueryIsNotConstructed is returned when a
// ListOrdersByStatusQuery was not created via NewListOrdersByStatusQuery.
var ErrListOrdersByStatusQueryIsNotConstructed = errors.New(
	"ListOrdersByStatusQuery must be created via NewListOrdersByStatusQuery constructor",
)

// ListOrdersByStatusQuery retrieves every order currently in one lifecycle
// status, joined with the vehicle and assignee for display.
//
// Example:
//
//	query, err := NewListOrdersByStatusQuery(serviceorder.StatusPending)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewListOrdersByStatusQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("%d orders waiting\n", len(orders))
type ListOrdersByStatusQuery struct {
	status serviceorder.Status

	guard guard.ConstructorGuard
}

// NewListOrdersByStatusQuery creates a query for orders in the given status.
func NewListOrdersByStatusQuery(status serviceorder.Status) (ListOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return ListOrdersByStatusQuery{}, err
	}

	return ListOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByStatusQueryIsNotConstructed)
}

// Status returns the requested lifecycle status.
func (q ListOrdersByStatusQuery) Status() serviceorder.Status {
	return q.status
}

// OrderResponse is the read model for one service order row, joined with
// the vehicle and assignee names for display.
type OrderResponse struct {
	ID             uint64
	ServiceType    string
	Description    string
	Price          float64
	Status         string
	PaymentMethod  string
	VehicleChassis int64
	VehicleModel   string
	AssigneeID     string
	AssigneeName   string
	StartedAt      *time.Time
	CompletedAt    *time.Time
}
