package queries

import (
	"errors"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// ErrGetOrderQueryIsNotConstructed is returned when a GetOrderQuery was not
// created via NewGetOrderQuery.
var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one service order by its sequence identifier.
type GetOrderQuery struct {
	orderID uint64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one service order.
func NewGetOrderQuery(orderID uint64) (GetOrderQuery, error) {
	if orderID == 0 {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("order id")
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() uint64 {
	return q.orderID
}
