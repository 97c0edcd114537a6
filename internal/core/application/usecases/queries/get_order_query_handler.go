package queries

import (
	"context"
	"database/sql"
	"errors"

	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one service order row joined with its vehicle
// and assignee.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. A missing order is reported as an
// ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var resp OrderResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.service_type,
			o.description,
			o.price,
			o.status,
			o.payment_method,
			o.vehicle_chassis,
			v.model,
			o.assignee_id,
			a.name,
			o.started_at,
			o.completed_at
		FROM service_orders o
		JOIN vehicles v ON v.chassis = o.vehicle_chassis
		JOIN accounts a ON a.id = o.assignee_id
		WHERE o.id = ?
	`, query.OrderID()).Row()

	err := row.Scan(
		&resp.ID,
		&resp.ServiceType,
		&resp.Description,
		&resp.Price,
		&resp.Status,
		&resp.PaymentMethod,
		&resp.VehicleChassis,
		&resp.VehicleModel,
		&resp.AssigneeID,
		&resp.AssigneeName,
		&resp.StartedAt,
		&resp.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return OrderResponse{}, err
	}

	return resp, nil
}
