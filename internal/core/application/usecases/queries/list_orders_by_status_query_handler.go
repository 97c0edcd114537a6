package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersByStatusQueryHandler reads order rows for one lifecycle status.
type ListOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersByStatusQueryHandler creates a handler for order listings.
func NewListOrdersByStatusQueryHandler(db *gorm.DB) ListOrdersByStatusQueryHandler {
	return ListOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by order id for consistent
// output. Vehicles and assignees are joined so callers need no follow-up
// reads to render the listing.
func (h ListOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersByStatusQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE o.status = ?
		ORDER BY o.id
	`, query.Status().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp OrderResponse

		err = rows.Scan(
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
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
