package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListVehiclesByCustomerQueryHandler reads vehicle rows for one customer.
type ListVehiclesByCustomerQueryHandler struct {
	db *gorm.DB
}

// NewListVehiclesByCustomerQueryHandler creates a handler for vehicle
// listings.
func NewListVehiclesByCustomerQueryHandler(db *gorm.DB) ListVehiclesByCustomerQueryHandler {
	return ListVehiclesByCustomerQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by chassis number for
// consistent output.
func (h ListVehiclesByCustomerQueryHandler) Handle(
	ctx context.Context,
	query ListVehiclesByCustomerQuery,
) ([]VehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]VehicleResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT chassis, model, color, year, mileage, price, customer_id
		FROM vehicles
		WHERE customer_id = ?
		ORDER BY chassis
	`, query.CustomerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp VehicleResponse

		err = rows.Scan(
			&resp.Chassis,
			&resp.Model,
			&resp.Color,
			&resp.Year,
			&resp.Mileage,
			&resp.Price,
			&resp.CustomerID,
		)
		if err != nil {
			return nil, err
		}

		vehicles = append(vehicles, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
