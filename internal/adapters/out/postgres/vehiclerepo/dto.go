// Package vehiclerepo persists the vehicle aggregate.
package vehiclerepo

import (
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/vehicle"
)

// VehicleDTO represents the database structure for persisting vehicles.
// The chassis number is the primary key; it is externally supplied, never
// generated.
type VehicleDTO struct {
	Chassis    int64   `gorm:"primaryKey;autoIncrement:false"`
	Model      string  `gorm:"type:varchar(255);not null"`
	Color      string  `gorm:"type:varchar(64);not null"`
	Year       int     `gorm:"not null"`
	Mileage    float64 `gorm:"not null"`
	Price      float64 `gorm:"not null"`
	CustomerID string  `gorm:"type:varchar(36);not null;index"`
}

// TableName overrides GORM's default naming to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		Chassis:    aggregate.Chassis(),
		Model:      aggregate.Model(),
		Color:      aggregate.Color(),
		Year:       aggregate.Year(),
		Mileage:    aggregate.Mileage(),
		Price:      aggregate.Price(),
		CustomerID: aggregate.CustomerID().String(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	customerID, err := kernel.AccountIDFromString(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(
		dto.Chassis, dto.Model, dto.Color, dto.Year, dto.Mileage, dto.Price, customerID,
	)
}
