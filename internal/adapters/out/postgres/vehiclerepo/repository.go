package vehiclerepo

import (
	"context"
	"errors"
	"strconv"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/vehicle"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVehicleRepository implements VehicleRepository using GORM.
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GORM vehicle repository bound to the
// given connection or transaction.
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// Add saves a new vehicle. A duplicate chassis number is reported as a
// ConflictError.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("chassis", err)
		}
		return errs.NewStorageError("vehicles.insert", err)
	}

	return nil
}

// Update saves changes to an existing vehicle.
func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return errs.NewStorageError("vehicles.update", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle", dto.Chassis)
	}

	return nil
}

// Get retrieves a vehicle by chassis number.
func (r *GormVehicleRepository) Get(ctx context.Context, chassis int64) (*vehicle.Vehicle, error) {
	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "chassis = ?", chassis).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", chassis)
		}
		return nil, errs.NewStorageError("vehicles.select", err)
	}

	return toDomain(dto)
}

// GetAllByCustomer retrieves all vehicles owned by the given customer,
// sorted by chassis number for consistent output.
func (r *GormVehicleRepository) GetAllByCustomer(
	ctx context.Context, customerID kernel.AccountID,
) ([]*vehicle.Vehicle, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []VehicleDTO
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.String()).
		Order("chassis").
		Find(&dtos).Error; err != nil {
		return nil, errs.NewStorageError("vehicles.select", err)
	}

	vehicles := make([]*vehicle.Vehicle, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, aggregate)
	}

	return vehicles, nil
}

// CountByCustomer counts the vehicles owned by the given customer.
func (r *GormVehicleRepository) CountByCustomer(ctx context.Context, customerID kernel.AccountID) (int, error) {
	if err := customerID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("customer_id = ?", customerID.String()).
		Count(&count).Error; err != nil {
		return 0, errs.NewStorageError("vehicles.count", err)
	}

	return int(count), nil
}

// Delete removes a vehicle by chassis number.
func (r *GormVehicleRepository) Delete(ctx context.Context, chassis int64) error {
	result := r.db.WithContext(ctx).Delete(&VehicleDTO{}, "chassis = ?", chassis)
	if result.Error != nil {
		return errs.NewStorageError("vehicles.delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle", strconv.FormatInt(chassis, 10))
	}

	return nil
}
