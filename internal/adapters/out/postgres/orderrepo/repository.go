package orderrepo

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository bound to the
// given connection or transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order and assigns the generated sequence value to the
// aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *serviceorder.ServiceOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageError("service_orders.insert", err)
	}

	return aggregate.AssignID(dto.ID)
}

// Update saves changes to an existing order, including status and lifecycle
// timestamps.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *serviceorder.ServiceOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.ID() == 0 {
		return errs.NewValueIsRequiredError("order id")
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return errs.NewStorageError("service_orders.update", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	return nil
}

// Get retrieves an order by its sequence identifier.
func (r *GormOrderRepository) Get(ctx context.Context, id uint64) (*serviceorder.ServiceOrder, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, errs.NewStorageError("service_orders.select", err)
	}

	return toDomain(dto)
}

// GetAllByStatus retrieves all orders currently in the given status, sorted
// by identifier for consistent output.
func (r *GormOrderRepository) GetAllByStatus(
	ctx context.Context, status serviceorder.Status,
) ([]*serviceorder.ServiceOrder, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return r.findAll(ctx, "status = ?", status.String())
}

// GetAllByVehicle retrieves all orders for the given vehicle.
func (r *GormOrderRepository) GetAllByVehicle(
	ctx context.Context, chassis int64,
) ([]*serviceorder.ServiceOrder, error) {
	return r.findAll(ctx, "vehicle_chassis = ?", chassis)
}

// GetAllByAssignee retrieves all orders assigned to the given employee.
func (r *GormOrderRepository) GetAllByAssignee(
	ctx context.Context, assigneeID kernel.AccountID,
) ([]*serviceorder.ServiceOrder, error) {
	if err := assigneeID.Validate(); err != nil {
		return nil, err
	}
	return r.findAll(ctx, "assignee_id = ?", assigneeID.String())
}

// Delete removes an order by identifier.
func (r *GormOrderRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id)
	if result.Error != nil {
		return errs.NewStorageError("service_orders.delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id)
	}

	return nil
}

func (r *GormOrderRepository) findAll(
	ctx context.Context, condition string, arg any,
) ([]*serviceorder.ServiceOrder, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Where(condition, arg).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, errs.NewStorageError("service_orders.select", err)
	}

	orders := make([]*serviceorder.ServiceOrder, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
