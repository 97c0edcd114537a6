// Package orderrepo persists the service-order aggregate. The sequence
// identifier is generated by the store on insert and written back into the
// aggregate through AssignID.
package orderrepo

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
)

// OrderDTO represents the database structure for persisting service orders.
// Status, service type, and payment method are stored as their string tags.
type OrderDTO struct {
	ID             uint64     `gorm:"primaryKey;autoIncrement"`
	ServiceType    string     `gorm:"type:varchar(32);not null"`
	Description    string     `gorm:"type:varchar(1024);not null"`
	Price          float64    `gorm:"not null"`
	Status         string     `gorm:"type:varchar(32);not null;index"`
	PaymentMethod  string     `gorm:"type:varchar(16);not null"`
	VehicleChassis int64      `gorm:"not null;index"`
	AssigneeID     string     `gorm:"type:varchar(36);not null;index"`
	StartedAt      *time.Time
	CompletedAt    *time.Time
}

// TableName overrides GORM's default naming to use "service_orders".
func (OrderDTO) TableName() string {
	return "service_orders"
}

func fromDomain(aggregate *serviceorder.ServiceOrder) OrderDTO {
	return OrderDTO{
		ID:             aggregate.ID(),
		ServiceType:    aggregate.ServiceType().String(),
		Description:    aggregate.Description(),
		Price:          aggregate.Price(),
		Status:         aggregate.Status().String(),
		PaymentMethod:  aggregate.PaymentMethod().String(),
		VehicleChassis: aggregate.VehicleChassis(),
		AssigneeID:     aggregate.AssigneeID().String(),
		StartedAt:      aggregate.StartedAt(),
		CompletedAt:    aggregate.CompletedAt(),
	}
}

func toDomain(dto OrderDTO) (*serviceorder.ServiceOrder, error) {
	serviceType, err := serviceorder.ServiceTypeFromString(dto.ServiceType)
	if err != nil {
		return nil, err
	}

	status, err := serviceorder.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := serviceorder.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	assigneeID, err := kernel.AccountIDFromString(dto.AssigneeID)
	if err != nil {
		return nil, err
	}

	return serviceorder.RestoreServiceOrder(
		dto.ID, serviceType, dto.Description, dto.Price, status, paymentMethod,
		dto.VehicleChassis, assigneeID, dto.StartedAt, dto.CompletedAt,
	)
}
