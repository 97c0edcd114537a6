package serviceorder

import (
	"errors"
	"fmt"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when a ServiceOrder instance was
	// not created through NewServiceOrder or RestoreServiceOrder.
	ErrOrderIsNotConstructed = errors.New(
		"ServiceOrder must be created via NewServiceOrder or RestoreServiceOrder")

	// ErrOrderIsFinal is returned when attempting to edit an order that has
	// reached a terminal status.
	ErrOrderIsFinal = errors.New("service order in a terminal status cannot be modified")

	// ErrOrderIDAlreadyAssigned is returned when assigning a sequence number
	// to an order that already has one.
	ErrOrderIDAlreadyAssigned = errors.New("service order already has an identifier")

	// ErrOrderNotDeletable is returned when deleting an order that has moved
	// past the pending stage without being canceled.
	ErrOrderNotDeletable = errors.New("service order can only be deleted while pending or after cancellation")
)

// ServiceOrder is the aggregate root for one unit of shop work on a vehicle.
// It owns the order lifecycle: the identifier is assigned by the store on
// first insert, the status only changes through the state machine in
// Status, and the start/completion timestamps are stamped by the
// transitions that reach them.
type ServiceOrder struct {
	id            uint64
	serviceType   ServiceType
	description   string
	price         float64
	status        Status
	paymentMethod PaymentMethod
	vehicleChassis int64
	assigneeID    kernel.AccountID
	startedAt     *time.Time
	completedAt   *time.Time

	isConstructed bool
}

// NewServiceOrder creates an order in the initial Pending status.
// The identifier stays zero until the repository persists the order and
// assigns the next sequence value.
func NewServiceOrder(
	serviceType ServiceType,
	description string,
	price float64,
	paymentMethod PaymentMethod,
	vehicleChassis int64,
	assigneeID kernel.AccountID,
) (*ServiceOrder, error) {
	o := &ServiceOrder{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setServiceType(serviceType),
		o.setDescription(description),
		o.setPrice(price),
		o.setPaymentMethod(paymentMethod),
		o.setVehicleChassis(vehicleChassis),
		o.setAssigneeID(assigneeID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreServiceOrder reconstructs an order from persistence, including its
// status and lifecycle timestamps.
func RestoreServiceOrder(
	id uint64,
	serviceType ServiceType,
	description string,
	price float64,
	status Status,
	paymentMethod PaymentMethod,
	vehicleChassis int64,
	assigneeID kernel.AccountID,
	startedAt, completedAt *time.Time,
) (*ServiceOrder, error) {
	o, err := NewServiceOrder(serviceType, description, price, paymentMethod, vehicleChassis, assigneeID)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.id = id
	o.status = status
	o.startedAt = startedAt
	o.completedAt = completedAt
	return o, nil
}

// Validate ensures the ServiceOrder was created through its constructor.
func (o *ServiceOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *ServiceOrder) IsEqual(other *ServiceOrder) bool {
	return other != nil && o.id == other.id
}

// ID returns the sequence identifier, zero before the first insert.
func (o *ServiceOrder) ID() uint64 {
	return o.id
}

// AssignID records the sequence value the store assigned on insert.
// It fails if the order already has an identifier.
func (o *ServiceOrder) AssignID(id uint64) error {
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}
	if id == 0 {
		return errs.NewValueIsRequiredError("order id")
	}
	o.id = id
	return nil
}

// ServiceType returns the kind of service ordered.
func (o *ServiceOrder) ServiceType() ServiceType {
	return o.serviceType
}

// Description returns the free-text description.
func (o *ServiceOrder) Description() string {
	return o.description
}

// Price returns the agreed price.
func (o *ServiceOrder) Price() float64 {
	return o.price
}

// Status returns the current lifecycle status.
func (o *ServiceOrder) Status() Status {
	return o.status
}

// PaymentMethod returns the chosen payment method.
func (o *ServiceOrder) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// VehicleChassis returns the chassis number of the vehicle being serviced.
func (o *ServiceOrder) VehicleChassis() int64 {
	return o.vehicleChassis
}

// AssigneeID returns the account identifier of the assigned employee.
func (o *ServiceOrder) AssigneeID() kernel.AccountID {
	return o.assigneeID
}

// StartedAt returns when work started, nil while still pending.
func (o *ServiceOrder) StartedAt() *time.Time {
	return o.startedAt
}

// CompletedAt returns when the order was completed, nil until then.
func (o *ServiceOrder) CompletedAt() *time.Time {
	return o.completedAt
}

// ChangeStatus moves the order to the requested status if the state machine
// allows it. Entering InProgress stamps the start time; entering Completed
// stamps the completion time. The caller persists the order in the same
// transaction so the status and its timestamp never diverge.
func (o *ServiceOrder) ChangeStatus(to Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(to)
	if err != nil {
		return err
	}

	o.status = newStatus
	switch newStatus {
	case StatusInProgress:
		o.startedAt = &now
	case StatusCompleted:
		o.completedAt = &now
	}
	return nil
}

// CanBeDeleted reports whether the order may be physically removed.
// Orders are only deletable while pending or after cancellation; anything
// that has been worked on stays on record.
func (o *ServiceOrder) CanBeDeleted() bool {
	return o.status == StatusPending || o.status == StatusCanceled
}

// UpdateDetails replaces the editable fields. Orders in a terminal status
// are immutable.
func (o *ServiceOrder) UpdateDetails(
	serviceType ServiceType, description string, price float64, paymentMethod PaymentMethod,
) error {
	if o.status.IsTerminal() {
		return ErrOrderIsFinal
	}

	return errors.Join(
		o.setServiceType(serviceType),
		o.setDescription(description),
		o.setPrice(price),
		o.setPaymentMethod(paymentMethod),
	)
}

// SetPrice updates only the price. Orders in a terminal status are immutable.
func (o *ServiceOrder) SetPrice(price float64) error {
	if o.status.IsTerminal() {
		return ErrOrderIsFinal
	}
	return o.setPrice(price)
}

func (o *ServiceOrder) setServiceType(serviceType ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	o.serviceType = serviceType
	return nil
}

func (o *ServiceOrder) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	o.description = description
	return nil
}

func (o *ServiceOrder) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is negative", price))
	}
	o.price = price
	return nil
}

func (o *ServiceOrder) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *ServiceOrder) setVehicleChassis(chassis int64) error {
	if chassis <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("vehicle chassis",
			fmt.Errorf("%d is not a positive chassis number", chassis))
	}
	o.vehicleChassis = chassis
	return nil
}

func (o *ServiceOrder) setAssigneeID(assigneeID kernel.AccountID) error {
	if err := assigneeID.Validate(); err != nil {
		return err
	}
	o.assigneeID = assigneeID
	return nil
}
