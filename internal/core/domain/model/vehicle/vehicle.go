package vehicle

import (
	"errors"
	"fmt"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

// ErrVehicleIsNotConstructed is returned when a Vehicle instance was not
// created through NewVehicle or RestoreVehicle.
var ErrVehicleIsNotConstructed = errors.New(
	"Vehicle must be created via NewVehicle or RestoreVehicle")

// minYear is the oldest accepted manufacture year.
const minYear = 1900

// Vehicle is the aggregate root for a customer's vehicle. The chassis number
// is externally supplied and serves as the unique identifier. A vehicle
// always belongs to exactly one customer.
type Vehicle struct {
	chassis    int64
	model      string
	color      string
	year       int
	mileage    float64
	price      float64
	customerID kernel.AccountID

	isConstructed bool
}

// NewVehicle creates a vehicle attached to the given customer.
// The chassis number must be positive; the manufacture year must lie in
// [1900, current year]; mileage and price must not be negative.
func NewVehicle(
	chassis int64, model, color string, year int, mileage, price float64, customerID kernel.AccountID,
) (*Vehicle, error) {
	v := &Vehicle{
		isConstructed: true,
	}

	if err := errors.Join(
		v.setChassis(chassis),
		v.setModel(model),
		v.setColor(color),
		v.setYear(year),
		v.setMileage(mileage),
		v.setPrice(price),
		v.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a vehicle from persistence.
func RestoreVehicle(
	chassis int64, model, color string, year int, mileage, price float64, customerID kernel.AccountID,
) (*Vehicle, error) {
	return NewVehicle(chassis, model, color, year, mileage, price, customerID)
}

// Validate ensures the Vehicle was created through its constructor.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// IsEqual compares two vehicles by chassis number.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.chassis == other.chassis
}

// Chassis returns the unique chassis number.
func (v *Vehicle) Chassis() int64 {
	return v.chassis
}

// Model returns the make/model text.
func (v *Vehicle) Model() string {
	return v.model
}

// Color returns the vehicle color.
func (v *Vehicle) Color() string {
	return v.color
}

// Year returns the manufacture year.
func (v *Vehicle) Year() int {
	return v.year
}

// Mileage returns the recorded mileage.
func (v *Vehicle) Mileage() float64 {
	return v.mileage
}

// Price returns the appraised price.
func (v *Vehicle) Price() float64 {
	return v.price
}

// CustomerID returns the owning customer's account identifier.
func (v *Vehicle) CustomerID() kernel.AccountID {
	return v.customerID
}

// UpdateDetails replaces the mutable vehicle fields, applying the same rules
// as creation. The chassis number and owning customer never change.
func (v *Vehicle) UpdateDetails(model, color string, year int, mileage, price float64) error {
	return errors.Join(
		v.setModel(model),
		v.setColor(color),
		v.setYear(year),
		v.setMileage(mileage),
		v.setPrice(price),
	)
}

func (v *Vehicle) setChassis(chassis int64) error {
	if chassis <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("chassis",
			fmt.Errorf("%d is not a positive chassis number", chassis))
	}
	v.chassis = chassis
	return nil
}

func (v *Vehicle) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	v.model = model
	return nil
}

func (v *Vehicle) setColor(color string) error {
	if color == "" {
		return errs.NewValueIsRequiredError("color")
	}
	v.color = color
	return nil
}

func (v *Vehicle) setYear(year int) error {
	currentYear := time.Now().Year()
	if year < minYear || year > currentYear {
		return errs.NewValueIsOutOfRangeError("year", year, minYear, currentYear)
	}
	v.year = year
	return nil
}

func (v *Vehicle) setMileage(mileage float64) error {
	if mileage < 0 {
		return errs.NewValueIsInvalidErrorWithCause("mileage",
			fmt.Errorf("%v is negative", mileage))
	}
	v.mileage = mileage
	return nil
}

func (v *Vehicle) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is negative", price))
	}
	v.price = price
	return nil
}

func (v *Vehicle) setCustomerID(customerID kernel.AccountID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	v.customerID = customerID
	return nil
}
