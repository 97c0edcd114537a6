package serviceorder

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// ServiceType is the closed set of services the shop offers.
type ServiceType int

const (
	// ServiceTypeUnknown represents an invalid or undefined type.
	ServiceTypeUnknown ServiceType = iota

	// PaintFull is a complete repaint of the vehicle.
	PaintFull

	// PaintParts is a repaint of individual parts.
	PaintParts

	// TouchUp is a localized paint touch-up.
	TouchUp

	// ClearCoat is a clear-coat finish.
	ClearCoat

	// WashSimple is a basic exterior wash.
	WashSimple

	// WashComplete is a full interior and exterior wash.
	WashComplete

	// Polish is a polish and wax treatment.
	Polish
)

func getServiceTypeStrings() map[ServiceType]string {
	return map[ServiceType]string{
		ServiceTypeUnknown: "Unknown",
		PaintFull:          "PAINT_FULL",
		PaintParts:         "PAINT_PARTS",
		TouchUp:            "TOUCH_UP",
		ClearCoat:          "CLEAR_COAT",
		WashSimple:         "WASH_SIMPLE",
		WashComplete:       "WASH_COMPLETE",
		Polish:             "POLISH",
	}
}

func getValidServiceTypeStrings() map[ServiceType]string {
	m := getServiceTypeStrings()
	delete(m, ServiceTypeUnknown)
	return m
}

// ServiceTypeFromString converts a stored type tag back to a ServiceType.
func ServiceTypeFromString(s string) (ServiceType, error) {
	for t, str := range getValidServiceTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return ServiceTypeUnknown, errs.NewValueIsInvalidErrorWithCause("service type",
		fmt.Errorf("%q is not a valid service type", s))
}

// Validate checks that the ServiceType is one of the offered services.
func (t ServiceType) Validate() error {
	if _, ok := getValidServiceTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("service type",
			fmt.Errorf("%d is not a valid service type", t))
	}
	return nil
}

// String returns the stored tag of the type, or "Unknown" for invalid values.
func (t ServiceType) String() string {
	if str, ok := getServiceTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
