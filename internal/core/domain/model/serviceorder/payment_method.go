package serviceorder

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// PaymentMethod is the closed set of payment methods the shop accepts.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined method.
	PaymentMethodUnknown PaymentMethod = iota

	// Pix is an instant bank transfer.
	Pix

	// Credit is a credit card payment.
	Credit

	// Debit is a debit card payment.
	Debit

	// Cash is a cash payment.
	Cash
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown: "Unknown",
		Pix:                  "PIX",
		Credit:               "CREDIT",
		Debit:                "DEBIT",
		Cash:                 "CASH",
	}
}

func getValidPaymentMethodStrings() map[PaymentMethod]string {
	m := getPaymentMethodStrings()
	delete(m, PaymentMethodUnknown)
	return m
}

// PaymentMethodFromString converts a stored method tag back to a
// PaymentMethod.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for m, str := range getValidPaymentMethodStrings() {
		if str == s {
			return m, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause("payment method",
		fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks that the PaymentMethod is one of the accepted methods.
func (m PaymentMethod) Validate() error {
	if _, ok := getValidPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the stored tag of the method, or "Unknown" for invalid
// values.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}
