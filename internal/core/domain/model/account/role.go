package account

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// Role tags an account as a customer or an employee. The role decides which
// extension record (address/phone for customers, none for employees) belongs
// to the account. Consuming code switches on the role, never on type identity.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer marks an account that owns vehicles and requests services.
	RoleCustomer

	// RoleEmployee marks an account that is assigned to service orders.
	RoleEmployee
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RoleCustomer: "CUSTOMER",
		RoleEmployee: "EMPLOYEE",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer: "CUSTOMER",
		RoleEmployee: "EMPLOYEE",
	}
}

// RoleFromString converts a stored role tag back to a Role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role value is one of the valid roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the stored tag of the role, or "Unknown" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
