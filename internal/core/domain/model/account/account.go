package account

import (
	"errors"
	"fmt"
	"regexp"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

// ErrAccountIsNotConstructed is returned when an Account instance was not
// created through NewCustomer, NewEmployee, or RestoreAccount.
var ErrAccountIsNotConstructed = errors.New(
	"Account must be created via NewCustomer, NewEmployee, or RestoreAccount")

const minPasswordLength = 6

var (
	namePattern    = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ ]+$`)
	addressPattern = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ0-9 ,.-]+$`)
	phonePattern   = regexp.MustCompile(`^\+?[0-9]{8,15}$`)
	emailPattern   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)
)

// Account is the aggregate root for a system login. It is a tagged variant:
// the base record (id, name, email, credentials) is shared, and the role tag
// selects which extension fields apply. Customer accounts carry an address
// and a phone number; employee accounts carry no extra fields.
//
// The plaintext password is kept alongside the hash for backward
// compatibility with records written before hashing was introduced.
type Account struct {
	id           kernel.AccountID
	name         string
	email        string
	password     string
	passwordHash string
	role         Role

	// customer extension, empty for employees
	address string
	phone   string

	isConstructed bool
}

// NewCustomer creates a customer account with its extension fields.
// The identifier is externally assigned by the caller. passwordHash is the
// already computed hash of password; hashing is the application layer's job.
func NewCustomer(id kernel.AccountID, name, email, password, passwordHash, address, phone string) (*Account, error) {
	a := &Account{
		role:          RoleCustomer,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setEmail(email),
		a.setPassword(password, passwordHash),
		a.setAddress(address),
		a.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// NewEmployee creates an employee account. Employees have no extension
// fields beyond the base record.
func NewEmployee(id kernel.AccountID, name, email, password, passwordHash string) (*Account, error) {
	a := &Account{
		role:          RoleEmployee,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setEmail(email),
		a.setPassword(password, passwordHash),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAccount reconstructs an account from persistence without re-running
// registration-time rules that no longer hold for legacy rows.
func RestoreAccount(
	id kernel.AccountID, name, email, password, passwordHash string, role Role, address, phone string,
) (*Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	return &Account{
		id:            id,
		name:          name,
		email:         email,
		password:      password,
		passwordHash:  passwordHash,
		role:          role,
		address:       address,
		phone:         phone,
		isConstructed: true,
	}, nil
}

// Validate ensures the Account was created through one of its constructors.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// IsEqual compares two accounts by identifier.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account identifier.
func (a *Account) ID() kernel.AccountID {
	return a.id
}

// Name returns the display name.
func (a *Account) Name() string {
	return a.name
}

// Email returns the unique email address.
func (a *Account) Email() string {
	return a.email
}

// Password returns the legacy plaintext password.
func (a *Account) Password() string {
	return a.password
}

// PasswordHash returns the bcrypt hash of the password.
func (a *Account) PasswordHash() string {
	return a.passwordHash
}

// Role returns the role tag.
func (a *Account) Role() Role {
	return a.role
}

// Address returns the postal address of a customer account.
// Empty for employees.
func (a *Account) Address() string {
	return a.address
}

// Phone returns the phone number of a customer account.
// Empty for employees.
func (a *Account) Phone() string {
	return a.phone
}

// UpdateProfile replaces the mutable profile fields, applying the same rules
// as registration. Address and phone are only validated for customers.
func (a *Account) UpdateProfile(name, email, address, phone string) error {
	if err := errors.Join(
		a.setName(name),
		a.setEmail(email),
	); err != nil {
		return err
	}

	if a.role == RoleCustomer {
		if err := errors.Join(
			a.setAddress(address),
			a.setPhone(phone),
		); err != nil {
			return err
		}
	}

	return nil
}

// ChangePassword replaces the stored credentials. passwordHash must be the
// hash of password.
func (a *Account) ChangePassword(password, passwordHash string) error {
	return a.setPassword(password, passwordHash)
}

func (a *Account) setID(id kernel.AccountID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if !namePattern.MatchString(name) {
		return errs.NewValueIsInvalidErrorWithCause("name",
			fmt.Errorf("%q may only contain letters and spaces", name))
	}
	if containsDoubleSpace(name) {
		return errs.NewValueIsInvalidErrorWithCause("name",
			errors.New("double spaces are not allowed"))
	}
	a.name = name
	return nil
}

func (a *Account) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q is not a valid email address", email))
	}
	a.email = email
	return nil
}

func (a *Account) setPassword(password, passwordHash string) error {
	if len(password) < minPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause("password",
			fmt.Errorf("must be at least %d characters", minPasswordLength))
	}
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	a.password = password
	a.passwordHash = passwordHash
	return nil
}

func (a *Account) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if !addressPattern.MatchString(address) {
		return errs.NewValueIsInvalidErrorWithCause("address",
			fmt.Errorf("%q may only contain letters, digits, spaces, commas, periods, and hyphens", address))
	}
	if containsDoubleSpace(address) {
		return errs.NewValueIsInvalidErrorWithCause("address",
			errors.New("double spaces are not allowed"))
	}
	a.address = address
	return nil
}

func (a *Account) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if !phonePattern.MatchString(phone) {
		return errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("%q must be 8-15 digits with an optional leading +", phone))
	}
	a.phone = phone
	return nil
}

func containsDoubleSpace(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] == ' ' && s[i-1] == ' ' {
			return true
		}
	}
	return false
}
