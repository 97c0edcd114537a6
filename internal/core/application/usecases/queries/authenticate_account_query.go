package queries

import (
	"errors"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// ErrAuthenticateAccountQueryIsNotConstructed is returned when an
// AuthenticateAccountQuery was not created via NewAuthenticateAccountQuery.
var ErrAuthenticateAccountQueryIsNotConstructed = errors.New(
	"AuthenticateAccountQuery must be created via NewAuthenticateAccountQuery constructor",
)

// ErrInvalidCredentials is returned when no account matches the supplied
// email and password pair. The handler never distinguishes an unknown email
// from a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthenticateAccountQuery checks an email and password pair against the
// stored credentials.
type AuthenticateAccountQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateAccountQuery creates a credential check query.
func NewAuthenticateAccountQuery(email, password string) (AuthenticateAccountQuery, error) {
	if email == "" {
		return AuthenticateAccountQuery{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return AuthenticateAccountQuery{}, errs.NewValueIsRequiredError("password")
	}

	return AuthenticateAccountQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateAccountQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateAccountQueryIsNotConstructed)
}

// Email returns the login email.
func (q AuthenticateAccountQuery) Email() string {
	return q.email
}

// Password returns the plaintext password to verify.
func (q AuthenticateAccountQuery) Password() string {
	return q.password
}

// AuthenticatedAccountResponse is the read model returned on a successful
// credential check. The password never leaves the handler.
type AuthenticatedAccountResponse struct {
	ID   string
	Name string
	Role string
}
