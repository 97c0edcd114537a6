package kernel

import (
	"fmt"
	"regexp"

	"workshop/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrAccountIDIsNotConstructed indicates that an AccountID was not created
// through NewAccountID or AccountIDFromString. It is returned when validating
// a zero-value AccountID.
var ErrAccountIDIsNotConstructed = errs.NewValueIsRequiredError(
	"AccountID must be created via NewAccountID or AccountIDFromString")

// tokenPattern is the externally assigned identifier shape: a positive
// integer with no leading zero, at most ten digits.
var tokenPattern = regexp.MustCompile(`^[1-9][0-9]{0,9}$`)

// AccountID is the identifier of an account (customer or employee).
//
// Two shapes are accepted: an externally assigned numeric token such as "42"
// (no leading zero), or a generated UUID. Customers register with a token of
// their own; employees without an explicit identifier get a generated UUID.
//
// The zero value is invalid; construct through NewAccountID or
// AccountIDFromString.
type AccountID struct {
	id string
}

// NewAccountID generates a fresh UUID-backed account identifier.
func NewAccountID() AccountID {
	return AccountID{id: uuid.NewString()}
}

// AccountIDFromString validates and wraps an externally supplied identifier.
// The identifier must be a positive integer token with no leading zero, or a
// canonical UUID.
func AccountIDFromString(s string) (AccountID, error) {
	if s == "" {
		return AccountID{}, errs.NewValueIsRequiredError("account id")
	}
	if !tokenPattern.MatchString(s) {
		if _, err := uuid.Parse(s); err != nil {
			return AccountID{}, errs.NewValueIsInvalidErrorWithCause("account id",
				fmt.Errorf("%q is neither a positive integer token nor a UUID", s))
		}
	}
	return AccountID{id: s}, nil
}

// Validate checks that the AccountID was properly constructed.
func (a AccountID) Validate() error {
	if a.id == "" {
		return ErrAccountIDIsNotConstructed
	}
	return nil
}

// IsEqual compares two account identifiers by value.
func (a AccountID) IsEqual(other AccountID) bool {
	return a.id == other.id
}

// String returns the raw identifier value.
func (a AccountID) String() string {
	return a.id
}
