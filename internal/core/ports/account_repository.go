// Package ports defines repository interfaces for the workshop domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability. All methods
// return domain errors from internal/pkg/errs, never raw storage errors.
package ports

import (
	"context"

	"workshop/internal/core/domain/model/account"
	"workshop/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
// An account is split across the base accounts table and its role-extension
// table; implementations compose and decompose the split so callers only
// ever see whole aggregates.
type AccountRepository interface {
	// Add persists a new account: the base row first, then the role
	// extension, inside the ambient transaction. A duplicate email is
	// reported as a ConflictError.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account across both rows.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by identifier, joined with its role
	// extension.
	Get(ctx context.Context, id kernel.AccountID) (*account.Account, error)

	// GetByEmail retrieves an account by its unique email address.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)

	// GetAllByRole retrieves all accounts carrying the given role tag.
	GetAllByRole(ctx context.Context, role account.Role) ([]*account.Account, error)

	// Delete removes the account and its role extension, extension first.
	Delete(ctx context.Context, id kernel.AccountID) error
}
