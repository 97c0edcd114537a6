package queries

import (
	"context"
	"database/sql"
	"errors"

	"workshop/internal/pkg/secure"

	"gorm.io/gorm"
)

// AuthenticateAccountQueryHandler verifies login credentials against the
// accounts table.
type AuthenticateAccountQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateAccountQueryHandler creates a handler for credential checks.
func NewAuthenticateAccountQueryHandler(db *gorm.DB) AuthenticateAccountQueryHandler {
	return AuthenticateAccountQueryHandler{db: db}
}

// Handle executes the query. The password is checked against the bcrypt hash;
// rows imported before hashing was introduced carry only the plaintext column
// and are compared directly. Any mismatch or unknown email yields
// ErrInvalidCredentials.
func (h AuthenticateAccountQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateAccountQuery,
) (AuthenticatedAccountResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticatedAccountResponse{}, err
	}

	var (
		resp         AuthenticatedAccountResponse
		password     string
		passwordHash string
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name, role, password, password_hash
		FROM accounts
		WHERE email = ?
	`, query.Email()).Row()

	err := row.Scan(&resp.ID, &resp.Name, &resp.Role, &password, &passwordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AuthenticatedAccountResponse{}, ErrInvalidCredentials
		}
		return AuthenticatedAccountResponse{}, err
	}

	switch {
	case passwordHash != "":
		if !secure.VerifyPassword(query.Password(), passwordHash) {
			return AuthenticatedAccountResponse{}, ErrInvalidCredentials
		}
	case password != query.Password():
		return AuthenticatedAccountResponse{}, ErrInvalidCredentials
	}

	return resp, nil
}
