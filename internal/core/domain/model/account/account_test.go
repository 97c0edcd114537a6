package account_test

import (
	"testing"

	"workshop/internal/core/domain/model/account"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, s string) kernel.AccountID {
	t.Helper()
	id, err := kernel.AccountIDFromString(s)
	require.NoError(t, err)
	return id
}

func TestNewCustomer(t *testing.T) {
	t.Run("valid customer", func(t *testing.T) {
		a, err := account.NewCustomer(mustID(t, "1"),
			"Ana Silva", "ana@example.com", "secret1", "$2a$10$hash", "Rua das Flores, 10", "5599999999")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "1", a.ID().String())
		assert.Equal(t, "Ana Silva", a.Name())
		assert.Equal(t, account.RoleCustomer, a.Role())
		assert.Equal(t, "Rua das Flores, 10", a.Address())
		assert.Equal(t, "5599999999", a.Phone())
	})

	t.Run("rejected fields", func(t *testing.T) {
		tests := []struct {
			name                                        string
			accName, email, password, address, phone    string
		}{
			{"empty name", "", "a@b.com", "secret1", "Addr 1", "99999999"},
			{"digits in name", "Ana2", "a@b.com", "secret1", "Addr 1", "99999999"},
			{"double space in name", "Ana  Silva", "a@b.com", "secret1", "Addr 1", "99999999"},
			{"bad email", "Ana", "not-an-email", "secret1", "Addr 1", "99999999"},
			{"short password", "Ana", "a@b.com", "12345", "Addr 1", "99999999"},
			{"empty address", "Ana", "a@b.com", "secret1", "", "99999999"},
			{"bad address char", "Ana", "a@b.com", "secret1", "Addr #1", "99999999"},
			{"double space in address", "Ana", "a@b.com", "secret1", "Addr  1", "99999999"},
			{"short phone", "Ana", "a@b.com", "secret1", "Addr 1", "1234567"},
			{"long phone", "Ana", "a@b.com", "secret1", "Addr 1", "1234567890123456"},
			{"letters in phone", "Ana", "a@b.com", "secret1", "Addr 1", "99999abc"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := account.NewCustomer(mustID(t, "1"),
					tt.accName, tt.email, tt.password, "$2a$10$hash", tt.address, tt.phone)
				require.Error(t, err)
			})
		}
	})

	t.Run("phone with country code prefix", func(t *testing.T) {
		a, err := account.NewCustomer(mustID(t, "2"),
			"Bruno", "b@c.com", "secret1", "$2a$10$hash", "Av. Central 42", "+5584999990000")
		require.NoError(t, err)
		assert.Equal(t, "+5584999990000", a.Phone())
	})
}

func TestNewEmployee(t *testing.T) {
	t.Run("valid employee has no extension fields", func(t *testing.T) {
		a, err := account.NewEmployee(kernel.NewAccountID(),
			"Carlos Souza", "carlos@shop.com", "secret1", "$2a$10$hash")

		require.NoError(t, err)
		assert.Equal(t, account.RoleEmployee, a.Role())
		assert.Empty(t, a.Address())
		assert.Empty(t, a.Phone())
	})

	t.Run("missing password hash", func(t *testing.T) {
		_, err := account.NewEmployee(kernel.NewAccountID(),
			"Carlos", "carlos@shop.com", "secret1", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAccount_Validate_ZeroValue(t *testing.T) {
	var a account.Account
	require.ErrorIs(t, a.Validate(), account.ErrAccountIsNotConstructed)
}

func TestAccount_UpdateProfile(t *testing.T) {
	a, err := account.NewCustomer(mustID(t, "1"),
		"Ana Silva", "ana@example.com", "secret1", "$2a$10$hash", "Rua A 1", "5599999999")
	require.NoError(t, err)

	t.Run("valid update", func(t *testing.T) {
		require.NoError(t, a.UpdateProfile("Ana Souza", "ana.souza@example.com", "Rua B 2", "5588888888"))
		assert.Equal(t, "Ana Souza", a.Name())
		assert.Equal(t, "ana.souza@example.com", a.Email())
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		require.ErrorIs(t, a.UpdateProfile("Ana", "bad", "Rua B 2", "5588888888"), errs.ErrValueIsInvalid)
	})
}

func TestAccount_ChangePassword(t *testing.T) {
	a, err := account.NewEmployee(kernel.NewAccountID(), "Carlos", "c@d.com", "secret1", "$2a$10$old")
	require.NoError(t, err)

	require.NoError(t, a.ChangePassword("newsecret", "$2a$10$new"))
	assert.Equal(t, "$2a$10$new", a.PasswordHash())

	require.Error(t, a.ChangePassword("short", "$2a$10$x"))
}

func TestRestoreAccount(t *testing.T) {
	t.Run("restores legacy row without re-validating profile rules", func(t *testing.T) {
		// Legacy rows may have fields that current registration would reject.
		a, err := account.RestoreAccount(mustID(t, "3"),
			"O Brien", "legacy@shop.com", "***", "", account.RoleEmployee, "", "")
		require.NoError(t, err)
		assert.Equal(t, account.RoleEmployee, a.Role())
	})

	t.Run("invalid role rejected", func(t *testing.T) {
		_, err := account.RestoreAccount(mustID(t, "3"),
			"Ana", "a@b.com", "secret1", "h", account.RoleUnknown, "", "")
		require.Error(t, err)
	})
}

func TestRoleFromString(t *testing.T) {
	role, err := account.RoleFromString("CUSTOMER")
	require.NoError(t, err)
	assert.Equal(t, account.RoleCustomer, role)

	role, err = account.RoleFromString("EMPLOYEE")
	require.NoError(t, err)
	assert.Equal(t, account.RoleEmployee, role)

	_, err = account.RoleFromString("ADMIN")
	require.Error(t, err)
}
