package commands_test

import (
	"testing"

	"workshop/internal/core/domain/model/account"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/require"
)

func mustAccountID(t *testing.T, s string) kernel.AccountID {
	t.Helper()
	id, err := kernel.AccountIDFromString(s)
	require.NoError(t, err)
	return id
}

func newTestCustomer(t *testing.T, id kernel.AccountID) *account.Account {
	t.Helper()
	customer, err := account.RestoreAccount(
		id, "Maria Silva", "maria@example.com", "secret1", "$2a$10$hash",
		account.RoleCustomer, "Rua das Flores 10", "11987654321",
	)
	require.NoError(t, err)
	return customer
}

func newTestEmployee(t *testing.T, id kernel.AccountID) *account.Account {
	t.Helper()
	employee, err := account.RestoreAccount(
		id, "Carlos Souza", "carlos@example.com", "secret1", "$2a$10$hash",
		account.RoleEmployee, "", "",
	)
	require.NoError(t, err)
	return employee
}

func newTestVehicle(t *testing.T, chassis int64, customerID kernel.AccountID) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.RestoreVehicle(chassis, "Honda CG 160", "red", 2020, 15000, 12000, customerID)
	require.NoError(t, err)
	return v
}

func newTestOrder(
	t *testing.T, id uint64, status serviceorder.Status, chassis int64, assigneeID kernel.AccountID,
) *serviceorder.ServiceOrder {
	t.Helper()
	order, err := serviceorder.RestoreServiceOrder(
		id, serviceorder.WashComplete, "full wash", 150, status,
		serviceorder.Pix, chassis, assigneeID, nil, nil,
	)
	require.NoError(t, err)
	return order
}
