package queries_test

import (
	"context"
	"testing"

	"workshop/internal/adapters/out/postgres/accountrepo"
	"workshop/internal/adapters/out/postgres/orderrepo"
	"workshop/internal/adapters/out/postgres/vehiclerepo"
	"workshop/internal/core/domain/model/account"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/core/domain/model/vehicle"
	"workshop/internal/pkg/secure"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&accountrepo.AccountDTO{}, &accountrepo.CustomerDTO{}, &accountrepo.EmployeeDTO{},
		&vehiclerepo.VehicleDTO{}, &orderrepo.OrderDTO{},
	))

	return db
}

func mustAccountID(t *testing.T, raw string) kernel.AccountID {
	t.Helper()

	id, err := kernel.AccountIDFromString(raw)
	require.NoError(t, err)
	return id
}

func seedCustomer(t *testing.T, db *gorm.DB, raw, email string) kernel.AccountID {
	t.Helper()

	id := mustAccountID(t, raw)
	hash, err := secure.HashPassword("secret1")
	require.NoError(t, err)

	customer, err := account.NewCustomer(id, "Ana Silva", email, "secret1", hash, "Rua das Flores 10", "5599999999")
	require.NoError(t, err)

	require.NoError(t, accountrepo.NewGormAccountRepository(db).Add(context.Background(), customer))
	return id
}

func seedEmployee(t *testing.T, db *gorm.DB, email string) kernel.AccountID {
	t.Helper()

	id := kernel.NewAccountID()
	hash, err := secure.HashPassword("secret1")
	require.NoError(t, err)

	employee, err := account.NewEmployee(id, "Carlos Souza", email, "secret1", hash)
	require.NoError(t, err)

	require.NoError(t, accountrepo.NewGormAccountRepository(db).Add(context.Background(), employee))
	return id
}

func seedVehicle(t *testing.T, db *gorm.DB, chassis int64, customerID kernel.AccountID) {
	t.Helper()

	v, err := vehicle.NewVehicle(chassis, "Honda CG 160", "red", 2020, 15000, 12000, customerID)
	require.NoError(t, err)

	require.NoError(t, vehiclerepo.NewGormVehicleRepository(db).Add(context.Background(), v))
}

func seedOrder(
	t *testing.T, db *gorm.DB, chassis int64, assigneeID kernel.AccountID, status serviceorder.Status,
) uint64 {
	t.Helper()

	order, err := serviceorder.NewServiceOrder(
		serviceorder.PaintFull, "full repaint", 300, serviceorder.Pix, chassis, assigneeID,
	)
	require.NoError(t, err)

	require.NoError(t, orderrepo.NewGormOrderRepository(db).Add(context.Background(), order))

	if status != serviceorder.StatusPending {
		require.NoError(t, db.Exec(
			"UPDATE service_orders SET status = ? WHERE id = ?", status.String(), order.ID(),
		).Error)
	}

	return order.ID()
}
