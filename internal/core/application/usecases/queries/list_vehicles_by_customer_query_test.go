package queries_test

import (
	"testing"

	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListVehiclesByCustomerQuery_Valid(t *testing.T) {
	id, err := kernel.AccountIDFromString("1")
	require.NoError(t, err)

	query, err := queries.NewListVehiclesByCustomerQuery(id)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, id.IsEqual(query.CustomerID()))
}

func TestNewListVehiclesByCustomerQuery_ZeroID(t *testing.T) {
	_, err := queries.NewListVehiclesByCustomerQuery(kernel.AccountID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestListVehiclesByCustomerQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListVehiclesByCustomerQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListVehiclesByCustomerQueryIsNotConstructed)
}
