package queries_test

import (
	"context"
	"testing"

	"workshop/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ListVehiclesByCustomerQueryHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler queries.ListVehiclesByCustomerQueryHandler
}

func (s *ListVehiclesByCustomerQueryHandlerTestSuite) SetupTest() {
	s.db = openTestDB(s.T())
	s.handler = queries.NewListVehiclesByCustomerQueryHandler(s.db)
}

func (s *ListVehiclesByCustomerQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	customerID := seedCustomer(s.T(), s.db, "1", "ana@example.com")

	query, err := queries.NewListVehiclesByCustomerQuery(customerID)
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.NotNil(result)
	s.Empty(result)
}

func (s *ListVehiclesByCustomerQueryHandlerTestSuite) TestHandle_ReturnsOnlyOwnVehicles() {
	anaID := seedCustomer(s.T(), s.db, "1", "ana@example.com")
	beaID := seedCustomer(s.T(), s.db, "2", "bea@example.com")

	seedVehicle(s.T(), s.db, 1001, anaID)
	seedVehicle(s.T(), s.db, 1002, anaID)
	seedVehicle(s.T(), s.db, 2001, beaID)

	query, err := queries.NewListVehiclesByCustomerQuery(anaID)
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Require().Len(result, 2)
	s.Equal(int64(1001), result[0].Chassis)
	s.Equal(int64(1002), result[1].Chassis)
	for _, v := range result {
		s.Equal(anaID.String(), v.CustomerID)
		s.Equal("Honda CG 160", v.Model)
		s.Equal("red", v.Color)
		s.Equal(2020, v.Year)
	}
}

func (s *ListVehiclesByCustomerQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.ListVehiclesByCustomerQuery{}

	result, err := s.handler.Handle(context.Background(), invalidQuery)

	s.Require().Error(err)
	s.Nil(result)
	s.ErrorIs(err, queries.ErrListVehiclesByCustomerQueryIsNotConstructed)
}

func TestListVehiclesByCustomerQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListVehiclesByCustomerQueryHandlerTestSuite))
}
