package queries_test

import (
	"context"
	"testing"

	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/serviceorder"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ListOrdersByStatusQueryHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler queries.ListOrdersByStatusQueryHandler
}

func (s *ListOrdersByStatusQueryHandlerTestSuite) SetupTest() {
	s.db = openTestDB(s.T())
	s.handler = queries.NewListOrdersByStatusQueryHandler(s.db)
}

func (s *ListOrdersByStatusQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewListOrdersByStatusQuery(serviceorder.StatusPending)
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.NotNil(result)
	s.Empty(result)
}

func (s *ListOrdersByStatusQueryHandlerTestSuite) TestHandle_FiltersByStatus() {
	customerID := seedCustomer(s.T(), s.db, "1", "ana@example.com")
	employeeID := seedEmployee(s.T(), s.db, "carlos@example.com")
	seedVehicle(s.T(), s.db, 1001, customerID)

	pendingID := seedOrder(s.T(), s.db, 1001, employeeID, serviceorder.StatusPending)
	seedOrder(s.T(), s.db, 1001, employeeID, serviceorder.StatusInProgress)
	seedOrder(s.T(), s.db, 1001, employeeID, serviceorder.StatusCompleted)

	query, err := queries.NewListOrdersByStatusQuery(serviceorder.StatusPending)
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Equal(pendingID, result[0].ID)
	s.Equal("PENDING", result[0].Status)
}

func (s *ListOrdersByStatusQueryHandlerTestSuite) TestHandle_JoinsVehicleAndAssignee() {
	customerID := seedCustomer(s.T(), s.db, "1", "ana@example.com")
	employeeID := seedEmployee(s.T(), s.db, "carlos@example.com")
	seedVehicle(s.T(), s.db, 1001, customerID)
	seedOrder(s.T(), s.db, 1001, employeeID, serviceorder.StatusPending)

	query, err := queries.NewListOrdersByStatusQuery(serviceorder.StatusPending)
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Equal(int64(1001), result[0].VehicleChassis)
	s.Equal("Honda CG 160", result[0].VehicleModel)
	s.Equal(employeeID.String(), result[0].AssigneeID)
	s.Equal("Carlos Souza", result[0].AssigneeName)
	s.Equal("PAINT_FULL", result[0].ServiceType)
	s.InDelta(300.0, result[0].Price, 0.001)
	s.Nil(result[0].StartedAt)
	s.Nil(result[0].CompletedAt)
}

func (s *ListOrdersByStatusQueryHandlerTestSuite) TestHandle_OrdersAreSortedByID() {
	customerID := seedCustomer(s.T(), s.db, "1", "ana@example.com")
	employeeID := seedEmployee(s.T(), s.db, "carlos@example.com")
	seedVehicle(s.T(), s.db, 1001, customerID)

	first := seedOrder(s.T(), s.db, 1001, employeeID, serviceorder.StatusPending)
	second := seedOrder(s.T(), s.db, 1001, employeeID, serviceorder.StatusPending)
	third := seedOrder(s.T(), s.db, 1001, employeeID, serviceorder.StatusPending)

	query, err := queries.NewListOrdersByStatusQuery(serviceorder.StatusPending)
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Require().Len(result, 3)
	s.Equal(first, result[0].ID)
	s.Equal(second, result[1].ID)
	s.Equal(third, result[2].ID)
}

func (s *ListOrdersByStatusQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.ListOrdersByStatusQuery{}

	result, err := s.handler.Handle(context.Background(), invalidQuery)

	s.Require().Error(err)
	s.Nil(result)
	s.ErrorIs(err, queries.ErrListOrdersByStatusQueryIsNotConstructed)
}

func TestListOrdersByStatusQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListOrdersByStatusQueryHandlerTestSuite))
}
