package commands_test

import (
	"context"
	"errors"
	"testing"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/account"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/secure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validRegisterCustomerCommand(t *testing.T) commands.RegisterCustomerCommand {
	t.Helper()
	cmd, err := commands.NewRegisterCustomerCommand(
		mustAccountID(t, "1"), "Maria Silva", "maria@example.com", "secret1",
		"Rua das Flores 10", "11987654321",
	)
	require.NoError(t, err)
	return cmd
}

func TestRegisterCustomerCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	cmd := validRegisterCustomerCommand(t)

	notFound := errs.NewObjectNotFoundError("account", cmd.CustomerID().String())

	var captured *account.Account
	mockRepo := new(MockAccountRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAccountUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("AccountRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, cmd.CustomerID()).Return(nil, notFound).Once(),
		mockRepo.On("GetByEmail", ctx, cmd.Email()).Return(nil, notFound).Once(),
		mockRepo.On("Add", ctx, mock.MatchedBy(func(a *account.Account) bool {
			captured = a
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRegisterCustomerCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, cmd.CustomerID(), captured.ID())
	assert.Equal(t, account.RoleCustomer, captured.Role())
	assert.Equal(t, cmd.Address(), captured.Address())
	assert.True(t, secure.VerifyPassword(cmd.Password(), captured.PasswordHash()))
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestRegisterCustomerCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := context.Background()
	var invalidCmd commands.RegisterCustomerCommand

	mockFactory := new(MockAccountUoWFactory)
	handler := commands.NewRegisterCustomerCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrRegisterCustomerCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}

func TestRegisterCustomerCommandHandler_Handle_DuplicateID(t *testing.T) {
	// Arrange
	ctx := context.Background()
	cmd := validRegisterCustomerCommand(t)

	existing := newTestCustomer(t, cmd.CustomerID())
	mockRepo := new(MockAccountRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAccountUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("AccountRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, cmd.CustomerID()).Return(existing, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRegisterCustomerCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrConflict)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestRegisterCustomerCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	// Arrange
	ctx := context.Background()
	cmd := validRegisterCustomerCommand(t)

	notFound := errs.NewObjectNotFoundError("account", cmd.CustomerID().String())
	existing := newTestCustomer(t, mustAccountID(t, "2"))
	mockRepo := new(MockAccountRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAccountUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("AccountRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, cmd.CustomerID()).Return(nil, notFound).Once(),
		mockRepo.On("GetByEmail", ctx, cmd.Email()).Return(existing, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRegisterCustomerCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrConflict)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestRegisterCustomerCommandHandler_Handle_BeginTransactionError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	cmd := validRegisterCustomerCommand(t)

	expectedError := errors.New("begin transaction failed")
	mockUoW := new(MockUoW)
	mockFactory := new(MockAccountUoWFactory)

	mock.InOrder(
		mockFactory.On("Create").Return(mockUoW).Once(),
		mockUoW.On("Begin", ctx).Return(expectedError).Once(),
	)

	handler := commands.NewRegisterCustomerCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestRegisterCustomerCommandHandler_Handle_CommitError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	cmd := validRegisterCustomerCommand(t)

	notFound := errs.NewObjectNotFoundError("account", cmd.CustomerID().String())
	expectedError := errors.New("commit failed")
	mockRepo := new(MockAccountRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAccountUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("AccountRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, cmd.CustomerID()).Return(nil, notFound).Once(),
		mockRepo.On("GetByEmail", ctx, cmd.Email()).Return(nil, notFound).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*account.Account")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRegisterCustomerCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}
