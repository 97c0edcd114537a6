package serviceorder_test

import (
	"testing"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assigneeID(t *testing.T) kernel.AccountID {
	t.Helper()
	id, err := kernel.AccountIDFromString("9")
	require.NoError(t, err)
	return id
}

func newOrder(t *testing.T) *serviceorder.ServiceOrder {
	t.Helper()
	o, err := serviceorder.NewServiceOrder(
		serviceorder.PaintFull, "full repaint, candy red", 300, serviceorder.Pix, 12345, assigneeID(t))
	require.NoError(t, err)
	return o
}

func TestNewServiceOrder(t *testing.T) {
	t.Run("starts pending with no timestamps", func(t *testing.T) {
		o := newOrder(t)

		assert.Equal(t, serviceorder.StatusPending, o.Status())
		assert.Zero(t, o.ID())
		assert.Nil(t, o.StartedAt())
		assert.Nil(t, o.CompletedAt())
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		_, err := serviceorder.NewServiceOrder(
			serviceorder.WashSimple, "courtesy wash", 0, serviceorder.Cash, 1, assigneeID(t))
		require.NoError(t, err)
	})

	t.Run("invalid fields", func(t *testing.T) {
		aid := assigneeID(t)

		_, err := serviceorder.NewServiceOrder(
			serviceorder.ServiceTypeUnknown, "desc", 10, serviceorder.Pix, 1, aid)
		require.Error(t, err)

		_, err = serviceorder.NewServiceOrder(
			serviceorder.PaintFull, "", 10, serviceorder.Pix, 1, aid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = serviceorder.NewServiceOrder(
			serviceorder.PaintFull, "desc", -1, serviceorder.Pix, 1, aid)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = serviceorder.NewServiceOrder(
			serviceorder.PaintFull, "desc", 10, serviceorder.PaymentMethodUnknown, 1, aid)
		require.Error(t, err)

		_, err = serviceorder.NewServiceOrder(
			serviceorder.PaintFull, "desc", 10, serviceorder.Pix, 0, aid)
		require.Error(t, err)

		var zero kernel.AccountID
		_, err = serviceorder.NewServiceOrder(
			serviceorder.PaintFull, "desc", 10, serviceorder.Pix, 1, zero)
		require.Error(t, err)
	})
}

func TestServiceOrder_AssignID(t *testing.T) {
	o := newOrder(t)

	require.NoError(t, o.AssignID(7))
	assert.Equal(t, uint64(7), o.ID())

	require.ErrorIs(t, o.AssignID(8), serviceorder.ErrOrderIDAlreadyAssigned)
	assert.Equal(t, uint64(7), o.ID())
}

func TestServiceOrder_ChangeStatus(t *testing.T) {
	t.Run("starting stamps the start time", func(t *testing.T) {
		o := newOrder(t)
		now := time.Now()

		require.NoError(t, o.ChangeStatus(serviceorder.StatusInProgress, now))
		assert.Equal(t, serviceorder.StatusInProgress, o.Status())
		require.NotNil(t, o.StartedAt())
		assert.Equal(t, now, *o.StartedAt())
		assert.Nil(t, o.CompletedAt())
	})

	t.Run("completing stamps the completion time", func(t *testing.T) {
		o := newOrder(t)
		started := time.Now()
		require.NoError(t, o.ChangeStatus(serviceorder.StatusInProgress, started))
		require.NoError(t, o.ChangeStatus(serviceorder.StatusAwaitingPayment, started.Add(time.Hour)))

		completed := started.Add(2 * time.Hour)
		require.NoError(t, o.ChangeStatus(serviceorder.StatusCompleted, completed))
		require.NotNil(t, o.CompletedAt())
		assert.Equal(t, completed, *o.CompletedAt())
		assert.Equal(t, started, *o.StartedAt())
	})

	t.Run("cancellation updates only the status", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ChangeStatus(serviceorder.StatusCanceled, time.Now()))
		assert.Equal(t, serviceorder.StatusCanceled, o.Status())
		assert.Nil(t, o.StartedAt())
		assert.Nil(t, o.CompletedAt())
	})

	t.Run("illegal transition leaves the order untouched", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(serviceorder.StatusInProgress, time.Now()))

		err := o.ChangeStatus(serviceorder.StatusPending, time.Now())
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, serviceorder.StatusInProgress, o.Status())
	})
}

func TestServiceOrder_CanBeDeleted(t *testing.T) {
	o := newOrder(t)
	assert.True(t, o.CanBeDeleted())

	require.NoError(t, o.ChangeStatus(serviceorder.StatusInProgress, time.Now()))
	assert.False(t, o.CanBeDeleted())

	require.NoError(t, o.ChangeStatus(serviceorder.StatusCanceled, time.Now()))
	assert.True(t, o.CanBeDeleted())
}

func TestServiceOrder_UpdateDetails(t *testing.T) {
	t.Run("editable while active", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.UpdateDetails(serviceorder.TouchUp, "tank touch-up", 120, serviceorder.Credit))
		assert.Equal(t, serviceorder.TouchUp, o.ServiceType())
		assert.Equal(t, float64(120), o.Price())
	})

	t.Run("immutable once terminal", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(serviceorder.StatusCanceled, time.Now()))

		err := o.UpdateDetails(serviceorder.TouchUp, "tank touch-up", 120, serviceorder.Credit)
		require.ErrorIs(t, err, serviceorder.ErrOrderIsFinal)
	})
}

func TestServiceOrder_SetPrice(t *testing.T) {
	o := newOrder(t)

	require.NoError(t, o.SetPrice(450))
	assert.Equal(t, float64(450), o.Price())

	require.Error(t, o.SetPrice(-1))

	require.NoError(t, o.ChangeStatus(serviceorder.StatusCanceled, time.Now()))
	require.ErrorIs(t, o.SetPrice(500), serviceorder.ErrOrderIsFinal)
}

func TestRestoreServiceOrder(t *testing.T) {
	started := time.Now().Add(-time.Hour)
	o, err := serviceorder.RestoreServiceOrder(
		42, serviceorder.WashComplete, "full wash", 80, serviceorder.StatusInProgress,
		serviceorder.Debit, 12345, assigneeID(t), &started, nil)

	require.NoError(t, err)
	assert.Equal(t, uint64(42), o.ID())
	assert.Equal(t, serviceorder.StatusInProgress, o.Status())
	require.NotNil(t, o.StartedAt())

	_, err = serviceorder.RestoreServiceOrder(
		42, serviceorder.WashComplete, "full wash", 80, serviceorder.StatusUnknown,
		serviceorder.Debit, 12345, assigneeID(t), nil, nil)
	require.Error(t, err)
}

func TestServiceOrder_Validate_ZeroValue(t *testing.T) {
	var o serviceorder.ServiceOrder
	require.ErrorIs(t, o.Validate(), serviceorder.ErrOrderIsNotConstructed)
}
