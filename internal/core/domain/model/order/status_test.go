package order_test

import (
	"testing"

	"sendit/internal/core/domain/model/order"
	"sendit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", order.Pending.String())
	assert.Equal(t, "picked_up", order.PickedUp.String())
	assert.Equal(t, "in_transit", order.InTransit.String())
	assert.Equal(t, "out_for_delivery", order.OutForDelivery.String())
	assert.Equal(t, "delivered", order.Delivered.String())
	assert.Equal(t, "cancelled", order.Cancelled.String())
	assert.Equal(t, "unknown", order.Unknown.String())
	assert.Equal(t, "unknown", order.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses every valid status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.PickedUp, order.InTransit,
			order.OutForDelivery, order.Delivered, order.Cancelled,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.StatusFromString("teleported")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects empty string", func(t *testing.T) {
		_, err := order.StatusFromString("")

		require.Error(t, err)
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.PickedUp, order.InTransit,
			order.OutForDelivery, order.Delivered, order.Cancelled,
		} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("unknown fails", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(99).Validate())
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.InTransit.IsTerminal())
	assert.False(t, order.OutForDelivery.IsTerminal())
}

func TestAllowAnyTransition(t *testing.T) {
	t.Run("permits backward movement", func(t *testing.T) {
		require.NoError(t, order.AllowAnyTransition(order.Delivered, order.Pending))
	})

	t.Run("permits leaving terminal states", func(t *testing.T) {
		require.NoError(t, order.AllowAnyTransition(order.Cancelled, order.InTransit))
	})

	t.Run("rejects invalid target status", func(t *testing.T) {
		require.Error(t, order.AllowAnyTransition(order.Pending, order.Unknown))
		require.Error(t, order.AllowAnyTransition(order.Pending, order.Status(99)))
	})
}

func TestRejectTerminalTransition(t *testing.T) {
	t.Run("permits forward movement", func(t *testing.T) {
		require.NoError(t, order.RejectTerminalTransition(order.Pending, order.PickedUp))
		require.NoError(t, order.RejectTerminalTransition(order.OutForDelivery, order.Delivered))
	})

	t.Run("rejects leaving delivered", func(t *testing.T) {
		err := order.RejectTerminalTransition(order.Delivered, order.InTransit)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("rejects leaving cancelled", func(t *testing.T) {
		err := order.RejectTerminalTransition(order.Cancelled, order.Pending)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("rejects invalid target status", func(t *testing.T) {
		require.Error(t, order.RejectTerminalTransition(order.Pending, order.Unknown))
	})
}
