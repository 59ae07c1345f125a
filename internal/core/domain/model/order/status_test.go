package order_test

import (
	"testing"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   order.Status
		expected string
	}{
		{order.Pending, "PENDING"},
		{order.Confirmed, "CONFIRMED"},
		{order.Preparing, "PREPARING"},
		{order.Shipped, "SHIPPED"},
		{order.Delivered, "DELIVERED"},
		{order.Cancelled, "CANCELLED"},
		{order.Unknown, "UNKNOWN"},
		{order.Status(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every persisted name", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Preparing,
			order.Shipped, order.Delivered, order.Cancelled,
		} {
			parsed, err := order.StatusFromString(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should fail on unknown name", func(t *testing.T) {
		_, err := order.StatusFromString("SLEEPING")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should be case sensitive", func(t *testing.T) {
		_, err := order.StatusFromString("pending")

		require.Error(t, err)
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should pass for valid statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Preparing,
			order.Shipped, order.Delivered, order.Cancelled,
		} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("should fail for unknown and out of range values", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_CanBeCancelled(t *testing.T) {
	assert.True(t, order.Pending.CanBeCancelled())
	assert.True(t, order.Confirmed.CanBeCancelled())
	assert.False(t, order.Preparing.CanBeCancelled())
	assert.False(t, order.Shipped.CanBeCancelled())
	assert.False(t, order.Delivered.CanBeCancelled())
	assert.False(t, order.Cancelled.CanBeCancelled())
}

func TestStatus_CanBeShipped(t *testing.T) {
	assert.True(t, order.Preparing.CanBeShipped())
	assert.False(t, order.Pending.CanBeShipped())
	assert.False(t, order.Confirmed.CanBeShipped())
	assert.False(t, order.Shipped.CanBeShipped())
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("should walk the happy path to delivered", func(t *testing.T) {
		s := order.Pending

		s, err := s.Confirm()
		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, s)

		s, err = s.Prepare()
		require.NoError(t, err)
		assert.Equal(t, order.Preparing, s)

		s, err = s.Ship()
		require.NoError(t, err)
		assert.Equal(t, order.Shipped, s)

		s, err = s.Deliver()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, s)
	})

	t.Run("should cancel from pending and confirmed only", func(t *testing.T) {
		s, err := order.Pending.Cancel()
		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, s)

		s, err = order.Confirmed.Cancel()
		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, s)

		for _, from := range []order.Status{
			order.Preparing, order.Shipped, order.Delivered, order.Cancelled,
		} {
			_, err = from.Cancel()
			require.Error(t, err, "cancel from %s should fail", from)
			require.ErrorIs(t, err, errs.ErrDomainRuleViolated)
		}
	})

	t.Run("should reject confirm from every non-pending status", func(t *testing.T) {
		for _, from := range []order.Status{
			order.Confirmed, order.Preparing, order.Shipped,
			order.Delivered, order.Cancelled,
		} {
			_, err := from.Confirm()

			require.Error(t, err, "confirm from %s should fail", from)
			require.ErrorIs(t, err, errs.ErrDomainRuleViolated)
		}
	})

	t.Run("should reject ship unless preparing", func(t *testing.T) {
		for _, from := range []order.Status{
			order.Pending, order.Confirmed, order.Shipped,
			order.Delivered, order.Cancelled,
		} {
			_, err := from.Ship()

			require.Error(t, err, "ship from %s should fail", from)
			require.ErrorIs(t, err, errs.ErrDomainRuleViolated)
		}
	})

	t.Run("should reject deliver unless shipped", func(t *testing.T) {
		_, err := order.Preparing.Deliver()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrDomainRuleViolated)
	})

	t.Run("terminal statuses allow no transitions", func(t *testing.T) {
		for _, terminal := range []order.Status{order.Delivered, order.Cancelled} {
			_, err := terminal.Confirm()
			require.Error(t, err)
			_, err = terminal.Prepare()
			require.Error(t, err)
			_, err = terminal.Ship()
			require.Error(t, err)
			_, err = terminal.Cancel()
			require.Error(t, err)
		}
	})
}
