package order_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, productName string, quantity int, unitPrice string) *order.OrderItem {
	t.Helper()
	item, err := order.NewOrderItem(productName, quantity, mustMoney(t, unitPrice))
	require.NoError(t, err)
	return item
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending empty order", func(t *testing.T) {
		customerID := kernel.NewUUID()

		o, err := order.NewOrder(customerID)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Nil(t, o.ID())
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.Equal(t, order.Pending, o.Status())
		assert.Zero(t, o.ItemCount())
		assert.Equal(t, 1, o.Version())
	})

	t.Run("should capture creation time in UTC", func(t *testing.T) {
		before := time.Now().UTC()

		o, err := order.NewOrder(kernel.NewUUID())
		require.NoError(t, err)

		after := time.Now().UTC()
		assert.Equal(t, time.UTC, o.CreatedAt().Location())
		assert.False(t, o.CreatedAt().Before(before))
		assert.False(t, o.CreatedAt().After(after))
	})

	t.Run("should fail with zero value customer id", func(t *testing.T) {
		var customerID kernel.UUID

		o, err := order.NewOrder(customerID)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order trusting stored fields", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		items := []*order.OrderItem{mustItem(t, "keyboard", 2, "149.90")}

		o, err := order.RestoreOrder(id, customerID, createdAt, order.Confirmed, items, 3)

		require.NoError(t, err)
		require.NotNil(t, o.ID())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, 1, o.ItemCount())
		assert.Equal(t, 3, o.Version())
	})

	t.Run("should not alias the caller's item slice", func(t *testing.T) {
		items := []*order.OrderItem{mustItem(t, "keyboard", 1, "9.99")}

		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(),
			time.Now().UTC(), order.Confirmed, items, 1)
		require.NoError(t, err)

		items[0] = mustItem(t, "mouse", 1, "1.99")

		assert.Equal(t, "keyboard", o.Items()[0].ProductName())
	})

	t.Run("should fail with zero value ids", func(t *testing.T) {
		var zero kernel.UUID

		_, err := order.RestoreOrder(zero, kernel.NewUUID(), time.Now().UTC(), order.Pending, nil, 1)
		require.Error(t, err)

		_, err = order.RestoreOrder(kernel.NewUUID(), zero, time.Now().UTC(), order.Pending, nil, 1)
		require.Error(t, err)
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("should add items to pending order in insertion order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())

		require.NoError(t, o.AddItem(mustItem(t, "keyboard", 1, "149.90")))
		require.NoError(t, o.AddItem(mustItem(t, "mouse", 2, "39.90")))

		items := o.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "keyboard", items[0].ProductName())
		assert.Equal(t, "mouse", items[1].ProductName())
	})

	t.Run("should reject item on non-pending order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())
		require.NoError(t, o.AddItem(mustItem(t, "keyboard", 1, "149.90")))
		require.NoError(t, o.Confirm())

		err := o.AddItem(mustItem(t, "mouse", 1, "39.90"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrDomainRuleViolated)
		assert.Equal(t, 1, o.ItemCount())
	})

	t.Run("should reject nil item", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())

		err := o.AddItem(nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrDomainRuleViolated)
	})

	t.Run("should report status before missing item on cancelled order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())
		require.NoError(t, o.Cancel())

		err := o.AddItem(nil)

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotPending, err)
	})
}

func TestOrder_AddProduct(t *testing.T) {
	t.Run("should add a new line for an unseen product", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())

		item, err := o.AddProduct("keyboard", 2, mustMoney(t, "149.90"))

		require.NoError(t, err)
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, 1, o.ItemCount())
	})

	t.Run("should merge quantities for a repeated product", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())
		_, err := o.AddProduct("keyboard", 2, mustMoney(t, "149.90"))
		require.NoError(t, err)

		item, err := o.AddProduct("keyboard", 3, mustMoney(t, "129.90"))

		require.NoError(t, err)
		assert.Equal(t, 1, o.ItemCount())
		assert.Equal(t, 5, item.Quantity())
		// the original line's price wins on merge
		assert.True(t, item.UnitPrice().IsEqual(mustMoney(t, "149.90")))
	})

	t.Run("should reject merging into a non-pending order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())
		_, err := o.AddProduct("keyboard", 1, mustMoney(t, "149.90"))
		require.NoError(t, err)
		require.NoError(t, o.Confirm())

		_, err = o.AddProduct("keyboard", 1, mustMoney(t, "149.90"))

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotPending, err)
	})

	t.Run("should surface item validation errors", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())

		_, err := o.AddProduct("", 0, kernel.ZeroMoney())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Zero(t, o.ItemCount())
	})
}

func TestOrder_Confirm(t *testing.T) {
	t.Run("should confirm pending order with items", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())
		require.NoError(t, o.AddItem(mustItem(t, "keyboard", 1, "149.90")))

		require.NoError(t, o.Confirm())

		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("should reject confirming an empty order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())

		err := o.Confirm()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderHasNoItems, err)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("empty check runs before the status check", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())
		require.NoError(t, o.Cancel())

		err := o.Confirm()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderHasNoItems, err)
	})

	t.Run("should reject confirming twice", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())
		require.NoError(t, o.AddItem(mustItem(t, "keyboard", 1, "149.90")))
		require.NoError(t, o.Confirm())

		err := o.Confirm()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrDomainRuleViolated)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel pending order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should cancel confirmed order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())
		require.NoError(t, o.AddItem(mustItem(t, "keyboard", 1, "149.90")))
		require.NoError(t, o.Confirm())

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should reject cancelling a preparing order", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(),
			time.Now().UTC(), order.Preparing,
			[]*order.OrderItem{mustItem(t, "keyboard", 1, "149.90")}, 1)
		require.NoError(t, err)

		err = o.Cancel()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrDomainRuleViolated)
		assert.Equal(t, order.Preparing, o.Status())
	})
}

func TestOrder_Ship(t *testing.T) {
	t.Run("should ship preparing order", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(),
			time.Now().UTC(), order.Preparing,
			[]*order.OrderItem{mustItem(t, "keyboard", 1, "149.90")}, 1)
		require.NoError(t, err)

		require.NoError(t, o.Ship())

		assert.Equal(t, order.Shipped, o.Status())
	})

	t.Run("should reject shipping a confirmed order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())
		require.NoError(t, o.AddItem(mustItem(t, "keyboard", 1, "149.90")))
		require.NoError(t, o.Confirm())

		err := o.Ship()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrDomainRuleViolated)
	})
}

func TestOrder_Total(t *testing.T) {
	t.Run("empty order totals zero", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())

		assert.True(t, o.Total().IsEqual(kernel.ZeroMoney()))
	})

	t.Run("should sum item subtotals exactly", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())
		require.NoError(t, o.AddItem(mustItem(t, "keyboard", 3, "10.10")))
		require.NoError(t, o.AddItem(mustItem(t, "mouse", 2, "5.005")))

		assert.True(t, o.Total().IsEqual(mustMoney(t, "40.31")))
	})

	t.Run("total follows quantity changes on the lines", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())
		item := mustItem(t, "keyboard", 1, "10.00")
		require.NoError(t, o.AddItem(item))

		require.NoError(t, item.IncreaseQuantity(2))

		assert.True(t, o.Total().IsEqual(mustMoney(t, "30.00")))
	})
}

func TestOrder_Items(t *testing.T) {
	t.Run("returned slice is a copy", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())
		require.NoError(t, o.AddItem(mustItem(t, "keyboard", 1, "9.99")))

		items := o.Items()
		items[0] = mustItem(t, "mouse", 1, "1.99")

		assert.Equal(t, "keyboard", o.Items()[0].ProductName())
	})
}

func TestOrder_FindItemByProduct(t *testing.T) {
	o, _ := order.NewOrder(kernel.NewUUID())
	require.NoError(t, o.AddItem(mustItem(t, "keyboard", 1, "9.99")))

	t.Run("should find existing line", func(t *testing.T) {
		item := o.FindItemByProduct("keyboard")

		require.NotNil(t, item)
		assert.Equal(t, "keyboard", item.ProductName())
	})

	t.Run("should return nil for unknown product", func(t *testing.T) {
		assert.Nil(t, o.FindItemByProduct("mouse"))
	})
}

func TestOrder_AssignID(t *testing.T) {
	t.Run("should assign id once", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())
		id := kernel.NewUUID()

		require.NoError(t, o.AssignID(id))
		require.NotNil(t, o.ID())
		assert.True(t, o.ID().IsEqual(id))
	})

	t.Run("should fail on second assignment", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())
		require.NoError(t, o.AssignID(kernel.NewUUID()))

		err := o.AssignID(kernel.NewUUID())

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIDAlreadyAssigned, err)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("should be equal when ids match", func(t *testing.T) {
		o1, _ := order.RestoreOrder(id, kernel.NewUUID(), time.Now().UTC(), order.Pending, nil, 1)
		o2, _ := order.RestoreOrder(id, kernel.NewUUID(), time.Now().UTC(), order.Cancelled, nil, 5)

		assert.True(t, o1.IsEqual(o2))
	})

	t.Run("unpersisted orders are only equal to themselves", func(t *testing.T) {
		o1, _ := order.NewOrder(kernel.NewUUID())
		o2, _ := order.NewOrder(kernel.NewUUID())

		assert.True(t, o1.IsEqual(o1))
		assert.False(t, o1.IsEqual(o2))
		assert.False(t, o1.IsEqual(nil))
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for nil and zero value orders", func(t *testing.T) {
		var nilOrder *order.Order
		require.Error(t, nilOrder.Validate())
		assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())

		var zeroOrder order.Order
		require.Error(t, zeroOrder.Validate())
	})
}
