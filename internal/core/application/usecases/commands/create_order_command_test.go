package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	customerID := kernel.NewUUID()
	items := []commands.OrderItemSpec{
		{ProductName: "keyboard", Quantity: 1, UnitPrice: mustMoney(t, "149.90")},
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, items)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.CustomerID().IsEqual(customerID))
	require.Len(t, cmd.Items(), 1)
	assert.Equal(t, "keyboard", cmd.Items()[0].ProductName)
}

func TestNewCreateOrderCommand_EmptyItemsAllowed(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), nil)
	require.NoError(t, err)
	assert.Empty(t, cmd.Items())
}

func TestNewCreateOrderCommand_InvalidCustomerID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateOrderCommand_ItemsAreCopied(t *testing.T) {
	items := []commands.OrderItemSpec{
		{ProductName: "keyboard", Quantity: 1, UnitPrice: mustMoney(t, "149.90")},
	}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), items)
	require.NoError(t, err)

	items[0].ProductName = "mouse"

	assert.Equal(t, "keyboard", cmd.Items()[0].ProductName)
}
