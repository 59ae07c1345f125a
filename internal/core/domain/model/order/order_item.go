package order

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Domain errors for order item operations.
var (
	// ErrOrderItemIsNotConstructed is returned when using an OrderItem that
	// was not created through NewOrderItem or RestoreOrderItem.
	ErrOrderItemIsNotConstructed = errors.New(
		"OrderItem must be created via NewOrderItem or RestoreOrderItem constructor")
	// ErrItemIDAlreadyAssigned is returned when assigning an identifier to an
	// item that already has one.
	ErrItemIDAlreadyAssigned = errs.NewDomainRuleViolatedError("order item id is already assigned")
)

// OrderItem is a line within an Order: a product name, a positive quantity
// and the unit price captured at the moment the item was added. Items belong
// to exactly one order and are never shared between aggregates.
//
// Like the other entities, an OrderItem has no identifier until it is first
// persisted; the repository assigns one through AssignID.
type OrderItem struct {
	// id is nil until the owning order is first persisted
	id *kernel.UUID
	// productName describes what was bought
	productName string
	// quantity is always strictly positive
	quantity int
	// unitPrice is the price per unit, frozen at the time of adding
	unitPrice kernel.Money

	isConstructed bool
}

// NewOrderItem creates a line item, validating every field. The unit price
// must be strictly positive. Returns the aggregated validation errors if any
// rule is violated.
func NewOrderItem(productName string, quantity int, unitPrice kernel.Money) (*OrderItem, error) {
	item := &OrderItem{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreOrderItem rebuilds a previously persisted line item. The field
// values are trusted as already valid; only the identifier is checked.
func RestoreOrderItem(id kernel.UUID, productName string, quantity int, unitPrice kernel.Money) (*OrderItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &OrderItem{
		id:            &id,
		productName:   productName,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// Subtotal returns unitPrice multiplied by quantity, exactly.
func (i *OrderItem) Subtotal() kernel.Money {
	return i.unitPrice.MulInt(i.quantity)
}

// IncreaseQuantity grows the quantity by the given strictly positive amount.
// Used when the same product is added to an order twice.
func (i *OrderItem) IncreaseQuantity(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d is not strictly positive", amount),
		)
	}

	i.quantity += amount
	return nil
}

// AssignID gives the item its persistent identity. It may be called at most
// once, by the repository on first save of the owning order.
func (i *OrderItem) AssignID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if i.id != nil {
		return ErrItemIDAlreadyAssigned
	}

	i.id = &id
	return nil
}

// IsEqual compares two items by identity. Items are equal when their assigned
// ids match; an instance with no id is only equal to itself.
func (i *OrderItem) IsEqual(other *OrderItem) bool {
	if other == nil {
		return false
	}
	if i == other {
		return true
	}
	if i.id == nil || other.id == nil {
		return false
	}
	return i.id.IsEqual(*other.id)
}

// Validate ensures the OrderItem was created through a constructor.
func (i *OrderItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrOrderItemIsNotConstructed
	}
	return nil
}

// ID returns the item's identifier, or nil if not yet persisted.
func (i *OrderItem) ID() *kernel.UUID {
	if i.id == nil {
		return nil
	}
	id := *i.id
	return &id
}

// ProductName returns the product description of the line.
func (i *OrderItem) ProductName() string {
	return i.productName
}

// Quantity returns the number of units on the line.
func (i *OrderItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price captured when the item was added.
func (i *OrderItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i *OrderItem) setProductName(productName string) error {
	if strings.TrimSpace(productName) == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = productName
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not strictly positive", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *OrderItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("unitPrice", err)
	}
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%s is not strictly positive", unitPrice),
		)
	}
	i.unitPrice = unitPrice
	return nil
}
