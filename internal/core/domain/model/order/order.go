package order

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when using an Order that was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
	// ErrOrderIDAlreadyAssigned is returned when assigning an identifier to
	// an order that already has one.
	ErrOrderIDAlreadyAssigned = errs.NewDomainRuleViolatedError("order id is already assigned")
	// ErrOrderIsNotPending is returned on any attempt to change the item list
	// of an order that left the Pending status.
	ErrOrderIsNotPending = errs.NewDomainRuleViolatedError("cannot modify a non-pending order")
	// ErrOrderHasNoItems is returned when confirming an order with an empty
	// item list.
	ErrOrderHasNoItems = errs.NewDomainRuleViolatedError("order must have at least one item to be confirmed")
	// ErrItemIsRequired is returned when adding a nil item to an order.
	ErrItemIsRequired = errs.NewDomainRuleViolatedError("item is required")
)

// Order is the aggregate root for a customer purchase. It owns its line items
// and guards every mutation with the Status state machine: items may only be
// added while the order is Pending, and status transitions follow the machine
// defined on Status.
//
// The total is always derived from the items, never stored, so it cannot
// drift from the lines that make it up.
//
// The version field supports optimistic concurrency control at the storage
// layer; the domain itself never branches on it.
type Order struct {
	// id is nil until the order is first persisted
	id *kernel.UUID
	// customerID references the owning customer, always set
	customerID kernel.UUID
	// createdAt is the UTC creation instant, fixed at construction
	createdAt time.Time
	// status is the current position in the lifecycle state machine
	status Status
	// items are owned by this aggregate and never shared
	items []*OrderItem
	// version counts persisted revisions, starting at 1
	version int

	isConstructed bool
}

// NewOrder creates a new empty order for the given customer. The order starts
// in the Pending status with its creation time captured in UTC.
func NewOrder(customerID kernel.UUID) (*Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}

	return &Order{
		customerID:    customerID,
		createdAt:     time.Now().UTC(),
		status:        Pending,
		items:         make([]*OrderItem, 0),
		version:       1,
		isConstructed: true,
	}, nil
}

// RestoreOrder rebuilds a previously persisted order. The field values are
// trusted as already valid; only the identifiers are checked. The item slice
// is copied so the restored aggregate does not alias the caller's slice.
func RestoreOrder(id, customerID kernel.UUID, createdAt time.Time, status Status,
	items []*OrderItem, version int,
) (*Order, error) {
	if err := errors.Join(id.Validate(), customerID.Validate()); err != nil {
		return nil, err
	}

	restored := make([]*OrderItem, len(items))
	copy(restored, items)

	return &Order{
		id:            &id,
		customerID:    customerID,
		createdAt:     createdAt,
		status:        status,
		items:         restored,
		version:       version,
		isConstructed: true,
	}, nil
}

// AddItem appends a line item to a pending order. Orders that left the
// Pending status are immutable and reject the item.
func (o *Order) AddItem(item *OrderItem) error {
	if o.status != Pending {
		return ErrOrderIsNotPending
	}
	if item == nil {
		return ErrItemIsRequired
	}
	if err := item.Validate(); err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

// AddProduct adds a line for the given product, merging with an existing
// line when the order already carries that product. A merge grows the
// quantity and keeps the unit price of the original line. Like AddItem, only
// pending orders accept changes.
func (o *Order) AddProduct(productName string, quantity int, unitPrice kernel.Money) (*OrderItem, error) {
	if o.status != Pending {
		return nil, ErrOrderIsNotPending
	}

	if existing := o.FindItemByProduct(productName); existing != nil {
		if err := existing.IncreaseQuantity(quantity); err != nil {
			return nil, err
		}
		return existing, nil
	}

	item, err := NewOrderItem(productName, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	o.items = append(o.items, item)
	return item, nil
}

// Confirm moves the order from Pending to Confirmed. An order must contain at
// least one item to be confirmed; the emptiness check runs before the status
// transition, so confirming an empty cancelled order reports the missing
// items, not the status.
func (o *Order) Confirm() error {
	if len(o.items) == 0 {
		return ErrOrderHasNoItems
	}

	status, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = status
	return nil
}

// Cancel moves the order to the terminal Cancelled status. Only Pending and
// Confirmed orders can be cancelled; once preparation started the order has
// to run its course.
func (o *Order) Cancel() error {
	status, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = status
	return nil
}

// Ship moves the order from Preparing to Shipped.
func (o *Order) Ship() error {
	status, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = status
	return nil
}

// Total sums the subtotals of all items with exact decimal arithmetic.
// An order without items has a total of zero.
func (o *Order) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Items returns the line items in insertion order. The slice is a copy, so
// callers cannot change the aggregate's composition through it.
func (o *Order) Items() []*OrderItem {
	items := make([]*OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// ItemCount returns the number of lines on the order.
func (o *Order) ItemCount() int {
	return len(o.items)
}

// FindItemByProduct returns the line carrying the given product name, or nil
// if the order has no such line.
func (o *Order) FindItemByProduct(productName string) *OrderItem {
	for _, item := range o.items {
		if item.ProductName() == productName {
			return item
		}
	}
	return nil
}

// AssignID gives the order its persistent identity. It may be called at most
// once, by the repository on first save.
func (o *Order) AssignID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if o.id != nil {
		return ErrOrderIDAlreadyAssigned
	}

	o.id = &id
	return nil
}

// IsEqual compares two orders by identity. Orders are equal when their
// assigned ids match; an instance with no id is only equal to itself.
func (o *Order) IsEqual(other *Order) bool {
	if other == nil {
		return false
	}
	if o == other {
		return true
	}
	if o.id == nil || other.id == nil {
		return false
	}
	return o.id.IsEqual(*other.id)
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's identifier, or nil if not yet persisted.
func (o *Order) ID() *kernel.UUID {
	if o.id == nil {
		return nil
	}
	id := *o.id
	return &id
}

// CustomerID returns the identifier of the owning customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// CreatedAt returns the UTC creation instant of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Version returns the persisted revision counter used for optimistic
// concurrency control.
func (o *Order) Version() int {
	return o.version
}
