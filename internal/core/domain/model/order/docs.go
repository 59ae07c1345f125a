// Package order provides the Order aggregate for the storefront domain.
//
// Order is the aggregate root; OrderItem instances are owned by their order
// and never referenced from outside the aggregate. Status is a state machine
// guarding every transition:
//
//	Pending -> Confirmed -> Preparing -> Shipped -> Delivered
//	Pending, Confirmed   -> Cancelled
//
// Items may only be added while the order is Pending; confirmation requires
// at least one item. The order total is derived from the items on every call
// using exact decimal arithmetic, it is never stored.
package order
