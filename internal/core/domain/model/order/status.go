package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions and is the single
// source of truth for which transitions an Order may perform.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Shipped ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Pending is the sole initial state; Delivered and Cancelled are terminal.
// Transitions are monotonic: no transition ever returns to a state that was
// already left.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every order. Items may only be
	// added while the order is pending.
	Pending

	// Confirmed indicates the order was confirmed with at least one item.
	// The item list is frozen from this point on.
	Confirmed

	// Preparing indicates the order is being prepared for shipment.
	Preparing

	// Shipped indicates the order left for delivery.
	Shipped

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before preparation.
	// Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string
// representations, including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Preparing: "PREPARING",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns only valid Status values, to support
// validation and parsing of persisted statuses.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Preparing: "PREPARING",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// StatusFromString parses the persisted text form of a status.
// Returns an error for anything outside the closed enumeration.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is part of the closed enumeration.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, "UNKNOWN" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// CanBeCancelled reports whether an order in this status may still be
// cancelled. Only Pending and Confirmed orders can.
func (s Status) CanBeCancelled() bool {
	return s == Pending || s == Confirmed
}

// CanBeShipped reports whether an order in this status may be shipped.
// Only Preparing orders can.
func (s Status) CanBeShipped() bool {
	return s == Preparing
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return 0, errs.NewDomainRuleViolatedErrorWithCause(
			"only pending orders can be confirmed",
			fmt.Errorf("status is %s", s),
		)
	}

	return Confirmed, nil
}

// Prepare transitions the status to Preparing.
//
// Valid transitions:
//   - Confirmed -> Preparing
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Prepare() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewDomainRuleViolatedErrorWithCause(
			"only confirmed orders can be prepared",
			fmt.Errorf("status is %s", s),
		)
	}

	return Preparing, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Preparing -> Shipped
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Ship() (Status, error) {
	if !s.CanBeShipped() {
		return 0, errs.NewDomainRuleViolatedErrorWithCause(
			"order cannot be shipped in its current status",
			fmt.Errorf("status is %s", s),
		)
	}

	return Shipped, nil
}

// Deliver transitions the status to Delivered, the terminal success state.
//
// Valid transitions:
//   - Shipped -> Delivered
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return 0, errs.NewDomainRuleViolatedErrorWithCause(
			"only shipped orders can be delivered",
			fmt.Errorf("status is %s", s),
		)
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Confirmed -> Cancelled
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Cancel() (Status, error) {
	if !s.CanBeCancelled() {
		return 0, errs.NewDomainRuleViolatedErrorWithCause(
			"order cannot be cancelled in its current status",
			fmt.Errorf("status is %s", s),
		)
	}

	return Cancelled, nil
}
