package customer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

const (
	// nameMinLength is the minimum number of characters in a customer name.
	nameMinLength = 3
	// nameMaxLength is the maximum number of characters in a customer name.
	nameMaxLength = 100
)

// emailPattern accepts a simple "local-part@domain" shape. The uniqueness of
// an email is an application-layer concern, not enforced here.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@.+$`)

// nonDigits strips everything but digits from a phone number before counting.
var nonDigits = regexp.MustCompile(`[^0-9]`)

// Domain errors for customer operations.
var (
	// ErrCustomerIsNotConstructed is returned when using a Customer that was
	// not created through NewCustomer or RestoreCustomer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")
	// ErrIDAlreadyAssigned is returned when assigning an identifier to a
	// customer that already has one.
	ErrIDAlreadyAssigned = errs.NewDomainRuleViolatedError("customer id is already assigned")
	// ErrEmailAlreadyRegistered is returned when the email of a new or
	// updated customer is already taken by another customer. Raised by the
	// application layer's uniqueness check and by the storage layer's unique
	// index as a backstop for concurrent registrations.
	ErrEmailAlreadyRegistered = errs.NewDomainRuleViolatedError("email is already registered")
)

// Customer represents a registered person in the storefront.
// It is a self-validating entity: an instance in memory is either fully valid
// or cannot exist. Validation runs on every construction and on every update.
//
// Invariants:
//   - name is non-blank, between 3 and 100 characters
//   - email matches a simple "local-part@domain" pattern
//   - phone, when present, contains 10 or 11 digits after stripping
//     everything that is not a digit
//
// A Customer has no identifier until it is first persisted; the repository
// assigns one through AssignID. Equality is id-based once assigned.
type Customer struct {
	// id is nil until the customer is first persisted
	id *kernel.UUID
	// name is the customer's display name
	name string
	// email is used by the application layer as a uniqueness key
	email string
	// phone is optional contact information
	phone string

	guard guard.ConstructorGuard
}

// NewCustomer creates a new Customer without an identifier, validating every
// field. Returns the aggregated validation errors if any rule is violated.
func NewCustomer(name, email, phone string) (*Customer, error) {
	customer := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setName(name),
		customer.setEmail(email),
		customer.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// RestoreCustomer rebuilds a previously persisted Customer. The field values
// are trusted as already valid and are not re-validated; only the identifier
// is checked. Intended for the repository-facing boundary, never for use-case
// logic that mutates state.
func RestoreCustomer(id kernel.UUID, name, email, phone string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Customer{
		id:    &id,
		name:  name,
		email: email,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// UpdateInfo replaces name, email, and phone as a whole and re-validates.
// The candidate values are validated before anything is assigned, so a failed
// update leaves the customer unchanged.
func (c *Customer) UpdateInfo(name, email, phone string) error {
	if err := errors.Join(
		validateName(name),
		validateEmail(email),
		validatePhone(phone),
	); err != nil {
		return err
	}

	c.name = name
	c.email = email
	c.phone = phone
	return nil
}

// AssignID gives the customer its persistent identity. It may be called at
// most once, by the repository on first save.
func (c *Customer) AssignID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if c.id != nil {
		return ErrIDAlreadyAssigned
	}

	c.id = &id
	return nil
}

// IsEqual compares two customers by identity. Customers are equal when their
// assigned ids match; an instance with no id is only equal to itself.
func (c *Customer) IsEqual(other *Customer) bool {
	if other == nil {
		return false
	}
	if c == other {
		return true
	}
	if c.id == nil || other.id == nil {
		return false
	}
	return c.id.IsEqual(*other.id)
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's identifier, or nil if not yet persisted.
func (c *Customer) ID() *kernel.UUID {
	if c.id == nil {
		return nil
	}
	id := *c.id
	return &id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's email address.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the customer's phone number, possibly empty.
func (c *Customer) Phone() string {
	return c.phone
}

func (c *Customer) setName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	c.email = email
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if err := validatePhone(phone); err != nil {
		return err
	}
	c.phone = phone
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if length := utf8.RuneCountInString(name); length < nameMinLength || length > nameMaxLength {
		return errs.NewValueIsOutOfRangeError("name length", length, nameMinLength, nameMaxLength)
	}
	return nil
}

func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q does not match local-part@domain", email))
	}
	return nil
}

func validatePhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return nil
	}

	digits := nonDigits.ReplaceAllString(phone, "")
	if len(digits) < 10 || len(digits) > 11 {
		return errs.NewValueIsOutOfRangeError("phone digit count", len(digits), 10, 11)
	}
	return nil
}
