package kernel

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when a Money value was not created
// through NewMoney, MoneyFromString, or ZeroMoney.
var ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney, MoneyFromString, or ZeroMoney")

// Money is a value object representing a monetary amount with exact decimal
// arithmetic. It wraps shopspring/decimal so that subtotal and total
// computations never accumulate binary floating-point rounding error.
//
// Money may be zero (the identity for summation) but never negative.
// The zero value of the struct is invalid; use one of the constructors.
//
// Money is immutable: arithmetic methods return new values.
type Money struct {
	amount decimal.Decimal

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount.
// Returns a validation error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromString parses a decimal string such as "9.99" into a Money value.
// Returns a validation error if the string is not a valid decimal or the
// amount is negative.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a constructed zero amount, the identity for Add.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// MulInt returns the amount multiplied by an integer factor,
// exact to the decimal representation.
func (m Money) MulInt(factor int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(factor))),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual compares two amounts numerically; 10.1 equals 10.10.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}

// Validate checks that the Money value was properly constructed.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
