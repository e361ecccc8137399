package kernel

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when a zero Money value is validated.
var ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney constructor")

// moneyScale is the number of fractional digits kept for amounts.
const moneyScale = 2

// Money is a non-negative amount rounded to cents.
type Money struct {
	amount        decimal.Decimal
	isConstructed bool
}

// MaxAmount is the largest amount the store can hold (numeric(12,2)).
var MaxAmount = decimal.RequireFromString("9999999999.99")

// NewMoney validates amount with CheckAmount and rounds it to cents.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if err := CheckAmount("amount", amount); err != nil {
		return Money{}, err
	}
	return Money{amount: amount.Round(moneyScale), isConstructed: true}, nil
}

// CheckAmount rejects negative amounts and amounts above MaxAmount once rounded to cents.
func CheckAmount(name string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is negative", amount.String()))
	}
	if rounded := amount.Round(moneyScale); rounded.GreaterThan(MaxAmount) {
		return errs.NewValueIsOutOfRangeError(
			name, rounded.StringFixed(moneyScale), "0.00", MaxAmount.StringFixed(moneyScale))
	}
	return nil
}

// MustNewMoney is NewMoney for trusted constants; it panics on invalid input.
func MustNewMoney(amount decimal.Decimal) Money {
	m, err := NewMoney(amount)
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroMoney returns a constructed zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, isConstructed: true}
}

// Validate reports whether the value was built through a constructor.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}

// Decimal returns the underlying amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Multiply returns m * quantity.
func (m Money) Multiply(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))), isConstructed: true}
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), isConstructed: true}
}

// Equal compares amounts numerically, so 1.5 equals 1.50.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}
