package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// MaxScale is the number of fractional digits an amount may carry into the account.
	MaxScale = 2
	// MaxIntegerDigits bounds the whole part of an entered amount.
	MaxIntegerDigits = 15
)

// Money is an exact decimal amount. The zero value is 0.00.
type Money struct {
	amount decimal.Decimal
}

// Zero is 0.00.
var Zero = Money{}

// NewMoney wraps an existing decimal without checking its scale.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// Parse reads any decimal text ("12", "12.5", "-3.25", "1e2"). Scale is preserved
// so callers can decide what precision they accept.
func Parse(text string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidFormat, text)
	}
	return Money{amount: d}, nil
}

// ParseAmount is the input-boundary parser: plain decimal notation only (no
// exponent), at most MaxIntegerDigits before the point and MaxScale after it.
func ParseAmount(text string) (Money, error) {
	text = strings.TrimSpace(text)
	if strings.ContainsAny(text, "eE") {
		return Money{}, fmt.Errorf("%w: %q uses exponent notation", ErrInvalidFormat, text)
	}
	m, err := Parse(text)
	if err != nil {
		return Money{}, err
	}
	if m.Scale() > MaxScale {
		return Money{}, fmt.Errorf("%w: %q has %d, at most %d allowed",
			ErrTooManyDecimalPlaces, text, m.Scale(), MaxScale)
	}
	if digits := m.integerDigits(); digits > MaxIntegerDigits {
		return Money{}, fmt.Errorf("%w: %q has %d integer digits, at most %d allowed",
			ErrInvalidFormat, text, digits, MaxIntegerDigits)
	}
	return m, nil
}

// MustParse panics on malformed input. Meant for constants and tests.
func MustParse(text string) Money {
	m, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return m
}

// Add, Sub and Neg are exact; the result keeps the larger scale of the operands.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg()}
}

// Cmp compares by value, so 1.5 and 1.50 are equal.
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Scale returns the count of fractional digits as written: "1.50" is 2, "7" is 0.
func (m Money) Scale() int {
	if exp := int(m.amount.Exponent()); exp < 0 {
		return -exp
	}
	return 0
}

func (m Money) integerDigits() int {
	whole := m.amount.Abs().Truncate(0)
	if whole.IsZero() {
		return 0
	}
	return len(whole.Coefficient().String()) + int(whole.Exponent())
}

// Decimal exposes the underlying value, e.g. for journal events.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String is the canonical two-digit rendering, e.g. "100.00" or "-30.00".
func (m Money) String() string {
	return m.amount.StringFixed(MaxScale)
}
