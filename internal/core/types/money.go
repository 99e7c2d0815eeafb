// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount in Rial with full precision.
// Uses decimal.Decimal to avoid floating-point errors in cost allocation
// and profit arithmetic.
type Money = decimal.Decimal

// NewMoney creates a Money value from an integer Rial amount.
func NewMoney(v int64) Money {
	return decimal.NewFromInt(v)
}

// NewMoneyFromFloat creates a Money value from a float.
// WARNING: Use NewMoneyFromString for precise values.
func NewMoneyFromFloat(f float64) Money {
	return decimal.NewFromFloat(f)
}

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// Percent returns part/whole*100, or zero when whole is zero.
// Used for profit margins where revenue may legitimately be zero.
func Percent(part, whole Money) Money {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100))
}
