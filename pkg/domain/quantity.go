package domain

import (
	"strings"

	"github.com/shopspring/decimal"

	dErrors "zoo/pkg/domain-errors"
)

// Quantities (kg amounts, weights, ledger deltas) are exact decimals.
// Binary floating point is never used on the write path.

// maxQuantityScale bounds the fractional digits accepted from clients.
// Ledger columns are NUMERIC(12,3); weights are NUMERIC(9,2).
const maxQuantityScale = 3

// Bounds checked before any arithmetic. Exponent-form input such as
// "1e999999999" would otherwise rescale to a billion-digit integer.
const (
	maxQuantityInputLen = 32
	maxQuantityExponent = 9
	minQuantityExponent = -18
)

// MaxQuantity is the largest magnitude a NUMERIC(12,3) column holds.
var MaxQuantity = decimal.RequireFromString("999999999.999")

// ParseQuantity parses a decimal quantity from external input.
func ParseQuantity(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, dErrors.New(dErrors.CodeValidation, "quantity is required")
	}
	if len(s) > maxQuantityInputLen {
		return decimal.Zero, dErrors.New(dErrors.CodeValidation, "quantity is out of range")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, dErrors.New(dErrors.CodeValidation, "quantity must be a decimal number")
	}
	if exp := d.Exponent(); exp > maxQuantityExponent || exp < minQuantityExponent {
		return decimal.Zero, dErrors.New(dErrors.CodeValidation, "quantity is out of range")
	}
	if d.Abs().GreaterThan(MaxQuantity) {
		return decimal.Zero, dErrors.New(dErrors.CodeValidation, "quantity is out of range")
	}
	if -d.Exponent() > maxQuantityScale && !d.Equal(d.Round(maxQuantityScale)) {
		return decimal.Zero, dErrors.New(dErrors.CodeValidation, "quantity has too many decimal places")
	}
	return d, nil
}

// ParsePositiveQuantity parses a quantity that must be strictly greater than zero.
func ParsePositiveQuantity(s string) (decimal.Decimal, error) {
	d, err := ParseQuantity(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, dErrors.New(dErrors.CodeValidation, "quantity must be positive")
	}
	return d, nil
}

// ParseNonNegativeQuantity parses a quantity that may be zero but not negative.
func ParseNonNegativeQuantity(s string) (decimal.Decimal, error) {
	d, err := ParseQuantity(s)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, dErrors.New(dErrors.CodeValidation, "quantity must not be negative")
	}
	return d, nil
}

// FormatKg renders a kg quantity with at least one fractional digit ("4.0").
func FormatKg(d decimal.Decimal) string {
	if d.Exponent() >= 0 || d.Equal(d.Truncate(0)) {
		return d.StringFixed(1)
	}
	return d.String()
}
