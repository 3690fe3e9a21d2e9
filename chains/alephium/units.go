package alephium

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimals is the number of atto-units in one ALPH, as a power of ten
const Decimals = 18

var (
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrTooPrecise     = errors.New("amount has more than 18 decimal places")
)

// ToAtto converts a decimal ALPH amount ("1.5") to an integer atto string
func ToAtto(alph string) (string, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(alph))
	if err != nil {
		return "", fmt.Errorf("invalid amount %q: %w", alph, err)
	}
	if amount.IsNegative() {
		return "", ErrNegativeAmount
	}

	atto := amount.Shift(Decimals)
	if !atto.IsInteger() {
		return "", ErrTooPrecise
	}

	return atto.String(), nil
}

// FromAtto converts an integer atto string to ALPH
func FromAtto(atto string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(atto))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid atto amount %q: %w", atto, err)
	}
	if !amount.IsInteger() {
		return decimal.Zero, fmt.Errorf("invalid atto amount %q: not an integer", atto)
	}

	return amount.Shift(-Decimals), nil
}

// FormatAtto renders an atto amount for display, e.g. "1.5 ALPH".
// Values that do not parse are shown raw.
func FormatAtto(atto string) string {
	amount, err := FromAtto(atto)
	if err != nil {
		return atto + " atto"
	}
	return amount.String() + " ALPH"
}
