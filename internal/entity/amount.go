package entity

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxAmount is the largest value accepted for a single money operation.
// Exactly MaxAmount is still allowed.
var MaxAmount = decimal.NewFromInt(100000)

var (
	AmountNotNumberErr   = errors.New("please enter a valid number")
	AmountNotPositiveErr = errors.New("amount must be greater than zero")
	AmountTooLargeErr    = errors.New("amount must not exceed 100000.00")
)

// Normalize keeps money values at exactly two decimal places, rounding
// half-up.
func Normalize(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ParseBalance reads a stored money string. Unparseable values fall back
// to 0.00 instead of surfacing an error.
func ParseBalance(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return Normalize(d)
}

// ParseAmount validates raw user input for a deposit, withdrawal or
// transfer.
func ParseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, AmountNotNumberErr
	}
	if d.Sign() <= 0 {
		return decimal.Decimal{}, AmountNotPositiveErr
	}
	if d.GreaterThan(MaxAmount) {
		return decimal.Decimal{}, AmountTooLargeErr
	}
	return Normalize(d), nil
}
