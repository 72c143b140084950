package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidPrice is returned when price string isn't non-negative decimal number.
var ErrInvalidPrice = errors.New("invalid price")

var hundred = decimal.NewFromInt(100)

// ToMinorUnits converts decimal price string into integer minor units (cents).
// Value is rounded half away from zero, so "19.995" becomes 2000.
func ToMinorUnits(raw string) (int64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidPrice)
	}

	price, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}
	if price.IsNegative() {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidPrice, raw)
	}

	minor := price.Mul(hundred).Round(0)
	if !minor.IsInteger() || minor.GreaterThan(decimal.NewFromInt(maxMinorUnits)) {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidPrice, raw)
	}

	return minor.IntPart(), nil
}

// maxMinorUnits is max price fitting signed 32-bit integer column used by storefronts.
const maxMinorUnits = 1<<31 - 1
