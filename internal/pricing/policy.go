package pricing

import (
	"errors"
	"fmt"
)

// Policy decides what happens with records with invalid price.
type Policy string

const (
	// PolicyZero uses 0 as price of records with invalid price.
	PolicyZero Policy = "zero"
	// PolicyReject skips records with invalid price.
	PolicyReject Policy = "reject"
)

// ErrUnknownPolicy is returned when policy name is not known.
var ErrUnknownPolicy = errors.New("unknown invalid price policy")

// UnmarshalText parses policy name.
func (p *Policy) UnmarshalText(text []byte) error {
	switch policy := Policy(text); policy {
	case PolicyZero, PolicyReject:
		*p = policy
		return nil
	case "":
		*p = PolicyZero
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPolicy, string(text))
	}
}

// Resolve converts raw price according to policy.
// It returns converted price and flag telling if record should be kept.
// Conversion error is returned in both cases so caller can log it.
func (p Policy) Resolve(raw string) (price int64, keep bool, err error) {
	price, err = ToMinorUnits(raw)
	if err == nil {
		return price, true, nil
	}

	if p == PolicyReject {
		return 0, false, err
	}

	return 0, true, err
}
