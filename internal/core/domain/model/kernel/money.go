package kernel

import (
	"fmt"
	"math"
	"math/big"

	"customs/internal/pkg/errs"
)

// maxMoneyCents bounds amounts so that fee arithmetic never overflows int64.
const maxMoneyCents int64 = 1_000_000_000_000

// Money is a non-negative amount in the importer's single settlement currency,
// held in integer cents. Multi-currency is not modeled.
//
// The zero value is a valid amount of 0.00.
type Money struct {
	cents int64
}

// Zero returns 0.00.
func Zero() Money {
	return Money{}
}

// MoneyFromCents builds an amount from integer cents.
//
// Returns a *errs.ValueIsOutOfRangeError if cents is negative or above the
// supported maximum.
func MoneyFromCents(cents int64) (Money, error) {
	if cents < 0 || cents > maxMoneyCents {
		return Money{}, errs.NewValueIsOutOfRangeError("money", cents, 0, maxMoneyCents)
	}
	return Money{cents: cents}, nil
}

// MoneyFromFloat builds an amount from a decimal value, rounding half away
// from zero to the nearest cent. NaN and infinities are rejected.
//
// Example:
//
//	declared, err := kernel.MoneyFromFloat(20)   // 20.00
//	fees, err := kernel.MoneyFromFloat(4.859)    // 4.86
func MoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%v is not a finite amount", amount))
	}
	return MoneyFromCents(int64(math.Round(amount * 100)))
}

// MoneyFromRat rounds an exact rational amount (in cents) half-up to whole cents.
// Used by the fee calculator to round once after exact proration.
func MoneyFromRat(cents *big.Rat) (Money, error) {
	if cents.Sign() < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("money", cents.FloatString(2), 0, maxMoneyCents)
	}

	// floor(x + 1/2) for non-negative x
	half := new(big.Rat).Add(cents, big.NewRat(1, 2))
	rounded := new(big.Int).Quo(half.Num(), half.Denom())
	if !rounded.IsInt64() {
		return Money{}, errs.NewValueIsOutOfRangeError("money", rounded.String(), 0, maxMoneyCents)
	}
	return MoneyFromCents(rounded.Int64())
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount as a decimal value, for transport only.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// Rat returns the amount in cents as an exact rational.
func (m Money) Rat() *big.Rat {
	return new(big.Rat).SetInt64(m.cents)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Times returns m multiplied by a non-negative count.
func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

// IsZero reports whether the amount is 0.00.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual reports whether both amounts are the same number of cents.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimals, e.g. "4.86".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
