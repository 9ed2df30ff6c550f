package money

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value in minor units (cents). Arithmetic on cents is
// exact, so breakdowns like fee + remainder always sum back to the total.
// Firestore stores the raw int64; JSON renders a two-decimal number.
type Amount int64

var hundred = decimal.NewFromInt(100)

func FromDecimal(d decimal.Decimal) Amount {
	return Amount(d.Mul(hundred).Round(0).IntPart())
}

// Parse reads a decimal string like "100.00". Values with more than two
// fractional digits are rejected rather than silently rounded.
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.Exponent() < -2 {
		return 0, fmt.Errorf("amount %q has sub-cent precision", s)
	}
	return FromDecimal(d), nil
}

func FromFloat(f float64) Amount {
	return FromDecimal(decimal.NewFromFloat(f))
}

func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -2)
}

func (a Amount) Cents() int64 {
	return int64(a)
}

// MulInt scales by a unit count (order quantity).
func (a Amount) MulInt(n int64) Amount {
	return Amount(int64(a) * n)
}

// Percent returns the given fraction of a, rounded half up to the nearest
// cent. Percent(rate) + (a - Percent(rate)) == a by construction.
func (a Amount) Percent(rate decimal.Decimal) Amount {
	return FromDecimal(a.Decimal().Mul(rate).Round(2))
}

func (a Amount) IsPositive() bool {
	return a > 0
}

func (a Amount) String() string {
	return a.Decimal().StringFixed(2)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
