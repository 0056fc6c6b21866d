package insurance

import "github.com/shopspring/decimal"

// Money is a decimal amount that travels as a bare JSON number. The embedded
// decimal keeps arithmetic exact; only the encoding differs from decimal's
// default quoted form.
type Money struct {
	decimal.Decimal
}

// NewMoney builds a Money from a decimal string such as "30" or "12.50".
func NewMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{Decimal: d}, nil
}

// MustMoney is NewMoney for constants and tests.
func MustMoney(s string) Money {
	m, err := NewMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// MarshalJSON encodes the amount as a JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{Decimal: m.Decimal.Add(other.Decimal)}
}
