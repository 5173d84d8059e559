package ticker

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the currency of the whole exchange. Every amount in the ticker
// (dividends, par values, trade prices, the index) is denominated in its
// minor unit, the penny.
const Currency = "GBP"

// Money represents a monetary value in pennies.
type Money struct {
	value decimal.Decimal // in minor units (pennies)
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// currency returns the exchange currency, never nil.
func currency() *money.Currency { return money.New(0, Currency).Currency() }

// String returns the bare penny amount, e.g. "102.5".
func (m Money) String() string { return m.value.String() }

// StringFixed returns the penny amount with a fixed number of decimals.
func (m Money) StringFixed(places int32) string { return m.value.StringFixed(places) }

// Display formats the amount in major units with the currency symbol,
// e.g. 150 pennies as "£1.50".
func (m Money) Display() string {
	cur := currency()
	// value is already in minor units, rounded to the nearest penny.
	return cur.Formatter().Format(m.value.Round(0).IntPart())
}

func (m Money) Pennies() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value)} }
func (m Money) Mul(q Quantity) Money     { return Money{value: m.value.Mul(q.value)} }
func (m Money) Div(q Quantity) Money     { return Money{value: m.value.Div(q.value)} }

// DivPrice divides two amounts, yielding a dimensionless ratio.
// The divisor must not be zero.
func (m Money) DivPrice(n Money) decimal.Decimal { return m.value.Div(n.value) }

// MarshalJSON implements the json.Marshaler interface for Money.
// The amount is persisted as a bare number of pennies.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

func (m *Money) UnmarshalJSON(decimalBytes []byte) error {
	return m.value.UnmarshalJSON(decimalBytes)
}
