package ticker

import (
	"fmt"
	"strings"
	"time"
)

// Direction is the buy/sell indicator of a trade. It is stored for display
// and audit only: no valuation metric depends on it.
type Direction string

const (
	Buy  Direction = "BUY"
	Sell Direction = "SELL"
)

// ParseDirection parses a string into a Direction. It accepts the full word
// in any case and the single letters "b" and "s".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "B", "BUY":
		return Buy, nil
	case "S", "SELL":
		return Sell, nil
	default:
		return "", validationf("direction must be %q or %q, got %q", Buy, Sell, s)
	}
}

// Trade is the immutable record of one transaction: a number of shares
// exchanged at a price per share (in pennies) at a point in time. A Trade is
// owned by the stock it was recorded against and is never mutated or deleted;
// stale trades simply drop out of windowed queries.
type Trade struct {
	Time      time.Time
	Quantity  Quantity
	Direction Direction
	Price     Money
}

// NewTrade builds a validated Trade.
// The quantity must be a positive whole number of shares, the price per share
// must not be negative, and the direction must be Buy or Sell.
func NewTrade(at time.Time, quantity Quantity, direction Direction, price Money) (Trade, error) {
	if at.IsZero() {
		return Trade{}, validationf("trade timestamp is missing")
	}
	if !quantity.IsPositive() || !quantity.IsInteger() {
		return Trade{}, validationf("trade quantity must be a positive whole number of shares, got %s", quantity)
	}
	if price.IsNegative() {
		return Trade{}, validationf("trade price must not be negative, got %s", price)
	}
	if direction != Buy && direction != Sell {
		return Trade{}, validationf("direction must be %q or %q, got %q", Buy, Sell, direction)
	}
	return Trade{Time: at, Quantity: quantity, Direction: direction, Price: price}, nil
}

func (t Trade) String() string {
	return fmt.Sprintf("[%s] %s %s shares for %s apiece",
		t.Time.Format(TimestampFormat), t.Direction, t.Quantity, t.Price)
}

// MarshalJSON implements the json.Marshaler interface for Trade.
func (t Trade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("time", t.Time.Format(time.RFC3339))
	w.Append("quantity", t.Quantity)
	w.Append("direction", t.Direction)
	w.Append("price", t.Price)
	return w.MarshalJSON()
}
