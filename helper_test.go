package ticker

import (
	"testing"
	"time"
)

// tradingDay is the fixed reference time shared by the valuation tests.
var tradingDay = time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC)

// mustStock builds a stock from its spec, failing the test on invalid specs.
func mustStock(t *testing.T, spec StockSpec) *Stock {
	t.Helper()
	s, err := NewStock(spec)
	if err != nil {
		t.Fatalf("NewStock(%q) unexpected error: %v", spec.Symbol, err)
	}
	return s
}

// mustTrade builds a trade 'age' before the reference time, failing the test
// on invalid fields.
func mustTrade(t *testing.T, age time.Duration, quantity int, direction Direction, price int) Trade {
	t.Helper()
	tr, err := NewTrade(tradingDay.Add(-age), Q(quantity), direction, M(price))
	if err != nil {
		t.Fatalf("NewTrade() unexpected error: %v", err)
	}
	return tr
}

// commonStock returns a plain Common stock to trade against.
func commonStock(t *testing.T) *Stock {
	t.Helper()
	return mustStock(t, StockSpec{Symbol: "ALE", Type: Common, LastDividend: M(23), ParValue: M(100)})
}
