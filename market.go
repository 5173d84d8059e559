package ticker

import (
	"iter"
	"math"
	"time"
)

// Market holds the fixed universe of stocks traded on the exchange.
//
// Stocks are kept in registration order for display, with a map index for
// lookup. Symbols are unique; no stock is ever removed during a session.
// Navigation is strictly top-down (Market to Stock to Trade): no entity
// holds a back-reference to its owner.
type Market struct {
	stocks  []*Stock
	symbols map[string]*Stock
}

// NewMarket creates an empty market.
func NewMarket() *Market {
	return &Market{symbols: make(map[string]*Stock)}
}

// Add constructs a stock from its spec and registers it.
// Registering a symbol twice is a ValidationError.
func (m *Market) Add(spec StockSpec) (*Stock, error) {
	if _, exists := m.symbols[spec.Symbol]; exists {
		return nil, validationf("stock symbol %q is already registered", spec.Symbol)
	}
	s, err := NewStock(spec)
	if err != nil {
		return nil, err
	}
	m.stocks = append(m.stocks, s)
	m.symbols[s.symbol] = s
	return s, nil
}

// Get returns the stock registered under symbol, or a ValidationError
// naming the unknown symbol.
func (m *Market) Get(symbol string) (*Stock, error) {
	s, ok := m.symbols[symbol]
	if !ok {
		return nil, validationf("stock symbol %q is not registered", symbol)
	}
	return s, nil
}

// Len returns the number of registered stocks.
func (m *Market) Len() int { return len(m.stocks) }

// Stocks returns an iterator over all stocks in registration order.
func (m *Market) Stocks() iter.Seq[*Stock] {
	return func(yield func(*Stock) bool) {
		for _, s := range m.stocks {
			if !yield(s) {
				return
			}
		}
	}
}

// Symbols returns the registered symbols in registration order.
func (m *Market) Symbols() []string {
	symbols := make([]string, 0, len(m.stocks))
	for _, s := range m.stocks {
		symbols = append(symbols, s.symbol)
	}
	return symbols
}

// ShareIndex computes the GBCE All Share Index as of the reference time:
// the geometric mean of every stock's price, (p1*p2*...*pn)^(1/n).
//
// An empty market has no index and returns a DomainError. A single stock
// with a zero price (typically one with no recent trades) collapses the
// whole product, so the index silently reports zero; that is the inherited
// behavior of the original formula and is kept on purpose.
func (m *Market) ShareIndex(asOf time.Time) (Money, error) {
	n := len(m.stocks)
	if n == 0 {
		return Money{}, domainf("share index is undefined on an empty market")
	}
	product := 1.0
	for _, s := range m.stocks {
		product *= s.Price(asOf).Pennies().InexactFloat64()
	}
	return M(math.Pow(product, 1/float64(n))), nil
}
