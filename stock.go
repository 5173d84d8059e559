package ticker

import (
	"fmt"
	"iter"
	"time"

	"github.com/shopspring/decimal"
)

// StockType distinguishes the two dividend formulas.
type StockType string

const (
	Common    StockType = "Common"
	Preferred StockType = "Preferred"
)

// ParseStockType parses a string into a StockType.
func ParseStockType(s string) (StockType, error) {
	switch s {
	case string(Common):
		return Common, nil
	case string(Preferred):
		return Preferred, nil
	default:
		return "", validationf("stock type must be %q or %q, got %q", Common, Preferred, s)
	}
}

// RecentWindow is the lookback applied to every windowed query: a trade is
// "recent" as of a reference time when it is at most fifteen minutes old,
// boundary included.
const RecentWindow = 15 * time.Minute

// StockSpec is the explicit configuration of one stock. Amounts are in
// pennies; the fixed dividend is a ratio in [0, 1] and is only meaningful
// for Preferred stocks.
type StockSpec struct {
	Symbol        string
	Type          StockType
	LastDividend  Money
	FixedDividend decimal.Decimal
	ParValue      Money
}

// Stock holds the data of a single stock symbol: its dividend figures and the
// append-only ledger of trades recorded against it. Trades are kept in
// recording order, which is not necessarily timestamp order.
//
// All valuation methods are pure functions of the ledger and the reference
// time: nothing is cached, and the same call may return different results as
// the reference time advances.
type Stock struct {
	symbol        string
	stype         StockType
	lastDividend  Money
	fixedDividend decimal.Decimal
	parValue      Money
	trades        []Trade
}

// NewStock builds a validated Stock from its spec, with an empty ledger.
func NewStock(spec StockSpec) (*Stock, error) {
	if spec.Symbol == "" {
		return nil, validationf("stock symbol is missing")
	}
	if _, err := ParseStockType(string(spec.Type)); err != nil {
		return nil, fmt.Errorf("invalid stock %q: %w", spec.Symbol, err)
	}
	if spec.LastDividend.IsNegative() {
		return nil, validationf("stock %q last dividend must not be negative, got %s", spec.Symbol, spec.LastDividend)
	}
	if spec.FixedDividend.IsNegative() || spec.FixedDividend.GreaterThan(decimal.NewFromInt(1)) {
		return nil, validationf("stock %q fixed dividend must be a ratio in [0, 1], got %s", spec.Symbol, spec.FixedDividend)
	}
	if !spec.ParValue.IsPositive() {
		return nil, validationf("stock %q par value must be positive, got %s", spec.Symbol, spec.ParValue)
	}
	return &Stock{
		symbol:        spec.Symbol,
		stype:         spec.Type,
		lastDividend:  spec.LastDividend,
		fixedDividend: spec.FixedDividend,
		parValue:      spec.ParValue,
	}, nil
}

func (s *Stock) Symbol() string                 { return s.symbol }
func (s *Stock) Type() StockType                { return s.stype }
func (s *Stock) LastDividend() Money            { return s.lastDividend }
func (s *Stock) FixedDividend() decimal.Decimal { return s.fixedDividend }
func (s *Stock) ParValue() Money                { return s.parValue }

// RecordTrade appends a trade to the ledger. The ledger only ever grows;
// there is no upper bound on its size.
func (s *Stock) RecordTrade(t Trade) {
	s.trades = append(s.trades, t)
}

// RecentTrades returns an iterator over the trades whose timestamp falls
// within the recent window ending at asOf, lower bound included. The
// iterator preserves the ledger's recording order, does not mutate it, and
// can be ranged over repeatedly.
func (s *Stock) RecentTrades(asOf time.Time) iter.Seq[Trade] {
	threshold := asOf.Add(-RecentWindow)
	return func(yield func(Trade) bool) {
		for _, t := range s.trades {
			if t.Time.Before(threshold) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// HasRecentTrades reports whether the recent window ending at asOf contains
// at least one trade. The presentation layer uses it to skip the metric
// computations entirely when there is no data to value.
func (s *Stock) HasRecentTrades(asOf time.Time) bool {
	for range s.RecentTrades(asOf) {
		return true
	}
	return false
}

// Price computes the volume-weighted average price over the recent window
// ending at asOf: sum(quantity*price) / sum(quantity).
//
// When the total notional is zero — the window is empty, or every matched
// trade has a zero price — Price returns zero instead of dividing. This is
// an intentional floor, not an error: it sidesteps the division by zero at
// the cost of masking a legitimate zero-notional window.
func (s *Stock) Price(asOf time.Time) Money {
	var totalQuantity Quantity
	var totalNotional Money
	for t := range s.RecentTrades(asOf) {
		totalQuantity = totalQuantity.Add(t.Quantity)
		totalNotional = totalNotional.Add(t.Price.Mul(t.Quantity))
	}
	if totalNotional.IsZero() {
		return Money{}
	}
	// totalQuantity cannot be zero here: trades carry positive quantities,
	// so a nonzero notional implies a nonzero quantity.
	return totalNotional.Div(totalQuantity)
}

// DividendYield computes the dividend yield as of the reference time.
// Common stocks yield lastDividend/price, preferred stocks yield
// (fixedDividend*parValue)/price.
//
// A zero price makes the yield undefined and returns a DomainError; callers
// that display metrics are expected to skip stocks with an empty recent
// window before ever getting here.
func (s *Stock) DividendYield(asOf time.Time) (decimal.Decimal, error) {
	price := s.Price(asOf)
	if price.IsZero() {
		return decimal.Decimal{}, domainf("dividend yield of %q is undefined: price is zero as of %s", s.symbol, asOf.Format(TimestampFormat))
	}
	switch s.stype {
	case Common:
		return s.lastDividend.DivPrice(price), nil
	case Preferred:
		return s.fixedDividend.Mul(s.parValue.Pennies()).Div(price.Pennies()), nil
	default:
		// The constructor rejects any other type; fail loudly if a Stock was
		// built some other way.
		return decimal.Decimal{}, domainf("stock %q has unknown type %q", s.symbol, s.stype)
	}
}

// PERatio computes the P/E ratio, defined here as dividendYield/price.
// Like DividendYield it returns a DomainError when the price is zero; a zero
// yield is a valid input and simply produces a zero ratio.
func (s *Stock) PERatio(asOf time.Time) (decimal.Decimal, error) {
	price := s.Price(asOf)
	if price.IsZero() {
		return decimal.Decimal{}, domainf("P/E ratio of %q is undefined: price is zero as of %s", s.symbol, asOf.Format(TimestampFormat))
	}
	yield, err := s.DividendYield(asOf)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return yield.Div(price.Pennies()), nil
}
