package ticker

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockRow is the point-in-time view of one stock in a market report.
//
// When the stock's recent window is empty, HasTrades is false and the three
// metric fields are zero values that were never computed: the report is the
// layer that short-circuits "empty window" before the metric functions can
// fail on a zero price.
type StockRow struct {
	Symbol        string
	Type          StockType
	LastDividend  Money
	FixedDividend Percent // meaningful for Preferred stocks only
	ParValue      Money
	HasTrades     bool
	DividendYield decimal.Decimal
	PERatio       decimal.Decimal
	Price         Money
}

// MarketReport is the full market view as of a single instant: one row per
// stock in registration order, plus the GBCE All Share Index.
type MarketReport struct {
	AsOf       time.Time
	Rows       []StockRow
	ShareIndex Money
}

// NewMarketReport values every stock of the market as of the given instant.
//
// Stocks with no recent trades get a placeholder row (HasTrades=false)
// instead of metric values. Metric errors on stocks that do have trades
// (a zero-price window) and the empty-market index error are propagated.
func NewMarketReport(m *Market, asOf time.Time) (*MarketReport, error) {
	report := &MarketReport{AsOf: asOf}
	for s := range m.Stocks() {
		row := StockRow{
			Symbol:       s.Symbol(),
			Type:         s.Type(),
			LastDividend: s.LastDividend(),
			ParValue:     s.ParValue(),
		}
		if s.Type() == Preferred {
			fd, _ := s.FixedDividend().Mul(decimal.NewFromInt(100)).Float64()
			row.FixedDividend = Percent(fd)
		}
		if s.HasRecentTrades(asOf) {
			yield, err := s.DividendYield(asOf)
			if err != nil {
				return nil, err
			}
			pe, err := s.PERatio(asOf)
			if err != nil {
				return nil, err
			}
			row.HasTrades = true
			row.DividendYield = yield
			row.PERatio = pe
			row.Price = s.Price(asOf)
		}
		report.Rows = append(report.Rows, row)
	}

	index, err := m.ShareIndex(asOf)
	if err != nil {
		return nil, err
	}
	report.ShareIndex = index
	return report, nil
}
