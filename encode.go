package ticker

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// This file contains the codecs at the process boundary: reading a stock
// universe from its configuration stream, and writing a market report as
// JSON. The universe file is read-only configuration; trades themselves are
// never persisted.

// DefaultUniverse returns the GBCE sample universe the exchange starts with
// when no universe file is given.
func DefaultUniverse() []StockSpec {
	return []StockSpec{
		{Symbol: "TEA", Type: Common, LastDividend: M(0), ParValue: M(100)},
		{Symbol: "POP", Type: Common, LastDividend: M(8), ParValue: M(100)},
		{Symbol: "ALE", Type: Common, LastDividend: M(23), ParValue: M(100)},
		{Symbol: "GIN", Type: Preferred, LastDividend: M(8), FixedDividend: decimal.New(2, -2), ParValue: M(100)},
		{Symbol: "JOE", Type: Common, LastDividend: M(13), ParValue: M(100)},
	}
}

// DecodeUniverse parses a stock universe from a JSONL stream, one stock per
// line. Amounts are in pennies, the fixed dividend is a ratio.
// filename is for error messages only.
func DecodeUniverse(filename string, r io.Reader) ([]StockSpec, error) {
	// to parse a line, we use a dedicated local struct with tag annotations.
	type jstock struct {
		Symbol        string          `json:"symbol"`
		Type          string          `json:"type"`
		LastDividend  decimal.Decimal `json:"lastDividend"`
		FixedDividend decimal.Decimal `json:"fixedDividend,omitempty"`
		ParValue      decimal.Decimal `json:"parValue"`
	}

	var specs []StockSpec
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		txt := scanner.Text()
		if strings.TrimSpace(txt) == "" {
			continue
		}

		var js jstock
		if err := json.Unmarshal([]byte(txt), &js); err != nil {
			return nil, fmt.Errorf("format error in %s:%d: not a correct json: %w", filename, line, err)
		}

		stype, err := ParseStockType(js.Type)
		if err != nil {
			return nil, fmt.Errorf("format error in %s:%d: %w", filename, line, err)
		}
		specs = append(specs, StockSpec{
			Symbol:        js.Symbol,
			Type:          stype,
			LastDividend:  M(js.LastDividend),
			FixedDividend: js.FixedDividend,
			ParValue:      M(js.ParValue),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}
	return specs, nil
}

// NewUniverse builds a market from a list of stock specs.
func NewUniverse(specs []StockSpec) (*Market, error) {
	m := NewMarket()
	for _, spec := range specs {
		if _, err := m.Add(spec); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MarshalJSON implements the json.Marshaler interface for StockRow.
func (r StockRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", r.Symbol)
	w.Append("type", r.Type)
	w.Append("lastDividend", r.LastDividend)
	if r.Type == Preferred {
		w.Append("fixedDividend", float64(r.FixedDividend)/100)
	}
	w.Append("parValue", r.ParValue)
	w.Append("hasTrades", r.HasTrades)
	if r.HasTrades {
		w.Append("dividendYield", r.DividendYield)
		w.Append("peRatio", r.PERatio)
		w.Append("price", r.Price)
	}
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for MarketReport.
func (r *MarketReport) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("asOf", r.AsOf.Format(time.RFC3339))
	rows := r.Rows
	if rows == nil {
		rows = []StockRow{}
	}
	w.Append("rows", rows)
	w.Append("shareIndex", r.ShareIndex)
	return w.MarshalJSON()
}

// EncodeMarketReport writes the report as a single JSON document with a
// stable field order.
func (r *MarketReport) EncodeMarketReport(w io.Writer) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal market report: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write market report: %w", err)
	}
	return nil
}
