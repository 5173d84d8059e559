package ticker

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewMarketReport(t *testing.T) {
	m, err := NewUniverse(DefaultUniverse())
	if err != nil {
		t.Fatal(err)
	}
	ale, _ := m.Get("ALE")
	ale.RecordTrade(mustTrade(t, time.Minute, 10, Buy, 100))
	gin, _ := m.Get("GIN")
	gin.RecordTrade(mustTrade(t, 2*time.Minute, 5, Sell, 100))

	report, err := NewMarketReport(m, tradingDay)
	if err != nil {
		t.Fatalf("NewMarketReport() unexpected error: %v", err)
	}
	if !report.AsOf.Equal(tradingDay) {
		t.Errorf("AsOf = %s, want %s", report.AsOf, tradingDay)
	}
	if len(report.Rows) != m.Len() {
		t.Fatalf("got %d rows, want %d", len(report.Rows), m.Len())
	}

	rows := make(map[string]StockRow)
	for _, row := range report.Rows {
		rows[row.Symbol] = row
	}

	// traded stocks carry their metrics
	aleRow := rows["ALE"]
	if !aleRow.HasTrades {
		t.Fatal("ALE row: HasTrades = false, want true")
	}
	if !aleRow.Price.Equal(M(100)) {
		t.Errorf("ALE price = %s, want 100", aleRow.Price)
	}
	if !aleRow.DividendYield.Equal(decimal.RequireFromString("0.23")) {
		t.Errorf("ALE dividend yield = %s, want 0.23", aleRow.DividendYield)
	}

	ginRow := rows["GIN"]
	if !ginRow.FixedDividend.Equal(Percent(2)) {
		t.Errorf("GIN fixed dividend = %s, want 2.00%%", ginRow.FixedDividend)
	}
	if !ginRow.DividendYield.Equal(decimal.RequireFromString("0.02")) {
		t.Errorf("GIN dividend yield = %s, want 0.02", ginRow.DividendYield)
	}

	// untraded stocks get a placeholder row, not an error
	teaRow := rows["TEA"]
	if teaRow.HasTrades {
		t.Error("TEA row: HasTrades = true, want false")
	}
	if !teaRow.Price.IsZero() || !teaRow.DividendYield.IsZero() || !teaRow.PERatio.IsZero() {
		t.Error("TEA row: metrics are set on a stock with no recent trades")
	}

	// the untraded stocks collapse the index to zero
	if !report.ShareIndex.IsZero() {
		t.Errorf("ShareIndex = %s, want 0", report.ShareIndex)
	}
}

func TestNewMarketReport_EmptyMarket(t *testing.T) {
	if _, err := NewMarketReport(NewMarket(), tradingDay); err == nil {
		t.Fatal("NewMarketReport() on an empty market: expected an error, got nil")
	}
}
