package renderer

import "github.com/etnz/ticker"

// noTrades is the placeholder shown instead of metrics when a stock has no
// trade in the recent window.
const noTrades = "no trade data yet"

// marketView is the pre-formatted, template-friendly projection of a
// ticker.MarketReport: every cell is already a string, so the template
// stays dumb.
type marketView struct {
	AsOf       string
	Rows       []rowView
	ShareIndex string
}

type rowView struct {
	Symbol        string
	Type          string
	LastDividend  string
	FixedDividend string
	ParValue      string
	DividendYield string
	PERatio       string
	Price         string
}

func newMarketView(r *ticker.MarketReport) *marketView {
	view := &marketView{
		AsOf:       r.AsOf.Format(ticker.TimestampFormat),
		ShareIndex: r.ShareIndex.StringFixed(3),
	}
	for _, row := range r.Rows {
		v := rowView{
			Symbol:       row.Symbol,
			Type:         string(row.Type),
			LastDividend: row.LastDividend.String(),
			ParValue:     row.ParValue.String(),
		}
		// hide the "0.00%" fixed dividend of Common stocks
		if row.Type == ticker.Preferred {
			v.FixedDividend = row.FixedDividend.String()
		}
		if row.HasTrades {
			v.DividendYield = row.DividendYield.StringFixed(3)
			v.PERatio = row.PERatio.StringFixed(3)
			v.Price = row.Price.StringFixed(3)
		} else {
			v.DividendYield = noTrades
		}
		view.Rows = append(view.Rows, v)
	}
	return view
}
