// Package renderer formats ticker reports as markdown for terminal display.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/ticker"
)

//go:embed templates/*.md
var templates embed.FS

// Market renders a market report to a markdown string: one table row per
// stock, the "no trade data yet" placeholder for stocks with an empty
// recent window, and the GBCE All Share Index as footer.
func Market(r *ticker.MarketReport) string {
	return renderTemplate("market", "templates/market.md", newMarketView(r))
}

// Trade renders the confirmation line for a freshly recorded trade.
func Trade(symbol string, t ticker.Trade) string {
	return fmt.Sprintf("Recorded trade: [%s] %s %s %s shares for %s apiece.",
		t.Time.Format(ticker.TimestampFormat), t.Direction, t.Quantity, symbol, t.Price.Display())
}

// renderTemplate is a generic utility to render one of the embedded templates.
func renderTemplate(templateName, file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}

	tmpl, err := template.New(templateName).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
