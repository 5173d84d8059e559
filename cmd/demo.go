package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/ticker"
	"github.com/etnz/ticker/renderer"
	"github.com/google/subcommands"
)

type demoCmd struct{}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "seed sample trades and display the market" }
func (*demoCmd) Usage() string {
	return `gbce demo

Seed a few sample trades on every stock and display the market valuation once.
`
}

func (c *demoCmd) SetFlags(f *flag.FlagSet) {}

func (c *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	market, err := LoadUniverse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	asOf := ticker.Now()
	if err := seedDemoTrades(market, asOf); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := ticker.NewMarketReport(market, asOf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Market(report))
	return subcommands.ExitSuccess
}

// seedDemoTrades records a deterministic set of sample trades: every stock
// gets two trades inside the recent window and a stale one outside it, so
// the report exercises both the metrics and the window cutoff.
func seedDemoTrades(m *ticker.Market, asOf time.Time) error {
	i := 0
	for s := range m.Stocks() {
		base := 95 + 10*i
		trades := []struct {
			age       time.Duration
			quantity  int
			direction ticker.Direction
			price     int
		}{
			{2 * time.Minute, 10 + 5*i, ticker.Buy, base},
			{10 * time.Minute, 5, ticker.Sell, base + 10},
			{30 * time.Minute, 100, ticker.Buy, 1}, // stale, drops out of the window
		}
		for _, tr := range trades {
			trade, err := ticker.NewTrade(asOf.Add(-tr.age), ticker.Q(tr.quantity), tr.direction, ticker.M(tr.price))
			if err != nil {
				return err
			}
			s.RecordTrade(trade)
		}
		i++
	}
	return nil
}
