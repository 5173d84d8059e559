package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ticker"
	"github.com/google/subcommands"
)

type exportCmd struct {
	demo bool
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the market report as JSON on stdout" }
func (*exportCmd) Usage() string {
	return `gbce export [-demo]

Write the market valuation report as a single JSON document on stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.demo, "demo", false, "seed the sample trades before exporting")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	market, err := LoadUniverse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	asOf := ticker.Now()
	if c.demo {
		if err := seedDemoTrades(market, asOf); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	report, err := ticker.NewMarketReport(market, asOf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := report.EncodeMarketReport(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
