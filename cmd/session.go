package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/etnz/ticker"
	"github.com/etnz/ticker/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type sessionCmd struct{}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "start an interactive trading session" }
func (*sessionCmd) Usage() string {
	return `gbce session

Start an interactive trading session: record trades and display the market
valuation. All trades live in process memory and vanish when the session ends.
`
}

func (c *sessionCmd) SetFlags(f *flag.FlagSet) {}

func (c *sessionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	market, err := LoadUniverse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := runSession(market, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// runSession drives the interactive menu loop on the given streams. It
// returns nil when the user exits or the input stream ends.
func runSession(m *ticker.Market, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintf(out, "Trading %d stocks: %s\n", m.Len(), strings.Join(m.Symbols(), ", "))
	for {
		fmt.Fprint(out, "\n(r)ecord a trade, (d)isplay the market, (e)xit > ")
		line, ok := readLine(scanner)
		if !ok {
			return scanner.Err()
		}

		switch strings.ToLower(line) {
		case "r":
			if err := recordTrade(m, scanner, out); err != nil {
				return err
			}
		case "d":
			report, err := ticker.NewMarketReport(m, ticker.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprint(out, renderer.Market(report))
		case "e":
			return nil
		case "":
			// ENTER alone just redraws the menu.
		default:
			fmt.Fprintf(out, "Unknown choice %q.\n", line)
		}
	}
}

// recordTrade prompts for the fields of one trade and records it. Each
// invalid answer re-prompts; the trade itself cannot fail validation once
// every field passed.
func recordTrade(m *ticker.Market, scanner *bufio.Scanner, out io.Writer) error {
	var stock *ticker.Stock
	for stock == nil {
		fmt.Fprintf(out, "Stock symbol (%s): ", strings.Join(m.Symbols(), ", "))
		line, ok := readLine(scanner)
		if !ok {
			return scanner.Err()
		}
		s, err := m.Get(strings.ToUpper(line))
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}
		stock = s
	}

	var at time.Time
	for at.IsZero() {
		fmt.Fprintf(out, "Timestamp %q (ENTER for now): ", ticker.TimestampFormat)
		line, ok := readLine(scanner)
		if !ok {
			return scanner.Err()
		}
		if line == "" {
			at = ticker.Now()
			break
		}
		t, err := time.ParseInLocation(ticker.TimestampFormat, line, time.Local)
		if err != nil {
			fmt.Fprintf(out, "invalid timestamp %q, expected format %q\n", line, ticker.TimestampFormat)
			continue
		}
		at = t
	}

	var direction ticker.Direction
	for direction == "" {
		fmt.Fprint(out, "(b)uy or (s)ell: ")
		line, ok := readLine(scanner)
		if !ok {
			return scanner.Err()
		}
		d, err := ticker.ParseDirection(line)
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}
		direction = d
	}

	var quantity ticker.Quantity
	for quantity.IsZero() {
		fmt.Fprint(out, "Quantity of shares: ")
		line, ok := readLine(scanner)
		if !ok {
			return scanner.Err()
		}
		d, err := decimal.NewFromString(line)
		if err != nil || !d.IsPositive() || !d.IsInteger() {
			fmt.Fprintf(out, "quantity must be a positive whole number of shares, got %q\n", line)
			continue
		}
		quantity = ticker.Q(d)
	}

	price, priceSet := ticker.Money{}, false
	for !priceSet {
		fmt.Fprint(out, "Price per share in pennies: ")
		line, ok := readLine(scanner)
		if !ok {
			return scanner.Err()
		}
		d, err := decimal.NewFromString(line)
		if err != nil || d.IsNegative() {
			fmt.Fprintf(out, "price must be a non-negative number of pennies, got %q\n", line)
			continue
		}
		price, priceSet = ticker.M(d), true
	}

	trade, err := ticker.NewTrade(at, quantity, direction, price)
	if err != nil {
		return err
	}
	stock.RecordTrade(trade)
	fmt.Fprintln(out, renderer.Trade(stock.Symbol(), trade))
	return nil
}

// readLine reads the next trimmed line, reporting false at end of input.
func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}
