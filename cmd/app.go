// Package cmd implements the CLI application of the gbce ticker.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/ticker"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&sessionCmd{}, "market")
	c.Register(&demoCmd{}, "market")
	c.Register(&exportCmd{}, "market")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var universeFile = flag.String("universe", "", "Path to a JSONL stock universe file (default: built-in GBCE sample universe)")

// LoadUniverse builds the market from the -universe flag, or from the
// built-in GBCE sample universe when the flag is empty.
func LoadUniverse() (*ticker.Market, error) {
	specs := ticker.DefaultUniverse()
	if *universeFile != "" {
		f, err := os.Open(*universeFile)
		if err != nil {
			return nil, fmt.Errorf("cannot open universe file %q: %w", *universeFile, err)
		}
		defer f.Close()

		specs, err = ticker.DecodeUniverse(*universeFile, f)
		if err != nil {
			return nil, err
		}
	}
	return ticker.NewUniverse(specs)
}

// printMarkdown renders a markdown string to the terminal, falling back to
// the raw markdown when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
