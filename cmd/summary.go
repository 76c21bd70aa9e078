package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/SamuelAdmand/Money-Manager/renderer"
	"github.com/google/subcommands"
)

// summaryCmd displays the aggregate figures derived from the document.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display net worth, debt and spendable balance" }
func (*summaryCmd) Usage() string {
	return `mmg summary

  Displays the aggregate figures: net worth, investment value, debt, monthly
  EMI burden and the spendable balance.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SummaryMarkdown(s.ComputeTotals()))
	return subcommands.ExitSuccess
}
