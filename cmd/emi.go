package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	moneymanager "github.com/SamuelAdmand/Money-Manager"
	"github.com/SamuelAdmand/Money-Manager/renderer"
	"github.com/google/subcommands"
)

// --- Add EMI Command ---

type emiCmd struct {
	description string
	amount      float64
	accountID   string
}

func (*emiCmd) Name() string     { return "emi" }
func (*emiCmd) Synopsis() string { return "record a recurring monthly obligation" }
func (*emiCmd) Usage() string {
	return `mmg emi -m <description> -a <amount> -acct <account-id>

  Records a monthly EMI. It is not posted as transactions, it only
  contributes to the monthly burden figure.
`
}

func (c *emiCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "m", "", "What the obligation is for")
	f.Float64Var(&c.amount, "a", 0, "Monthly amount (non-negative)")
	f.StringVar(&c.accountID, "acct", "", "Account the obligation is charged against")
}

func (c *emiCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount < 0 || c.accountID == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return mutate(func(s *moneymanager.State) error {
		e, err := s.AddEMI(c.description, moneymanager.M(c.amount), c.accountID)
		if err != nil {
			return err
		}
		fmt.Printf("Recorded EMI of %s per month (%s)\n", e.Amount, e.ID)
		return nil
	})
}

// --- Remove EMI Command ---

type rmEmiCmd struct {
	id string
}

func (*rmEmiCmd) Name() string     { return "rm-emi" }
func (*rmEmiCmd) Synopsis() string { return "delete an EMI" }
func (*rmEmiCmd) Usage() string {
	return `mmg rm-emi -id <emi-id>
`
}

func (c *rmEmiCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "EMI id to delete")
}

func (c *rmEmiCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return mutate(func(s *moneymanager.State) error {
		s.DeleteEMI(c.id)
		return nil
	})
}

// --- List EMIs Command ---

type emisCmd struct{}

func (*emisCmd) Name() string             { return "emis" }
func (*emisCmd) Synopsis() string         { return "list recurring monthly obligations" }
func (*emisCmd) Usage() string            { return "mmg emis\n" }
func (*emisCmd) SetFlags(f *flag.FlagSet) {}

func (c *emisCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.EMIsMarkdown(s))
	return subcommands.ExitSuccess
}
