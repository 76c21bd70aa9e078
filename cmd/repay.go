package cmd

import (
	"context"
	"flag"
	"fmt"

	moneymanager "github.com/SamuelAdmand/Money-Manager"
	"github.com/google/subcommands"
)

type repayCmd struct {
	creditID string
	sourceID string
	amount   float64
}

func (*repayCmd) Name() string     { return "repay" }
func (*repayCmd) Synopsis() string { return "pay down a credit account from a liquid account" }
func (*repayCmd) Usage() string {
	return `mmg repay -credit <credit-account-id> -from <source-account-id> -a <amount>

  Transfers money from a liquid account to a credit account: an expense on
  the source and an income on the credit account, posted together. Amounts
  above the outstanding balance are allowed and drive the credit account
  positive.
`
}

func (c *repayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.creditID, "credit", "", "Credit account to pay down")
	f.StringVar(&c.sourceID, "from", "", "Liquid account the money comes from")
	f.Float64Var(&c.amount, "a", 0, "Amount to repay (must be positive)")
}

func (c *repayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.creditID == "" || c.sourceID == "" || c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return mutate(func(s *moneymanager.State) error {
		if err := s.RepayDebt(c.creditID, c.sourceID, moneymanager.M(c.amount)); err != nil {
			return err
		}
		fmt.Printf("Repaid %s, remaining balance %s\n", moneymanager.M(c.amount), s.Balance(c.creditID))
		return nil
	})
}
