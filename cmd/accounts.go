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

// --- Add Account Command ---

type addAccountCmd struct {
	name    string
	typ     string
	balance float64
	limit   float64
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "create a new account" }
func (*addAccountCmd) Usage() string {
	return `mmg add-account -n <name> [-t bank|credit|investment] [-b <balance>] [-limit <limit>]

  Creates an account. For credit accounts, -b is the outstanding amount owed
  (stored as a negative balance) and -limit is the credit ceiling.
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Account display name")
	f.StringVar(&c.typ, "t", "bank", "Account type (bank, credit, investment)")
	f.Float64Var(&c.balance, "b", 0, "Initial balance; for credit accounts the outstanding amount")
	f.Float64Var(&c.limit, "limit", 0, "Credit limit, display-only, credit accounts only")
}

func (c *addAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	typ, err := moneymanager.ParseAccountType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	return mutate(func(s *moneymanager.State) error {
		a := s.AddAccount(c.name, typ, moneymanager.M(c.balance), moneymanager.M(c.limit))
		fmt.Printf("Created %s account %q (%s)\n", a.Type, a.Name, a.ID)
		return nil
	})
}

// --- Remove Account Command ---

type rmAccountCmd struct {
	id string
}

func (*rmAccountCmd) Name() string     { return "rm-account" }
func (*rmAccountCmd) Synopsis() string { return "delete an account and everything referencing it" }
func (*rmAccountCmd) Usage() string {
	return `mmg rm-account -id <account-id>

  Deletes an account. Every transaction and EMI charged against it is
  deleted too.
`
}

func (c *rmAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Account id to delete")
}

func (c *rmAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return mutate(func(s *moneymanager.State) error {
		s.DeleteAccount(c.id)
		return nil
	})
}

// --- List Accounts Command ---

type accountsCmd struct{}

func (*accountsCmd) Name() string             { return "accounts" }
func (*accountsCmd) Synopsis() string         { return "list accounts with their running balances" }
func (*accountsCmd) Usage() string            { return "mmg accounts\n" }
func (*accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AccountsMarkdown(s))
	return subcommands.ExitSuccess
}
