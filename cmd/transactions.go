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

// --- Add Transaction Command ---

type addCmd struct {
	typ         string
	amount      float64
	category    string
	description string
	accountID   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or expense transaction" }
func (*addCmd) Usage() string {
	return `mmg add -t income|expense -a <amount> -acct <account-id> [-c <category>] [-m <description>]

  Appends a transaction to the log. The amount is a non-negative magnitude;
  the sign is implied by the type.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "t", "expense", "Transaction type (income, expense)")
	f.Float64Var(&c.amount, "a", 0, "Amount (non-negative magnitude)")
	f.StringVar(&c.category, "c", "", "Category label, defaults to Other")
	f.StringVar(&c.description, "m", "", "Free-text note")
	f.StringVar(&c.accountID, "acct", "", "Account id the transaction belongs to")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount < 0 || c.accountID == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	typ, err := moneymanager.ParseTxType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	return mutate(func(s *moneymanager.State) error {
		tx, err := s.AddTransaction(typ, moneymanager.M(c.amount), c.category, c.description, c.accountID)
		if err != nil {
			return err
		}
		fmt.Printf("Recorded %s of %s (%s)\n", tx.Type, tx.Amount, tx.ID)
		return nil
	})
}

// --- Remove Transaction Command ---

type rmCmd struct {
	id string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a transaction" }
func (*rmCmd) Usage() string {
	return `mmg rm -id <transaction-id>
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction id to delete")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return mutate(func(s *moneymanager.State) error {
		s.DeleteTransaction(c.id)
		return nil
	})
}

// --- Transaction Feed Command ---

type txCmd struct {
	head int
	tail int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions, newest first" }
func (*txCmd) Usage() string {
	return `mmg tx [-head <n>] [-tail <n>]

  Lists the transaction feed, newest first, with options to limit the output.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions of the feed.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions of the feed.")
}

func (c *txCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	s, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	feed := s.Feed()
	if c.head > 0 && len(feed) > c.head {
		feed = feed[:c.head]
	}
	if c.tail > 0 && len(feed) > c.tail {
		feed = feed[len(feed)-c.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown(s, feed))
	return subcommands.ExitSuccess
}
