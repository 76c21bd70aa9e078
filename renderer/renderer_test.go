package renderer

import (
	"strings"
	"testing"

	moneymanager "github.com/SamuelAdmand/Money-Manager"
)

func TestSummaryMarkdown(t *testing.T) {
	s := moneymanager.NewState()
	a := s.AddAccount("Savings", moneymanager.Bank, moneymanager.M(500), moneymanager.Money{})
	s.AddEMI("car loan", moneymanager.M(100), a.ID)
	s.AddTransaction(moneymanager.Income, moneymanager.M(50), "", "pay", a.ID)

	got := SummaryMarkdown(s.ComputeTotals())

	for _, want := range []string{"Summary", "Net Worth", "Monthly EMIs", "Spendable", "Total Income", "Total Expense"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary misses %q:\n%s", want, got)
		}
	}
}

func TestAccountsMarkdown_Empty(t *testing.T) {
	got := AccountsMarkdown(moneymanager.NewState())
	if !strings.Contains(got, "No accounts yet.") {
		t.Errorf("empty account list not reported:\n%s", got)
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	s := moneymanager.NewState()
	a := s.AddAccount("Savings", moneymanager.Bank, moneymanager.M(500), moneymanager.Money{})
	s.AddTransaction(moneymanager.Expense, moneymanager.M(50), "Food", "groceries", a.ID)

	got := TransactionsMarkdown(s, s.Feed())

	for _, want := range []string{"groceries", "Food", "Savings"} {
		if !strings.Contains(got, want) {
			t.Errorf("feed misses %q:\n%s", want, got)
		}
	}
}
