package moneymanager

import (
	"errors"
	"testing"
)

func TestAddAccount_CreditSignFlip(t *testing.T) {
	s := NewState()
	card := s.AddAccount("Card", Credit, M(300), M(50000))

	if !card.Balance.Equal(M(-300)) {
		t.Errorf("credit balance = %s, want %s", card.Balance, M(-300))
	}
	if !card.Limit.Equal(M(50000)) {
		t.Errorf("credit limit = %s, want %s", card.Limit, M(50000))
	}
}

func TestAddAccount_NonCreditKeepsSignDropsLimit(t *testing.T) {
	s := NewState()
	a := s.AddAccount("Savings", Bank, M(1000), M(9999))

	if !a.Balance.Equal(M(1000)) {
		t.Errorf("balance = %s, want %s", a.Balance, M(1000))
	}
	if !a.Limit.IsZero() {
		t.Errorf("limit = %s, want zero for non-credit accounts", a.Limit)
	}
	if a.ID == "" {
		t.Error("account id must be generated")
	}
}

func TestAddTransaction_RequiresAccounts(t *testing.T) {
	s := NewState()
	if _, err := s.AddTransaction(Expense, M(10), "", "", "any"); !errors.Is(err, ErrNoAccounts) {
		t.Errorf("AddTransaction() error = %v, want ErrNoAccounts", err)
	}
	if len(s.Transactions) != 0 {
		t.Error("rejected transaction must not be appended")
	}
}

func TestAddTransaction_DefaultsCategory(t *testing.T) {
	s := NewState()
	a := s.AddAccount("Savings", Bank, M(100), Money{})

	tx, err := s.AddTransaction(Expense, M(10), "", "coffee", a.ID)
	if err != nil {
		t.Fatalf("AddTransaction() error = %v", err)
	}
	if tx.Category != DefaultCategory {
		t.Errorf("category = %q, want %q", tx.Category, DefaultCategory)
	}
	if tx.Date.IsZero() {
		t.Error("transaction date must be stamped")
	}
}

func TestAddEMI_RequiresAccounts(t *testing.T) {
	s := NewState()
	if _, err := s.AddEMI("loan", M(100), "any"); !errors.Is(err, ErrNoAccounts) {
		t.Errorf("AddEMI() error = %v, want ErrNoAccounts", err)
	}
}

func TestDeleteAccount_Cascades(t *testing.T) {
	s := NewState()
	a := s.AddAccount("Savings", Bank, M(1000), Money{})
	b := s.AddAccount("Wallet", Bank, M(50), Money{})
	s.AddTransaction(Expense, M(10), "", "", a.ID)
	s.AddTransaction(Income, M(20), "", "", b.ID)
	s.AddTransaction(Expense, M(30), "", "", a.ID)
	s.AddEMI("loan", M(100), a.ID)
	s.AddEMI("phone", M(40), b.ID)

	s.DeleteAccount(a.ID)

	if s.Account(a.ID) != nil {
		t.Fatal("account still present after delete")
	}
	for _, tx := range s.Transactions {
		if tx.AccountID == a.ID {
			t.Errorf("dangling transaction %s still references deleted account", tx.ID)
		}
	}
	for _, e := range s.EMIs {
		if e.AccountID == a.ID {
			t.Errorf("dangling EMI %s still references deleted account", e.ID)
		}
	}
	if len(s.Transactions) != 1 || len(s.EMIs) != 1 {
		t.Errorf("kept %d transactions and %d EMIs, want 1 and 1", len(s.Transactions), len(s.EMIs))
	}
}

func TestDelete_IdempotentNoOps(t *testing.T) {
	s := NewState()
	a := s.AddAccount("Savings", Bank, M(1000), Money{})
	tx, _ := s.AddTransaction(Expense, M(10), "", "", a.ID)
	emi, _ := s.AddEMI("loan", M(100), a.ID)
	s.MarkClean()

	s.DeleteTransaction("no-such-id")
	s.DeleteEMI("no-such-id")
	s.DeleteAccount("no-such-id")
	if s.Dirty() {
		t.Error("deleting unknown ids must not dirty the document")
	}

	s.DeleteTransaction(tx.ID)
	s.DeleteTransaction(tx.ID)
	s.DeleteEMI(emi.ID)
	s.DeleteEMI(emi.ID)
	if len(s.Transactions) != 0 || len(s.EMIs) != 0 {
		t.Error("repeated deletes must behave as a single delete")
	}
	if !s.Dirty() {
		t.Error("deleting existing records must dirty the document")
	}
}

func TestRepayDebt(t *testing.T) {
	s := NewState()
	bank := s.AddAccount("Savings", Bank, M(2000), Money{})
	card := s.AddAccount("Card", Credit, M(300), M(50000))

	debtBefore := s.ComputeTotals().Debt

	if err := s.RepayDebt(card.ID, bank.ID, M(300)); err != nil {
		t.Fatalf("RepayDebt() error = %v", err)
	}

	if got := s.Balance(card.ID); !got.IsZero() {
		t.Errorf("credit balance = %s, want zero", got)
	}
	if got := s.Balance(bank.ID); !got.Equal(M(1700)) {
		t.Errorf("source balance = %s, want %s", got, M(1700))
	}
	if delta := debtBefore.Sub(s.ComputeTotals().Debt); !delta.Equal(M(300)) {
		t.Errorf("debt reduced by %s, want %s", delta, M(300))
	}

	if len(s.Transactions) != 2 {
		t.Fatalf("got %d transactions, want the two repayment postings", len(s.Transactions))
	}
	out, in := s.Transactions[0], s.Transactions[1]
	if out.Type != Expense || out.AccountID != bank.ID || out.Category != "Debt Repayment" {
		t.Errorf("unexpected source posting: %+v", out)
	}
	if in.Type != Income || in.AccountID != card.ID || in.Category != "Repayment" {
		t.Errorf("unexpected credit posting: %+v", in)
	}
	if out.Description != in.Description {
		t.Error("both postings must share the same description")
	}
}

func TestRepayDebt_OverpaymentAllowed(t *testing.T) {
	s := NewState()
	bank := s.AddAccount("Savings", Bank, M(2000), Money{})
	card := s.AddAccount("Card", Credit, M(300), Money{})

	if err := s.RepayDebt(card.ID, bank.ID, M(500)); err != nil {
		t.Fatalf("RepayDebt() error = %v", err)
	}
	// a literal credit balance
	if got := s.Balance(card.ID); !got.Equal(M(200)) {
		t.Errorf("credit balance = %s, want %s", got, M(200))
	}
}

func TestRepayDebt_Rejections(t *testing.T) {
	s := NewState()
	bank := s.AddAccount("Savings", Bank, M(2000), Money{})
	card := s.AddAccount("Card", Credit, M(300), Money{})
	funds := s.AddAccount("Funds", Investment, M(400), Money{})

	testCases := []struct {
		name     string
		creditID string
		sourceID string
		amount   Money
	}{
		{"zero amount", card.ID, bank.ID, M(0)},
		{"negative amount", card.ID, bank.ID, M(-10)},
		{"unknown credit account", "nope", bank.ID, M(10)},
		{"target not a credit account", bank.ID, bank.ID, M(10)},
		{"unknown source account", card.ID, "nope", M(10)},
		{"investment source", card.ID, funds.ID, M(10)},
		{"credit source", card.ID, card.ID, M(10)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := s.RepayDebt(tc.creditID, tc.sourceID, tc.amount); err == nil {
				t.Error("RepayDebt() succeeded, want rejection")
			}
			if len(s.Transactions) != 0 {
				t.Fatal("rejected repayment must not post anything")
			}
		})
	}
}

func TestCustomPresets(t *testing.T) {
	s := NewState()
	s.AddCustomPreset("Pets", "paw-outline", Expense)

	expense := s.Presets(Expense)
	if got := expense[len(expense)-1].Name; got != "Pets" {
		t.Errorf("last expense preset = %q, want %q", got, "Pets")
	}
	if got := len(s.Presets(Income)); got != len(IncomePresets) {
		t.Errorf("income presets = %d, want the built-in %d", got, len(IncomePresets))
	}

	s.DeleteCustomPreset("Pets")
	if len(s.CustomPresets) != 0 {
		t.Error("custom preset still present after delete")
	}
	s.DeleteCustomPreset("Pets") // no-op
}

func TestDirtyFlag(t *testing.T) {
	s := NewState()
	if s.Dirty() {
		t.Error("fresh state must be clean")
	}
	s.AddAccount("Savings", Bank, M(100), Money{})
	if !s.Dirty() {
		t.Error("mutation must dirty the document")
	}
	s.MarkClean()
	if s.Dirty() {
		t.Error("MarkClean must reset the flag")
	}
	s.SetTheme(s.Theme)
	if s.Dirty() {
		t.Error("setting the already-current theme must not dirty the document")
	}
}

func TestToggleTheme(t *testing.T) {
	s := NewState()
	if s.Theme != Dark {
		t.Fatalf("default theme = %q, want dark", s.Theme)
	}
	if got := s.ToggleTheme(); got != Light {
		t.Errorf("ToggleTheme() = %q, want light", got)
	}
	if got := s.ToggleTheme(); got != Dark {
		t.Errorf("ToggleTheme() = %q, want dark", got)
	}
}

func TestFeed_NewestFirst(t *testing.T) {
	s := NewState()
	a := s.AddAccount("Savings", Bank, M(100), Money{})
	first, _ := s.AddTransaction(Expense, M(1), "", "first", a.ID)
	last, _ := s.AddTransaction(Expense, M(2), "", "last", a.ID)

	feed := s.Feed()
	if feed[0].ID != last.ID || feed[1].ID != first.ID {
		t.Error("feed must list the newest transaction first")
	}
}
