package cmd

import (
	"path/filepath"
	"testing"

	moneymanager "github.com/SamuelAdmand/Money-Manager"
)

func useTempStateFile(t *testing.T) {
	t.Helper()
	old := *stateFile
	*stateFile = filepath.Join(t.TempDir(), "money_manager.json")
	t.Cleanup(func() { *stateFile = old })
}

func TestLoadState_MissingFile(t *testing.T) {
	useTempStateFile(t)

	s, err := LoadState()
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if len(s.Accounts) != 0 || s.Dirty() {
		t.Error("a missing file must yield a fresh clean document")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	useTempStateFile(t)

	s := moneymanager.NewState()
	a := s.AddAccount("Savings", moneymanager.Bank, moneymanager.M(1000), moneymanager.Money{})
	s.AddTransaction(moneymanager.Expense, moneymanager.M(200), "Food", "groceries", a.ID)

	if err := SaveState(s); err != nil {
		t.Fatalf("SaveState() error = %v", err)
	}
	if s.Dirty() {
		t.Error("SaveState must mark the document clean")
	}

	got, err := LoadState()
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if !got.Balance(a.ID).Equal(moneymanager.M(800)) {
		t.Errorf("Balance() = %s, want %s", got.Balance(a.ID), moneymanager.M(800))
	}
}

func TestSaveState_SkipsCleanDocument(t *testing.T) {
	useTempStateFile(t)

	s := moneymanager.NewState()
	if err := SaveState(s); err != nil {
		t.Fatalf("SaveState() error = %v", err)
	}
	// a clean document writes nothing, so loading still yields a fresh one
	if _, err := LoadState(); err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
}
