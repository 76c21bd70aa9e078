package moneymanager

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
)

// Theme is the persisted UI theme flag.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ErrNoAccounts is returned when a posting is attempted against an empty
// account set.
var ErrNoAccounts = errors.New("no accounts exist yet, create an account first")

// State is the whole tracker document: accounts, the append-only transaction
// log, recurring obligations, custom presets and the theme flag. It is the
// unit of persistence; there is no per-entity persistence.
//
// State is exclusively owned by its caller. Operations run to completion and
// leave the document fully consistent, so it can be persisted after any of
// them. A failed operation never commits a partial mutation.
type State struct {
	Accounts      []Account
	Transactions  []Transaction
	EMIs          []EMI
	CustomPresets []Preset
	Theme         Theme

	dirty bool
}

// NewState creates an empty document with the default theme.
func NewState() *State {
	return &State{Theme: Dark}
}

// Dirty reports whether the document changed since the last MarkClean.
// The host persists (and re-renders) when it is set.
func (s *State) Dirty() bool { return s.dirty }

// MarkClean resets the dirty flag, typically right after persisting.
func (s *State) MarkClean() { s.dirty = false }

// Account returns the account with this id, or nil if unknown.
func (s *State) Account(id string) *Account {
	for i := range s.Accounts {
		if s.Accounts[i].ID == id {
			return &s.Accounts[i]
		}
	}
	return nil
}

// AccountTransactions returns an iterator over the log restricted to one
// account, in log order.
func (s *State) AccountTransactions(accountID string) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range s.Transactions {
			if tx.AccountID != accountID {
				continue
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// Feed returns the transactions newest first. The log itself is append-only,
// so reverse order is the source of "newest".
func (s *State) Feed() []Transaction {
	feed := make([]Transaction, 0, len(s.Transactions))
	for i := len(s.Transactions) - 1; i >= 0; i-- {
		feed = append(feed, s.Transactions[i])
	}
	return feed
}

// AddAccount creates an account and appends it to the document.
//
// For credit accounts the caller supplies the outstanding debt as a positive
// figure; it is stored as a negative balance (negative = money owed), and the
// credit limit is retained. Other types store the opening value as given and
// carry no limit.
func (s *State) AddAccount(name string, typ AccountType, opening, limit Money) Account {
	balance := opening
	if typ == Credit {
		balance = opening.Neg()
	} else {
		limit = Money{}
	}
	a := Account{
		ID:      uuid.NewString(),
		Name:    name,
		Type:    typ,
		Balance: balance,
		Limit:   limit,
	}
	s.Accounts = append(s.Accounts, a)
	s.dirty = true
	return a
}

// DeleteAccount removes the account and cascades: every transaction and every
// EMI referencing it goes too. There is no orphan state.
func (s *State) DeleteAccount(id string) {
	kept := s.Accounts[:0]
	found := false
	for _, a := range s.Accounts {
		if a.ID == id {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return
	}
	s.Accounts = kept

	txs := s.Transactions[:0]
	for _, tx := range s.Transactions {
		if tx.AccountID != id {
			txs = append(txs, tx)
		}
	}
	s.Transactions = txs

	emis := s.EMIs[:0]
	for _, e := range s.EMIs {
		if e.AccountID != id {
			emis = append(emis, e)
		}
	}
	s.EMIs = emis
	s.dirty = true
}

// AddTransaction records a posting and appends it to the log. It fails when
// no accounts exist. A blank category defaults to DefaultCategory, and the
// date is stamped with the current time.
func (s *State) AddTransaction(typ TxType, amount Money, category, description, accountID string) (Transaction, error) {
	if len(s.Accounts) == 0 {
		return Transaction{}, ErrNoAccounts
	}
	if category == "" {
		category = DefaultCategory
	}
	tx := Transaction{
		ID:          uuid.NewString(),
		Type:        typ,
		Amount:      amount,
		Category:    category,
		Description: description,
		AccountID:   accountID,
		Date:        time.Now(),
	}
	s.Transactions = append(s.Transactions, tx)
	s.dirty = true
	return tx, nil
}

// DeleteTransaction removes a transaction by id. Unknown ids are a no-op.
func (s *State) DeleteTransaction(id string) {
	kept := s.Transactions[:0]
	changed := false
	for _, tx := range s.Transactions {
		if tx.ID == id {
			changed = true
			continue
		}
		kept = append(kept, tx)
	}
	s.Transactions = kept
	if changed {
		s.dirty = true
	}
}

// AddEMI records a recurring monthly obligation against an account. Like
// postings, it needs the account set to be non-empty.
func (s *State) AddEMI(description string, amount Money, accountID string) (EMI, error) {
	if len(s.Accounts) == 0 {
		return EMI{}, ErrNoAccounts
	}
	e := EMI{
		ID:          uuid.NewString(),
		Description: description,
		Amount:      amount,
		AccountID:   accountID,
	}
	s.EMIs = append(s.EMIs, e)
	s.dirty = true
	return e, nil
}

// DeleteEMI removes an EMI by id. Unknown ids are a no-op.
func (s *State) DeleteEMI(id string) {
	kept := s.EMIs[:0]
	changed := false
	for _, e := range s.EMIs {
		if e.ID == id {
			changed = true
			continue
		}
		kept = append(kept, e)
	}
	s.EMIs = kept
	if changed {
		s.dirty = true
	}
}

// RepayDebt models a transfer from a liquid account to pay down a credit
// account: an expense on the source and an income on the credit account,
// inserted as one unit (both or neither).
//
// The amount is not capped at the outstanding balance; overpaying simply
// drives the credit account positive, a literal credit balance.
func (s *State) RepayDebt(creditID, sourceID string, amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("repayment amount must be positive, got %s", amount)
	}
	credit := s.Account(creditID)
	if credit == nil {
		return fmt.Errorf("unknown credit account %q", creditID)
	}
	if credit.Type != Credit {
		return fmt.Errorf("account %q is not a credit account", credit.Name)
	}
	source := s.Account(sourceID)
	if source == nil {
		return fmt.Errorf("unknown source account %q", sourceID)
	}
	if !source.IsLiquid() {
		return fmt.Errorf("source account %q must be a liquid non-investment account", source.Name)
	}

	// Build both postings first so a failure above never leaves a
	// half-applied repayment.
	description := fmt.Sprintf("Repayment to %s", credit.Name)
	out := Transaction{
		ID:          uuid.NewString(),
		Type:        Expense,
		Amount:      amount,
		Category:    "Debt Repayment",
		Description: description,
		AccountID:   sourceID,
		Date:        time.Now(),
	}
	in := Transaction{
		ID:          uuid.NewString(),
		Type:        Income,
		Amount:      amount,
		Category:    "Repayment",
		Description: description,
		AccountID:   creditID,
		Date:        time.Now(),
	}
	s.Transactions = append(s.Transactions, out, in)
	s.dirty = true
	return nil
}

// AddCustomPreset appends a user-defined category shortcut.
func (s *State) AddCustomPreset(name, icon string, typ TxType) Preset {
	p := Preset{Name: name, Icon: icon, Type: typ}
	s.CustomPresets = append(s.CustomPresets, p)
	s.dirty = true
	return p
}

// DeleteCustomPreset removes a custom preset by name. Unknown names are a
// no-op. Built-in presets cannot be removed.
func (s *State) DeleteCustomPreset(name string) {
	kept := s.CustomPresets[:0]
	changed := false
	for _, p := range s.CustomPresets {
		if p.Name == name {
			changed = true
			continue
		}
		kept = append(kept, p)
	}
	s.CustomPresets = kept
	if changed {
		s.dirty = true
	}
}

// SetTheme stores the theme flag.
func (s *State) SetTheme(t Theme) {
	if s.Theme == t {
		return
	}
	s.Theme = t
	s.dirty = true
}

// ToggleTheme flips between light and dark and returns the new value.
func (s *State) ToggleTheme() Theme {
	if s.Theme == Dark {
		s.SetTheme(Light)
	} else {
		s.SetTheme(Dark)
	}
	return s.Theme
}
