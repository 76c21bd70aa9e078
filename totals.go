package moneymanager

// This file holds the derivation rules. Balances and totals are always
// recomputed from scratch; nothing here caches or stores a derived figure.
// The document is small and mutations are rare, so recomputation keeps the
// engine trivially correct after every change.

// Balance computes an account's current value: its opening balance plus all
// income postings minus all expense postings against it.
//
// An unknown id yields zero rather than an error; rendering code probes
// defensively and may race slightly ahead of a deletion.
func (s *State) Balance(accountID string) Money {
	acct := s.Account(accountID)
	if acct == nil {
		return Money{}
	}
	balance := acct.Balance
	for tx := range s.AccountTransactions(accountID) {
		balance = balance.Add(tx.Signed())
	}
	return balance
}

// Totals are the aggregate figures derived from the full document.
type Totals struct {
	// NetWorth is gross positive balances minus debt.
	NetWorth Money
	// Spendable is the headline figure: net worth minus investment value
	// minus the monthly EMI burden. Investments count as earmarked and the
	// next month's obligations as pre-committed.
	Spendable Money
	// Investments is the signed value held in investment accounts.
	Investments Money
	// Debt is the summed magnitude of negative balances.
	Debt Money
	// EMIs is the flat monthly obligation sum, independent of account or
	// timing.
	EMIs Money
	// Income and Expense are the all-time sums over the whole log,
	// independent of account. Dashboard figures, not ledger postings.
	Income  Money
	Expense Money
}

// Totals derives the aggregate figures from every account's running balance
// plus the EMI list.
//
// A negative investment balance feeds both Debt and Investments. That keeps
// the signed investment value truthful at the cost that Investments is then
// not strictly the investment share of gross assets. Known asymmetry, kept
// as-is pending product sign-off.
func (s *State) ComputeTotals() Totals {
	var grossAssets, investments, debt, emis, income, expense Money

	for _, a := range s.Accounts {
		balance := s.Balance(a.ID)
		switch {
		case balance.IsPositive():
			grossAssets = grossAssets.Add(balance)
			if a.Type == Investment {
				investments = investments.Add(balance)
			}
		case balance.IsNegative():
			debt = debt.Add(balance.Abs())
			if a.Type == Investment {
				investments = investments.Add(balance)
			}
		}
	}

	for _, e := range s.EMIs {
		emis = emis.Add(e.Amount)
	}

	for _, tx := range s.Transactions {
		switch tx.Type {
		case Income:
			income = income.Add(tx.Amount)
		case Expense:
			expense = expense.Add(tx.Amount)
		}
	}

	netWorth := grossAssets.Sub(debt)
	return Totals{
		NetWorth:    netWorth,
		Spendable:   netWorth.Sub(investments).Sub(emis),
		Investments: investments,
		Debt:        debt,
		EMIs:        emis,
		Income:      income,
		Expense:     expense,
	}
}
