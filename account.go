package moneymanager

import "fmt"

// AccountType classifies an account. The type gates the credit sign-flip on
// creation and the investment sub-total in aggregate figures.
type AccountType int

const (
	// Bank is the generic cash-type account (bank, wallet, cash in hand).
	Bank AccountType = iota
	// Credit is a credit card or loan account. Its balance is conventionally
	// negative: negative balance = money owed.
	Credit
	// Investment is an earmarked, illiquid account (mutual funds, stocks).
	Investment
)

func (t AccountType) String() string {
	switch t {
	case Bank:
		return "bank"
	case Credit:
		return "credit"
	case Investment:
		return "investment"
	default:
		return "unknown"
	}
}

// ParseAccountType parses a string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch s {
	case "bank":
		return Bank, nil
	case "credit":
		return Credit, nil
	case "investment":
		return Investment, nil
	default:
		return 0, fmt.Errorf("unknown account type: %q", s)
	}
}

// MarshalJSON writes the type as its lowercase name.
func (t AccountType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON reads the lowercase name. Unrecognized values decode as Bank,
// so documents written with ad-hoc custom types still import as generic cash
// accounts.
func (t *AccountType) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("account type must be a string: %s", string(data))
	}
	parsed, err := ParseAccountType(string(data[1 : len(data)-1]))
	if err != nil {
		parsed = Bank
	}
	*t = parsed
	return nil
}

// Account holds an opening balance and a display label. The opening balance
// never carries transaction effects; the running balance is always derived,
// never stored.
type Account struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Type    AccountType `json:"type"`
	Balance Money       `json:"balance"`
	// Limit is the credit ceiling, display-only, meaningful for credit
	// accounts only. The tag serves decoding; Account.MarshalJSON owns the
	// encode side and omits the limit for non-credit accounts.
	Limit Money `json:"limit"`
}

// IsLiquid reports whether the account can fund a debt repayment: neither a
// credit account nor an earmarked investment.
func (a Account) IsLiquid() bool {
	return a.Type != Credit && a.Type != Investment
}
