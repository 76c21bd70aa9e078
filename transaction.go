package moneymanager

import (
	"fmt"
	"time"
)

// DefaultCategory is used when a transaction is recorded without a category.
// Older documents predate the category field entirely and decode to it too.
const DefaultCategory = "Other"

// TxType is the kind of a transaction: money in or money out.
type TxType int

const (
	Income TxType = iota
	Expense
)

func (t TxType) String() string {
	switch t {
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		return "unknown"
	}
}

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch s {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return 0, fmt.Errorf("unknown transaction type: %q", s)
	}
}

func (t TxType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *TxType) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("transaction type must be a string: %s", string(data))
	}
	parsed, err := ParseTxType(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Transaction is a single posting against one account. Amount is a
// non-negative magnitude; the sign is implied by Type, never embedded in the
// number.
type Transaction struct {
	ID          string    `json:"id"`
	Type        TxType    `json:"type"`
	Amount      Money     `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	AccountID   string    `json:"accountId"`
	Date        time.Time `json:"date"`
}

// Signed returns the amount with the sign its type implies: positive for
// income, negative for expense.
func (t Transaction) Signed() Money {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// EMI is a recurring fixed monthly obligation. It is never posted as
// transactions; it only contributes to the aggregate monthly burden figure.
type EMI struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      Money  `json:"amount"`
	AccountID   string `json:"accountId"`
}
