package moneymanager

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrMalformedDocument is returned when an imported document is not a valid
// state document. The import is rejected as a whole; the caller's current
// state is never touched.
var ErrMalformedDocument = errors.New("malformed state document")

// MarshalJSON writes the account fields in canonical order, omitting the
// limit for non-credit accounts.
func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("name", a.Name)
	w.Append("type", a.Type)
	w.Append("balance", a.Balance)
	if a.Type == Credit {
		w.Optional("limit", a.Limit)
	}
	return w.MarshalJSON()
}

// MarshalJSON writes the transaction fields in canonical order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("type", t.Type)
	w.Append("amount", t.Amount)
	w.Append("category", t.Category)
	w.Append("description", t.Description)
	w.Append("accountId", t.AccountID)
	w.Append("date", t.Date)
	return w.MarshalJSON()
}

// EncodeState writes the whole document as a single JSON object:
// {accounts, transactions, emis, customPresets, theme}. This is both the
// persistence format and the export/backup format.
func EncodeState(w io.Writer, s *State) error {
	var obj jsonObjectWriter
	obj.Append("accounts", emptyIfNil(s.Accounts))
	obj.Append("transactions", emptyIfNil(s.Transactions))
	obj.Append("emis", emptyIfNil(s.EMIs))
	obj.Append("customPresets", emptyIfNil(s.CustomPresets))
	obj.Append("theme", s.Theme)

	data, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode state document: %w", err)
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		return fmt.Errorf("could not encode state document: %w", err)
	}
	pretty.WriteByte('\n')
	_, err = w.Write(pretty.Bytes())
	return err
}

// emptyIfNil keeps nil slices out of the document as `null`.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// DecodeState reads a state document.
//
// Validation is minimal on purpose: `accounts` and `transactions` must be
// present and be arrays, otherwise the whole document is rejected. Older
// backups are tolerated: a missing `emis` or `customPresets` decodes as
// empty, a transaction without a category gets DefaultCategory, and a
// missing theme defaults to dark.
func DecodeState(r io.Reader) (*State, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read state document: %w", err)
	}

	var doc struct {
		Accounts      json.RawMessage `json:"accounts"`
		Transactions  json.RawMessage `json:"transactions"`
		EMIs          []EMI           `json:"emis"`
		CustomPresets []Preset        `json:"customPresets"`
		Theme         Theme           `json:"theme"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if !isJSONArray(doc.Accounts) {
		return nil, fmt.Errorf("%w: accounts must be an array", ErrMalformedDocument)
	}
	if !isJSONArray(doc.Transactions) {
		return nil, fmt.Errorf("%w: transactions must be an array", ErrMalformedDocument)
	}

	s := NewState()
	if err := json.Unmarshal(doc.Accounts, &s.Accounts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if err := json.Unmarshal(doc.Transactions, &s.Transactions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	for i := range s.Transactions {
		// Records written before the category field existed decode blank.
		if s.Transactions[i].Category == "" {
			s.Transactions[i].Category = DefaultCategory
		}
	}
	s.EMIs = doc.EMIs
	s.CustomPresets = doc.CustomPresets
	if doc.Theme == Light {
		s.Theme = Light
	}
	return s, nil
}

// isJSONArray reports whether the raw value is present and is a JSON array.
func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
