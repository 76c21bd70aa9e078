package renderer

import (
	"bytes"

	moneymanager "github.com/SamuelAdmand/Money-Manager"
	md "github.com/nao1215/markdown"
)

// AccountsMarkdown renders every account with its running balance, in
// insertion order.
func AccountsMarkdown(s *moneymanager.State) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Accounts")
	if len(s.Accounts) == 0 {
		doc.PlainText("No accounts yet.")
		return doc.String()
	}

	rows := make([][]string, 0, len(s.Accounts))
	for _, a := range s.Accounts {
		limit := "-"
		if a.Type == moneymanager.Credit && !a.Limit.IsZero() {
			limit = a.Limit.String()
		}
		rows = append(rows, []string{
			a.Name,
			a.Type.String(),
			s.Balance(a.ID).String(),
			limit,
			a.ID,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Type", "Balance", "Limit", "ID"},
		Rows:   rows,
	})

	return doc.String()
}

// EMIsMarkdown renders the recurring obligations and their monthly total.
func EMIsMarkdown(s *moneymanager.State) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Monthly EMIs")
	if len(s.EMIs) == 0 {
		doc.PlainText("No EMIs recorded.")
		return doc.String()
	}

	var total moneymanager.Money
	rows := make([][]string, 0, len(s.EMIs))
	for _, e := range s.EMIs {
		account := "unknown account"
		if a := s.Account(e.AccountID); a != nil {
			account = a.Name
		}
		rows = append(rows, []string{e.Description, account, e.Amount.String(), e.ID})
		total = total.Add(e.Amount)
	}
	doc.Table(md.TableSet{
		Header: []string{"Description", "Account", "Amount", "ID"},
		Rows:   rows,
	})
	doc.PlainText("Total monthly burden: " + total.String())

	return doc.String()
}
