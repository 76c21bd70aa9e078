package renderer

import (
	"bytes"

	moneymanager "github.com/SamuelAdmand/Money-Manager"
	md "github.com/nao1215/markdown"
)

// TransactionsMarkdown renders a transaction feed. The caller decides the
// order; the summary view passes the feed newest first.
func TransactionsMarkdown(s *moneymanager.State, txs []moneymanager.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("No recent transactions.")
		return doc.String()
	}

	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		account := "unknown account"
		if a := s.Account(tx.AccountID); a != nil {
			account = a.Name
		}
		rows = append(rows, []string{
			tx.Date.Format("2006-01-02"),
			tx.Description,
			tx.Category,
			account,
			tx.Signed().SignedString(),
			tx.ID,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Description", "Category", "Account", "Amount", "ID"},
		Rows:   rows,
	})

	return doc.String()
}

// PresetsMarkdown renders the category shortcuts of one type, built-ins
// first.
func PresetsMarkdown(s *moneymanager.State, typ moneymanager.TxType) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Presets (" + typ.String() + ")")
	rows := make([][]string, 0)
	for _, p := range s.Presets(typ) {
		rows = append(rows, []string{p.Name, p.Icon})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Icon"},
		Rows:   rows,
	})

	return doc.String()
}
