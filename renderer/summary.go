// Package renderer turns engine figures into markdown reports for the
// terminal.
package renderer

import (
	"bytes"

	moneymanager "github.com/SamuelAdmand/Money-Manager"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the aggregate figures.
func SummaryMarkdown(t moneymanager.Totals) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Summary")
	doc.PlainText("Spendable Balance: " + t.Spendable.String())

	doc.H2("Breakdown")
	doc.Table(md.TableSet{
		Header: []string{"Figure", "Amount"},
		Rows: [][]string{
			{"Net Worth", t.NetWorth.String()},
			{"Investments", t.Investments.String()},
			{"Debt", t.Debt.String()},
			{"Monthly EMIs", t.EMIs.String()},
			{"Spendable", t.Spendable.String()},
			{"Total Income", t.Income.String()},
			{"Total Expense", t.Expense.String()},
		},
	})

	return doc.String()
}
