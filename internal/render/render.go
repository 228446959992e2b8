// Package render formats parsed statements as markdown for terminal display.
package render

import (
	"bytes"
	"fmt"

	"casparser/internal/models"
	"casparser/internal/statement"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

const unset = "-"

func money(d decimal.Decimal) string { return d.StringFixed(2) }

func nullable(d decimal.NullDecimal, places int32) string {
	if !d.Valid {
		return unset
	}
	return d.Decimal.StringFixed(places)
}

func text(s string) string {
	if s == "" {
		return unset
	}
	return s
}

// Portfolio renders the portfolio table with the Total row in bold.
func Portfolio(t models.PortfolioTable) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Summary")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Fund House", "Cost Value", "Market Value", "Return %"},
	}
	for _, h := range t.Holdings() {
		table.Rows = append(table.Rows, []string{
			text(h.FundHouse),
			money(h.CostValue),
			money(h.MarketValue),
			nullable(h.AbsoluteReturn, 2),
		})
	}
	total := t.Total()
	table.Rows = append(table.Rows, []string{
		md.Bold(total.FundHouse),
		md.Bold(money(total.CostValue)),
		md.Bold(money(total.MarketValue)),
		md.Bold(nullable(total.AbsoluteReturn, 2)),
	})
	doc.Table(table)

	return doc.String()
}

func transactionTable(txs []models.Transaction) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight, md.AlignLeft, md.AlignLeft, md.AlignLeft,
			md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{"#", "Date", "Fund House", "Description", "Amount", "Units", "NAV", "Balance"},
	}
	for i, tx := range txs {
		table.Rows = append(table.Rows, []string{
			fmt.Sprint(i + 1),
			tx.Date.Format("2006-01-02"),
			text(tx.FundHouse),
			text(tx.Description),
			nullable(tx.Amount, 2),
			nullable(tx.Units, 3),
			nullable(tx.NAV, 4),
			tx.UnitBalance.StringFixed(3),
		})
	}
	return table
}

// Transactions renders purchases and redemptions as separate sections. An empty
// section is omitted.
func Transactions(st models.Statement) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	doc.PlainText(fmt.Sprintf("%d transactions, %d purchases, %d redemptions.",
		len(st.Transactions), len(st.Inflows), len(st.Outflows)))

	if len(st.Inflows) > 0 {
		doc.H2("Purchases")
		doc.Table(transactionTable(st.Inflows))
	}
	if len(st.Outflows) > 0 {
		doc.H2("Redemptions")
		doc.Table(transactionTable(st.Outflows))
	}
	return doc.String()
}

func Allocation(a statement.Allocation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Allocation")
	exposures := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Fund House", "Cost Value", "Share %"},
	}
	for _, e := range a.Exposures {
		exposures.Rows = append(exposures.Rows, []string{text(e.FundHouse), money(e.CostValue), nullable(e.SharePct, 2)})
	}
	doc.Table(exposures)

	doc.H2("Invested vs Returns")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Component", "Value"},
		Rows: [][]string{
			{"Invested", money(a.Invested)},
			{"Returns", money(a.Returns)},
		},
	})
	return doc.String()
}
