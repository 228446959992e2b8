// Package statement extracts the portfolio summary and the transaction history from the
// text lines of a mutual fund consolidated account statement.
package statement

import (
	"strings"
	"sync"

	"casparser/internal/models"

	"github.com/sirupsen/logrus"
)

type Parser struct {
	log *logrus.Logger
}

func NewParser(log *logrus.Logger) *Parser {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Parser{log: log}
}

// SplitLines turns extracted text into the ordered line sequence the parser works on.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

// ParsePortfolio builds the portfolio table from the summary lines.
// It fails with ErrEmptyPortfolio or ErrMalformedNumber.
func (p *Parser) ParsePortfolio(lines []string) (models.PortfolioTable, error) {
	var candidates []SummaryCandidate
	for i, line := range lines {
		if c, ok := ClassifySummary(line); ok {
			c.Line = i + 1
			candidates = append(candidates, c)
		}
	}
	table, err := Aggregate(candidates)
	if err != nil {
		p.log.Warnf("portfolio summary rejected: %v", err)
		return models.PortfolioTable{}, err
	}
	p.log.Debugf("portfolio summary: %d fund houses", len(candidates))
	return table, nil
}

// ParseTransactions returns the transactions in document order. It never fails:
// unreadable fields are unset and unrecognized lines are skipped.
func (p *Parser) ParseTransactions(lines []string) []models.Transaction {
	s := newTransactionScanner(p.log)
	for i, line := range lines {
		s.scan(i+1, line)
	}
	p.log.Debugf("transactions: %d found in %d lines", len(s.txs), len(lines))
	return s.txs
}

// ParseStatement runs the summary and transaction passes concurrently over the same
// lines and partitions the transactions once both are done. When the summary pass
// fails the returned Statement still carries the transactions, with an empty
// portfolio, next to the error.
func (p *Parser) ParseStatement(lines []string) (models.Statement, error) {
	var (
		wg        sync.WaitGroup
		portfolio models.PortfolioTable
		perr      error
		txs       []models.Transaction
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		portfolio, perr = p.ParsePortfolio(lines)
	}()
	go func() {
		defer wg.Done()
		txs = p.ParseTransactions(lines)
	}()
	wg.Wait()

	inflows, outflows := Partition(txs)
	return models.Statement{
		Portfolio:    portfolio,
		Transactions: txs,
		Inflows:      inflows,
		Outflows:     outflows,
	}, perr
}
