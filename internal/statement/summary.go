package statement

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"casparser/internal/models"
)

var ErrEmptyPortfolio = errors.New("no portfolio summary lines found")

var (
	summaryMarker = regexp.MustCompile(`\b(Mutual Fund|MF|MUTUAL FUND)\b`)
	numericToken  = regexp.MustCompile(`^\(?[+-]?[\d,]*\.?\d+\)?$`)
)

// SummaryCandidate is a portfolio summary line split into its three parts.
type SummaryCandidate struct {
	Line        int
	Text        string
	FundHouse   string
	CostToken   string
	MarketToken string
}

// ClassifySummary recognizes lines such as "Acme Mutual Fund 1,000.00 1,150.00".
// Lines starting with "RMF" are retirement fund rows and never qualify.
func ClassifySummary(line string) (SummaryCandidate, bool) {
	if strings.HasPrefix(strings.TrimSpace(line), "RMF") {
		return SummaryCandidate{}, false
	}
	fields := strings.Fields(line)
	n := len(fields)
	if n < 3 {
		return SummaryCandidate{}, false
	}
	// exactly two trailing values: transaction rows carry three or four
	if !numericToken.MatchString(fields[n-2]) || !numericToken.MatchString(fields[n-1]) || numericToken.MatchString(fields[n-3]) {
		return SummaryCandidate{}, false
	}
	fundHouse := strings.Join(fields[:n-2], " ")
	if !summaryMarker.MatchString(fundHouse) {
		return SummaryCandidate{}, false
	}
	return SummaryCandidate{
		Text:        line,
		FundHouse:   fundHouse,
		CostToken:   fields[n-2],
		MarketToken: fields[n-1],
	}, true
}

// Aggregate values every candidate and closes the table with the Total row.
// Any malformed value aborts the whole table: a wrong total is worse than none.
func Aggregate(candidates []SummaryCandidate) (models.PortfolioTable, error) {
	if len(candidates) == 0 {
		return models.PortfolioTable{}, ErrEmptyPortfolio
	}
	rows := make([]models.PortfolioRow, 0, len(candidates))
	for _, c := range candidates {
		cost, err := requireValue(c.CostToken)
		if err != nil {
			return models.PortfolioTable{}, fmt.Errorf("line %d %q: cost value: %w", c.Line, c.Text, err)
		}
		market, err := requireValue(c.MarketToken)
		if err != nil {
			return models.PortfolioTable{}, fmt.Errorf("line %d %q: market value: %w", c.Line, c.Text, err)
		}
		rows = append(rows, models.NewPortfolioRow(c.FundHouse, cost, market))
	}
	return models.NewPortfolioTable(rows), nil
}
