package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// TotalLabel is the fund house of the synthetic row closing every PortfolioTable.
const TotalLabel = "Total"

var ErrUndefinedReturn = errors.New("absolute return is undefined for a zero cost value")

var hundred = decimal.NewFromInt(100)

type PortfolioRow struct {
	FundHouse      string              `json:"fund_house"`
	CostValue      decimal.Decimal     `json:"cost_value"`
	MarketValue    decimal.Decimal     `json:"market_value"`
	AbsoluteReturn decimal.NullDecimal `json:"absolute_return_pct"`
}

// NewPortfolioRow derives the absolute return from cost and market value.
func NewPortfolioRow(fundHouse string, cost, market decimal.Decimal) PortfolioRow {
	row := PortfolioRow{FundHouse: fundHouse, CostValue: cost, MarketValue: market}
	if !cost.IsZero() {
		row.AbsoluteReturn = decimal.NewNullDecimal(market.Div(cost).Sub(decimal.NewFromInt(1)).Mul(hundred))
	}
	return row
}

// Return is the absolute return in percent, or ErrUndefinedReturn when the cost value is zero.
func (r PortfolioRow) Return() (decimal.Decimal, error) {
	if !r.AbsoluteReturn.Valid {
		return decimal.Zero, ErrUndefinedReturn
	}
	return r.AbsoluteReturn.Decimal, nil
}

// Gain is market value minus cost value.
func (r PortfolioRow) Gain() decimal.Decimal { return r.MarketValue.Sub(r.CostValue) }

// PortfolioTable holds the per fund house rows followed by exactly one Total row.
type PortfolioTable struct {
	Rows []PortfolioRow `json:"rows"`
}

// NewPortfolioTable appends the Total row computed from the sums of holdings.
func NewPortfolioTable(holdings []PortfolioRow) PortfolioTable {
	cost, market := decimal.Zero, decimal.Zero
	rows := make([]PortfolioRow, 0, len(holdings)+1)
	for _, h := range holdings {
		cost = cost.Add(h.CostValue)
		market = market.Add(h.MarketValue)
		rows = append(rows, h)
	}
	rows = append(rows, NewPortfolioRow(TotalLabel, cost, market))
	return PortfolioTable{Rows: rows}
}

// Holdings returns the rows without the Total row.
func (t PortfolioTable) Holdings() []PortfolioRow {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[:len(t.Rows)-1]
}

func (t PortfolioTable) Total() PortfolioRow {
	if len(t.Rows) == 0 {
		return PortfolioRow{FundHouse: TotalLabel}
	}
	return t.Rows[len(t.Rows)-1]
}
