package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Transaction struct {
	FundHouse   string              `json:"fund_house,omitempty"`
	Date        time.Time           `json:"date"`
	Description string              `json:"description"`
	Amount      decimal.NullDecimal `json:"amount"`
	Units       decimal.NullDecimal `json:"units"`
	NAV         decimal.NullDecimal `json:"nav"`
	UnitBalance decimal.Decimal     `json:"unit_balance"`
}

// HasFundHouse reports whether a heading line preceded the transaction.
// Heading text is never empty, so the zero value means unset.
func (t Transaction) HasFundHouse() bool { return t.FundHouse != "" }

type Statement struct {
	Portfolio    PortfolioTable `json:"portfolio"`
	Transactions []Transaction  `json:"transactions"`
	Inflows      []Transaction  `json:"inflows"`
	Outflows     []Transaction  `json:"outflows"`
}
