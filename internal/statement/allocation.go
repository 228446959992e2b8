package statement

import (
	"casparser/internal/models"

	"github.com/shopspring/decimal"
)

type Exposure struct {
	FundHouse string              `json:"fund_house"`
	CostValue decimal.Decimal     `json:"cost_value"`
	SharePct  decimal.NullDecimal `json:"share_pct"`
}

// Allocation is the fund house exposure by cost and the split of the total
// market value between money invested and returns.
type Allocation struct {
	Exposures []Exposure      `json:"exposures"`
	Invested  decimal.Decimal `json:"invested"`
	Returns   decimal.Decimal `json:"returns"`
}

func Allocate(table models.PortfolioTable) Allocation {
	total := table.Total()
	a := Allocation{
		Exposures: []Exposure{},
		Invested:  total.CostValue,
		Returns:   total.Gain(),
	}
	for _, h := range table.Holdings() {
		e := Exposure{FundHouse: h.FundHouse, CostValue: h.CostValue}
		if !total.CostValue.IsZero() {
			e.SharePct = decimal.NewNullDecimal(h.CostValue.Div(total.CostValue).Mul(decimal.NewFromInt(100)))
		}
		a.Exposures = append(a.Exposures, e)
	}
	return a
}
