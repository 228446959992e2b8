package statement

import (
	"testing"

	"casparser/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySummary(t *testing.T) {
	cases := []struct {
		line      string
		fundHouse string
		cost      string
		market    string
	}{
		{"Acme Mutual Fund 1,000.00 1,150.00", "Acme Mutual Fund", "1,000.00", "1,150.00"},
		{"HDFC MF   5,000.00    4,500.00", "HDFC MF", "5,000.00", "4,500.00"},
		{"ACME MUTUAL FUND 10 20", "ACME MUTUAL FUND", "10", "20"},
		{"Zeta Mutual Fund Direct (100.00) 80.00", "Zeta Mutual Fund Direct", "(100.00)", "80.00"},
	}
	for _, c := range cases {
		got, ok := ClassifySummary(c.line)
		require.True(t, ok, c.line)
		assert.Equal(t, c.fundHouse, got.FundHouse)
		assert.Equal(t, c.cost, got.CostToken)
		assert.Equal(t, c.market, got.MarketToken)
		assert.Equal(t, c.line, got.Text)
	}
}

func TestClassifySummaryRejects(t *testing.T) {
	for _, line := range []string{
		"",
		"Acme Mutual Fund",
		"Mutual Fund 100",
		"RMF Retirement Mutual Fund 5,000.00 5,500.00",
		"Acme Mutual Funds 10 20",
		"SMFX Growth 10 20",
		"Total 25,000.00 25,700.00",
		"Acme Mutual Fund 1,000.00",
		"01-Jan-2023 Purchase via MF 1,000.00 10.000 100.00 10.000",
		"Acme Mutual Fund Cost Value Market Value",
	} {
		_, ok := ClassifySummary(line)
		assert.False(t, ok, "line %q", line)
	}
}

func TestAggregate(t *testing.T) {
	table, err := Aggregate([]SummaryCandidate{
		{Line: 1, FundHouse: "Acme Mutual Fund", CostToken: "1,000.00", MarketToken: "1,150.00"},
		{Line: 2, FundHouse: "Beta MF", CostToken: "2,000.00", MarketToken: "1,800.00"},
		{Line: 3, FundHouse: "Gamma MF", CostToken: "333.33", MarketToken: "400.01"},
	})
	require.NoError(t, err)
	require.Len(t, table.Rows, 4)
	require.Len(t, table.Holdings(), 3)

	total := table.Total()
	assert.Equal(t, models.TotalLabel, total.FundHouse)
	assert.True(t, total.CostValue.Equal(decimal.RequireFromString("3333.33")), "total cost %s", total.CostValue)
	assert.True(t, total.MarketValue.Equal(decimal.RequireFromString("3350.01")), "total market %s", total.MarketValue)

	for _, row := range table.Rows {
		cost, _ := row.CostValue.Float64()
		market, _ := row.MarketValue.Float64()
		ret, err := row.Return()
		require.NoError(t, err, row.FundHouse)
		got, _ := ret.Float64()
		assert.InDelta(t, (market/cost-1)*100, got, 1e-9, row.FundHouse)
	}

	ret, err := table.Rows[0].Return()
	require.NoError(t, err)
	assert.True(t, ret.Equal(decimal.NewFromInt(15)), "acme return %s", ret)
}

func TestAggregateZeroCost(t *testing.T) {
	table, err := Aggregate([]SummaryCandidate{
		{Line: 1, FundHouse: "Free MF", CostToken: "0.00", MarketToken: "10.00"},
	})
	require.NoError(t, err)

	_, err = table.Rows[0].Return()
	assert.ErrorIs(t, err, models.ErrUndefinedReturn)
	_, err = table.Total().Return()
	assert.ErrorIs(t, err, models.ErrUndefinedReturn)
	assert.False(t, table.Total().AbsoluteReturn.Valid)
}

func TestAggregateEmpty(t *testing.T) {
	_, err := Aggregate(nil)
	assert.ErrorIs(t, err, ErrEmptyPortfolio)
}

func TestAggregateMalformed(t *testing.T) {
	_, err := Aggregate([]SummaryCandidate{
		{Line: 1, Text: "Acme MF 10 20", FundHouse: "Acme MF", CostToken: "10", MarketToken: "20"},
		{Line: 7, Text: "Beta MF 1O0 20", FundHouse: "Beta MF", CostToken: "1O0", MarketToken: "20"},
	})
	require.ErrorIs(t, err, ErrMalformedNumber)
	assert.Contains(t, err.Error(), "line 7")
	assert.Contains(t, err.Error(), "Beta MF 1O0 20")

	_, err = Aggregate([]SummaryCandidate{{Line: 2, FundHouse: "Acme MF", CostToken: "10", MarketToken: ""}})
	assert.ErrorIs(t, err, ErrMalformedNumber)
}
