package statement

import (
	"testing"

	"casparser/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	txs := []models.Transaction{
		{Description: "Purchase"},
		{Description: "Redemption"},
		{Description: "Bonus Units"},
		{Description: "Switch In from Acme Liquid"},
		{Description: "Switch Out to Acme Equity"},
		{Description: "Dividend Payout"},
		{Description: "Dividend Reinvestment"},
		{Description: "Redemption of Investment"},
	}
	inflows, outflows := Partition(txs)

	descriptions := func(txs []models.Transaction) []string {
		var out []string
		for _, tx := range txs {
			out = append(out, tx.Description)
		}
		return out
	}
	assert.Equal(t, []string{
		"Purchase",
		"Switch In from Acme Liquid",
		"Dividend Reinvestment",
		"Redemption of Investment",
	}, descriptions(inflows))
	assert.Equal(t, []string{
		"Redemption",
		"Switch Out to Acme Equity",
		"Dividend Payout",
		"Redemption of Investment",
	}, descriptions(outflows))

	// unclassified transactions stay in the full table
	require.Len(t, txs, 8)
	assert.Equal(t, "Bonus Units", txs[2].Description)
}

func TestPartitionEmpty(t *testing.T) {
	inflows, outflows := Partition(nil)
	assert.NotNil(t, inflows)
	assert.NotNil(t, outflows)
	assert.Empty(t, inflows)
	assert.Empty(t, outflows)
}
