package statement

import (
	"strings"

	"casparser/internal/models"
)

var (
	inflowKeywords  = []string{"Purchase", "Investment", "Allotment", "Switch In", "Dividend Reinvestment"}
	outflowKeywords = []string{"Redemption", "Switch Out", "Dividend Payout"}
)

// Partition splits transactions into inflows and outflows by description keyword.
// A description matching both sets lands in both; one matching neither lands in neither.
func Partition(txs []models.Transaction) (inflows, outflows []models.Transaction) {
	inflows, outflows = []models.Transaction{}, []models.Transaction{}
	for _, tx := range txs {
		if containsAny(tx.Description, inflowKeywords) {
			inflows = append(inflows, tx)
		}
		if containsAny(tx.Description, outflowKeywords) {
			outflows = append(outflows, tx)
		}
	}
	return inflows, outflows
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
