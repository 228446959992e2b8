package statement

import (
	"regexp"
	"strings"
	"time"

	"casparser/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const dateLayout = "02-Jan-2006"

var transactionKeywords = []string{
	"Purchase",
	"Investment",
	"Redemption",
	"Allotment",
	"Switch In",
	"Switch Out",
	"Dividend Reinvestment",
	"Dividend Payout",
}

var (
	headingLine     = regexp.MustCompile(`^\S.*\s(?:Mutual Fund|MF|MUTUAL FUND)$`)
	transactionLine = regexp.MustCompile(`\b(\d{2}-[A-Za-z]{3}-\d{4})\s+` +
		`(.*?(?:` + alternation(transactionKeywords) + `).*?)` +
		`((?:\s+\S*\d\S*){3,4})\s*$`)
)

func alternation(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}

// transactionScanner walks the lines in document order. fundHouse is the text of the
// last heading seen and is stamped on every transaction that follows it.
type transactionScanner struct {
	log       *logrus.Logger
	fundHouse string
	txs       []models.Transaction
}

func newTransactionScanner(log *logrus.Logger) *transactionScanner {
	return &transactionScanner{log: log, txs: []models.Transaction{}}
}

func (s *transactionScanner) scan(lineNo int, line string) {
	line = strings.TrimSpace(line)
	if headingLine.MatchString(line) {
		s.fundHouse = line
	}
	if tx, ok := s.transaction(lineNo, line); ok {
		s.txs = append(s.txs, tx)
	}
}

func (s *transactionScanner) transaction(lineNo int, line string) (models.Transaction, bool) {
	m := transactionLine.FindStringSubmatch(line)
	if m == nil {
		return models.Transaction{}, false
	}
	entry := s.log.WithField("line", lineNo)

	date, err := time.Parse(dateLayout, m[1])
	if err != nil {
		entry.Debugf("skipping transaction with invalid date %q: %v", m[1], err)
		return models.Transaction{}, false
	}

	values := strings.Fields(m[3])
	balance, err := Normalize(values[len(values)-1])
	if err != nil || !balance.Valid {
		entry.Debugf("skipping transaction without a readable unit balance %q", values[len(values)-1])
		return models.Transaction{}, false
	}

	tx := models.Transaction{
		FundHouse:   s.fundHouse,
		Date:        date,
		Description: strings.TrimSpace(m[2]),
		Amount:      s.field(entry, "amount", values[0]),
		Units:       s.field(entry, "units", values[1]),
		UnitBalance: balance.Decimal,
	}
	// three values carry no NAV: it is the only one derivable from the others
	if len(values) == 4 {
		tx.NAV = s.field(entry, "nav", values[2])
	}
	return tx, true
}

// field degrades a malformed value to unset instead of dropping the transaction.
func (s *transactionScanner) field(entry *logrus.Entry, name, token string) decimal.NullDecimal {
	v, err := Normalize(token)
	if err != nil {
		entry.WithField("field", name).Debugf("treating value as unset: %v", err)
		return decimal.NullDecimal{}
	}
	return v
}
