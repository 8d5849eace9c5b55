package statement

import (
	"strconv"
	"strings"
)

// =============================================================================
// TRANSACTION RECORD
// =============================================================================

// Field names in canonical order. Render, the header row and the export
// writers all use this order.
const (
	FieldPostedYear      = "posted_year"
	FieldPostedMonth     = "posted_month"
	FieldPostedDay       = "posted_day"
	FieldTransactionDate = "transaction_date"
	FieldEstablishment   = "establishment"
	FieldCity            = "city"
	FieldStateProv       = "stateprov"
	FieldRefNum          = "ref_num"
	FieldAcctNum         = "acct_num"
	FieldAmount          = "amount"
)

// FieldNames returns the ten transaction field names in canonical order.
func FieldNames() []string {
	return []string{
		FieldPostedYear,
		FieldPostedMonth,
		FieldPostedDay,
		FieldTransactionDate,
		FieldEstablishment,
		FieldCity,
		FieldStateProv,
		FieldRefNum,
		FieldAcctNum,
		FieldAmount,
	}
}

// Transaction is one statement line that matched the vendor line pattern.
type Transaction struct {
	PostedYear      string  `csv:"posted_year"`
	PostedMonth     string  `csv:"posted_month"`
	PostedDay       string  `csv:"posted_day"`
	TransactionDate string  `csv:"transaction_date"` // MM/DD as printed
	Establishment   string  `csv:"establishment"`
	City            string  `csv:"city"`
	StateProv       string  `csv:"stateprov"`
	RefNum          int     `csv:"ref_num"`
	AcctNum         int     `csv:"acct_num"`
	Amount          float64 `csv:"amount"`
}

// Values returns the record's fields as strings, in FieldNames order.
func (t Transaction) Values() []string {
	return []string{
		t.PostedYear,
		t.PostedMonth,
		t.PostedDay,
		t.TransactionDate,
		t.Establishment,
		t.City,
		t.StateProv,
		strconv.Itoa(t.RefNum),
		strconv.Itoa(t.AcctNum),
		FormatAmount(t.Amount),
	}
}

// FormatAmount renders an amount with the shortest exact representation,
// keeping a ".0" suffix on whole values (12 -> "12.0", 12.5 -> "12.5").
func FormatAmount(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// =============================================================================
// FORMATTER
// =============================================================================

// DefaultDelimiter separates fields in Render output.
const DefaultDelimiter = "; "

// FormatTable renders a header line followed by one line per transaction.
// Lines are joined with "\n" and carry no trailing newline. An empty
// delimiter selects DefaultDelimiter.
func FormatTable(transactions []Transaction, delimiter string) string {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	lines := make([]string, 0, len(transactions)+1)
	lines = append(lines, strings.Join(FieldNames(), delimiter))
	for _, t := range transactions {
		lines = append(lines, strings.Join(t.Values(), delimiter))
	}

	return strings.Join(lines, "\n")
}
