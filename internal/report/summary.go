// Package report builds the end-of-run summary for a parsed statement.
package report

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/statement-parser/internal/statement"
)

// Currency is the ISO-4217 code used when displaying totals.
const Currency = "USD"

// Summary holds the figures reported once a statement has been parsed.
type Summary struct {
	Vendor string
	Count  int
	Total  float64
}

// FromStatement reads the transaction count and total from stmt.
func FromStatement(stmt statement.Statement) (Summary, error) {
	transactions, err := stmt.Transactions()
	if err != nil {
		return Summary{}, err
	}
	total, err := stmt.TotalAmount()
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Vendor: stmt.Vendor(),
		Count:  len(transactions),
		Total:  total,
	}, nil
}

// TotalCents rounds Total half away from zero to whole cents.
func (s Summary) TotalCents() int64 {
	return decimal.NewFromFloat(s.Total).Round(2).Shift(2).IntPart()
}

// TotalDisplay renders Total as currency, e.g. "$966.03".
func (s Summary) TotalDisplay() string {
	return money.New(s.TotalCents(), Currency).Display()
}

// String is the completion line logged at the end of a run.
func (s Summary) String() string {
	return fmt.Sprintf("***** DONE: %d transactions with a total value of: %s *****", s.Count, s.TotalDisplay())
}
