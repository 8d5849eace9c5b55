// =============================================================================
// Statement Parser - Statement Abstraction
// =============================================================================
//
// This package turns the text export of a bank statement into structured
// transaction records. Every supported vendor format implements the
// Statement interface and registers a Factory under its vendor name.
//
// FLOW:
//   raw text -> lines -> vendor line pattern -> Transaction records
//   Transaction records -> TotalAmount / Render
//
// The package performs no I/O and no logging. Callers hand it the full text
// of a statement and decide what to do with the errors it returns.
//
// =============================================================================

package statement

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// ERRORS
// =============================================================================

// ErrInitialization is returned when a statement is built from empty text.
var ErrInitialization = errors.New("invalid statement: empty text")

// ErrUnknownVendor is returned by New for a vendor that was never registered.
var ErrUnknownVendor = errors.New("unknown statement vendor")

// InvalidDateError reports a posted-date token that could not be normalized.
type InvalidDateError struct {
	// Value is the token as it appeared on the statement line.
	Value string

	// Reason says which check failed.
	Reason string
}

// Error implements the error interface.
func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: %s", e.Value, e.Reason)
}

// =============================================================================
// STATEMENT INTERFACE
// =============================================================================

// Statement is one parsed statement export.
//
// Implementations extract their transactions at most once. The first call
// to Transactions (directly or through TotalAmount/Render) scans the text;
// every later call returns the cached result, including a cached error.
type Statement interface {
	// Vendor returns the registered name of the statement format.
	Vendor() string

	// Transactions returns the extracted records in source-line order.
	Transactions() ([]Transaction, error)

	// TotalAmount returns the sum of Amount across all transactions.
	TotalAmount() (float64, error)

	// Render returns the transactions as a delimited table with a header row.
	// An empty delimiter selects DefaultDelimiter.
	Render(delimiter string) (string, error)
}

// Options carries per-statement settings shared by all vendor formats.
type Options struct {
	// PostedYear is the year stamped on every normalized posted date.
	// Statement lines carry only month and day.
	PostedYear string
}

// DefaultPostedYear is used when Options.PostedYear is empty.
const DefaultPostedYear = "2011"

// DefaultOptions returns the options used when the caller has no preference.
func DefaultOptions() Options {
	return Options{PostedYear: DefaultPostedYear}
}

// =============================================================================
// SHARED STATEMENT STATE
// =============================================================================

// source holds the raw text and its line-split view. Vendor types embed it.
type source struct {
	text  string
	lines []string
}

// newSource validates and splits the statement text.
func newSource(text string) (source, error) {
	if text == "" {
		return source{}, ErrInitialization
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return source{text: text, lines: lines}, nil
}

// Text returns the raw statement text.
func (s source) Text() string {
	return s.text
}

// Lines returns the number of lines in the statement text.
func (s source) Lines() int {
	return len(s.lines)
}

// =============================================================================
// AGGREGATION
// =============================================================================

// SumAmounts adds up the Amount field of every transaction.
// No rounding is applied; an empty slice sums to 0.
func SumAmounts(transactions []Transaction) float64 {
	total := 0.0
	for _, t := range transactions {
		total += t.Amount
	}
	return total
}
