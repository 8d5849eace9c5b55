package writer

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/ginjaninja78/statement-parser/internal/statement"
)

// CSVWriter writes transactions as comma-separated values. Column names come
// from the csv struct tags on statement.Transaction, so the header row uses
// the canonical field names.
type CSVWriter struct{}

// WriteToFile writes transactions to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, transactions []statement.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, transactions)
}

// Write writes transactions in CSV format to out.
func (w *CSVWriter) Write(out io.Writer, transactions []statement.Transaction) error {
	if transactions == nil {
		transactions = []statement.Transaction{}
	}
	if err := gocsv.Marshal(&transactions, out); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}
