package writer

import (
	"fmt"
	"sort"

	"github.com/ginjaninja78/statement-parser/internal/statement"
)

// Exporter writes a transaction table to a file in one output format.
type Exporter interface {
	WriteToFile(path string, transactions []statement.Transaction) error
	Extension() string
}

// Export format names accepted by ForFormat.
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

// Extension implements Exporter.
func (w *XLSXWriter) Extension() string { return ".xlsx" }

// Extension implements Exporter.
func (w *CSVWriter) Extension() string { return ".csv" }

// ForFormat returns the exporter for a format name.
func ForFormat(format string) (Exporter, error) {
	switch format {
	case FormatXLSX:
		return &XLSXWriter{IncludeTotal: true}, nil
	case FormatCSV:
		return &CSVWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format: %q", format)
	}
}

// Formats lists the supported export format names, sorted.
func Formats() []string {
	formats := []string{FormatXLSX, FormatCSV}
	sort.Strings(formats)
	return formats
}
