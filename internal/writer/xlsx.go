// =============================================================================
// Statement Parser - XLSX Export
// =============================================================================
//
// Writes the transaction table to a single worksheet. The layout matches the
// delimited table: one header row with the canonical field names, then one
// row per transaction in source order. A trailing "Total" row sums the
// amount column with a spreadsheet formula.
//
// =============================================================================

package writer

import (
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/statement-parser/internal/statement"
)

// DefaultSheetName is the worksheet that receives the transactions.
const DefaultSheetName = "Transactions"

// XLSXWriter writes transactions to an Excel workbook.
type XLSXWriter struct {
	// SheetName overrides DefaultSheetName when set.
	SheetName string

	// IncludeTotal appends a SUM row below the data.
	IncludeTotal bool
}

// WriteToFile writes the workbook to path.
func (w *XLSXWriter) WriteToFile(path string, transactions []statement.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, transactions)
}

// Write builds the workbook and writes it to out.
func (w *XLSXWriter) Write(out io.Writer, transactions []statement.Transaction) error {
	f, err := w.build(transactions)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func (w *XLSXWriter) build(transactions []statement.Transaction) (*excelize.File, error) {
	sheet := w.SheetName
	if sheet == "" {
		sheet = DefaultSheetName
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := statement.FieldNames()
	for col, name := range headers {
		if err := setCell(f, sheet, col+1, 1, name); err != nil {
			f.Close()
			return nil, err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", lastHeader, bold); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for i, t := range transactions {
		if err := writeRow(f, sheet, i+2, t); err != nil {
			f.Close()
			return nil, err
		}
	}

	if w.IncludeTotal && len(transactions) > 0 {
		if err := writeTotal(f, sheet, len(transactions), len(headers)); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// writeRow stores one transaction; ref_num, acct_num and amount stay numeric.
func writeRow(f *excelize.File, sheet string, row int, t statement.Transaction) error {
	values := []interface{}{
		t.PostedYear,
		t.PostedMonth,
		t.PostedDay,
		t.TransactionDate,
		t.Establishment,
		t.City,
		t.StateProv,
		t.RefNum,
		t.AcctNum,
		t.Amount,
	}
	for col, v := range values {
		if err := setCell(f, sheet, col+1, row, v); err != nil {
			return err
		}
	}
	return nil
}

func writeTotal(f *excelize.File, sheet string, count, amountCol int) error {
	row := count + 2
	if err := setCell(f, sheet, 1, row, "Total"); err != nil {
		return err
	}

	first, _ := excelize.CoordinatesToCellName(amountCol, 2)
	last, _ := excelize.CoordinatesToCellName(amountCol, count+1)
	cell, _ := excelize.CoordinatesToCellName(amountCol, row)
	if err := f.SetCellFormula(sheet, cell, fmt.Sprintf("SUM(%s:%s)", first, last)); err != nil {
		return fmt.Errorf("failed to write total formula: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("invalid cell (%d,%d): %w", col, row, err)
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("failed to write cell %s: %w", cell, err)
	}
	return nil
}
