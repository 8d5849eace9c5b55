package statement

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSample(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "mbna_sample_input.txt"))
	require.NoError(t, err)
	return string(data)
}

// line builds an MBNA transaction line with the fixed column gaps.
func line(txDate, postedDate, rest string) string {
	return "       " + txDate + "       " + postedDate + "   " + rest
}

func TestNewMbnaStatement_Empty(t *testing.T) {
	stmt, err := NewMbnaStatement("", DefaultOptions())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInitialization))
	assert.Nil(t, stmt)
}

func TestMbnaStatement_SampleFile(t *testing.T) {
	stmt, err := NewMbnaStatement(loadSample(t), DefaultOptions())
	require.NoError(t, err)

	transactions, err := stmt.Transactions()
	require.NoError(t, err)
	assert.Len(t, transactions, 35)

	total, err := stmt.TotalAmount()
	require.NoError(t, err)
	assert.InDelta(t, 966.03, total, 1e-6)
	assert.Equal(t, SumAmounts(transactions), total)

	first := transactions[0]
	assert.Equal(t, Transaction{
		PostedYear:      "2011",
		PostedMonth:     "February",
		PostedDay:       "3",
		TransactionDate: "02/01",
		Establishment:   "CORNER BAKERY CAFE",
		City:            "VANCOUVER",
		StateProv:       "BC",
		RefNum:          4821,
		AcctNum:         7730,
		Amount:          16.26,
	}, first)

	assert.Equal(t, "NORTH-VANCOUVER", transactions[6].City)
	assert.Equal(t, "CHEVRON 0091", transactions[6].Establishment)
	assert.Equal(t, "March", transactions[34].PostedMonth)
}

func TestMbnaStatement_Memoized(t *testing.T) {
	stmt, err := NewMbnaStatement(loadSample(t), DefaultOptions())
	require.NoError(t, err)

	first, err := stmt.Transactions()
	require.NoError(t, err)
	second, err := stmt.Transactions()
	require.NoError(t, err)

	_, err = stmt.TotalAmount()
	require.NoError(t, err)
	_, err = stmt.Render("")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, second, 35)
	assert.Same(t, &first[0], &second[0])
	assert.Equal(t, 1, stmt.scans)
}

func TestMbnaStatement_NoTransactionsScansOnce(t *testing.T) {
	stmt, err := NewMbnaStatement("header only\n\nfooter", DefaultOptions())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		transactions, err := stmt.Transactions()
		require.NoError(t, err)
		assert.Empty(t, transactions)
	}

	total, err := stmt.TotalAmount()
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
	assert.Equal(t, 1, stmt.scans)
}

func TestMbnaStatement_LineShapes(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		match bool
	}{
		{"well formed", line("01/02", "01/04", "GROCER CO   VICTORIA  BC 1234 5678 $5.00"), true},
		{"whole dollar amount", line("01/02", "01/04", "GROCER CO VICTORIA BC 1234 5678 $5"), true},
		{"cents without dollars", line("01/02", "01/04", "GROCER CO VICTORIA BC 1234 5678 $.50"), true},
		{"trailing decimal point", line("01/02", "01/04", "GROCER CO VICTORIA BC 1234 5678 $5."), true},
		{"bare decimal point", line("01/02", "01/04", "GROCER CO VICTORIA BC 1234 5678 $."), false},
		{"two decimal points", line("01/02", "01/04", "GROCER CO VICTORIA BC 1234 5678 $5.0.1"), false},
		{"hyphenated city", line("01/02", "01/04", "GAS BAR  PORT-MOODY  BC 1234 5678 $40.10"), true},
		{"trailing space", line("01/02", "01/04", "GROCER CO VICTORIA BC 1234 5678 $5.00 "), false},
		{"six leading spaces", "      01/02       01/04   GROCER CO VICTORIA BC 1234 5678 $5.00", false},
		{"lowercase province", line("01/02", "01/04", "GROCER CO VICTORIA bc 1234 5678 $5.00"), false},
		{"three digit ref", line("01/02", "01/04", "GROCER CO VICTORIA BC 123 5678 $5.00"), false},
		{"missing dollar sign", line("01/02", "01/04", "GROCER CO VICTORIA BC 1234 5678 5.00"), false},
		{"no establishment", line("01/02", "01/04", "VICTORIA BC 1234 5678 $5.00"), false},
		{"whitespace only", "   ", false},
		{"newline only", "\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := NewMbnaStatement(tt.line, DefaultOptions())
			require.NoError(t, err)

			transactions, err := stmt.Transactions()
			require.NoError(t, err)
			if tt.match {
				assert.Len(t, transactions, 1)
			} else {
				assert.Empty(t, transactions)
			}
		})
	}
}

func TestMbnaStatement_FieldValues(t *testing.T) {
	text := line("12/30", "01/05", "THE OLD SPAGHETTI FACTORY   GASTOWN  BC 0042 0007 $123.4")
	stmt, err := NewMbnaStatement(text, Options{PostedYear: "2012"})
	require.NoError(t, err)

	transactions, err := stmt.Transactions()
	require.NoError(t, err)
	require.Len(t, transactions, 1)

	tx := transactions[0]
	assert.Equal(t, "2012", tx.PostedYear)
	assert.Equal(t, "January", tx.PostedMonth)
	assert.Equal(t, "5", tx.PostedDay)
	assert.Equal(t, "12/30", tx.TransactionDate)
	assert.Equal(t, "THE OLD SPAGHETTI FACTORY", tx.Establishment)
	assert.Equal(t, "GASTOWN", tx.City)
	assert.Equal(t, 42, tx.RefNum)
	assert.Equal(t, 7, tx.AcctNum)
	assert.Equal(t, 123.4, tx.Amount)
}

func TestMbnaStatement_AmountForms(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   float64
	}{
		{"cents only", "$.50", 0.5},
		{"trailing point", "$5.", 5},
		{"whole dollars", "$12", 12},
		{"dollars and cents", "$12.07", 12.07},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := NewMbnaStatement(line("01/02", "01/04", "GROCER CO VICTORIA BC 1234 5678 "+tt.amount), Options{})
			require.NoError(t, err)

			transactions, err := stmt.Transactions()
			require.NoError(t, err)
			require.Len(t, transactions, 1)
			assert.Equal(t, tt.want, transactions[0].Amount)
		})
	}
}

func TestMbnaStatement_CRLF(t *testing.T) {
	text := strings.Join([]string{
		"HEADER",
		line("01/02", "01/04", "GROCER CO VICTORIA BC 1234 5678 $5.00"),
		line("01/03", "01/05", "BOOK SHOP NANAIMO BC 1235 5678 $7.25"),
	}, "\r\n")

	stmt, err := NewMbnaStatement(text, DefaultOptions())
	require.NoError(t, err)

	total, err := stmt.TotalAmount()
	require.NoError(t, err)
	assert.InDelta(t, 12.25, total, 1e-9)
}

func TestMbnaStatement_InvalidPostedDateAborts(t *testing.T) {
	text := strings.Join([]string{
		line("01/02", "01/04", "GROCER CO VICTORIA BC 1234 5678 $5.00"),
		line("01/03", "13/05", "BOOK SHOP NANAIMO BC 1235 5678 $7.25"),
		line("01/04", "01/06", "CAFE DELI VICTORIA BC 1236 5678 $3.00"),
	}, "\n")

	stmt, err := NewMbnaStatement(text, DefaultOptions())
	require.NoError(t, err)

	transactions, err := stmt.Transactions()
	require.Error(t, err)
	assert.Nil(t, transactions)

	var dateErr *InvalidDateError
	require.True(t, errors.As(err, &dateErr))
	assert.Equal(t, "13/05", dateErr.Value)
	assert.Contains(t, err.Error(), "line 2")

	_, err = stmt.TotalAmount()
	assert.True(t, errors.As(err, &dateErr))
	_, err = stmt.Render("")
	assert.True(t, errors.As(err, &dateErr))
	assert.Equal(t, 1, stmt.scans)
}

func TestMbnaStatement_Render(t *testing.T) {
	t.Run("no transactions renders header only", func(t *testing.T) {
		stmt, err := NewMbnaStatement("nothing to see", DefaultOptions())
		require.NoError(t, err)

		out, err := stmt.Render("")
		require.NoError(t, err)
		assert.Equal(t,
			"posted_year; posted_month; posted_day; transaction_date; establishment; city; stateprov; ref_num; acct_num; amount",
			out)
	})

	t.Run("one transaction renders two lines", func(t *testing.T) {
		stmt, err := NewMbnaStatement(line("02/14", "02/16", "CORNER BAKERY CAFE   VANCOUVER   BC 4821 7730 $12.45"), DefaultOptions())
		require.NoError(t, err)

		out, err := stmt.Render("|")
		require.NoError(t, err)

		lines := strings.Split(out, "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, strings.Join(FieldNames(), "|"), lines[0])
		assert.Equal(t, "2011|February|16|02/14|CORNER BAKERY CAFE|VANCOUVER|BC|4821|7730|12.45", lines[1])
	})

	t.Run("rows follow source order", func(t *testing.T) {
		stmt, err := NewMbnaStatement(loadSample(t), DefaultOptions())
		require.NoError(t, err)

		out, err := stmt.Render("")
		require.NoError(t, err)

		lines := strings.Split(out, "\n")
		require.Len(t, lines, 36)
		assert.True(t, strings.HasPrefix(lines[1], "2011; February; 3; 02/01; CORNER BAKERY CAFE; "))
		assert.True(t, strings.HasSuffix(lines[35], "; 371.16"))
	})
}

func TestMbnaStatement_Vendor(t *testing.T) {
	stmt, err := NewMbnaStatement("x", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, VendorMBNA, stmt.Vendor())
	assert.Equal(t, 1, stmt.Lines())
	assert.Equal(t, "x", stmt.Text())
}
