// =============================================================================
// Statement Parser - MBNA Text Statement
// =============================================================================
//
// MBNA text exports interleave headers, footers and blank lines with fixed
// layout transaction lines such as:
//
//       02/14       02/16   CORNER BAKERY CAFE   VANCOUVER   BC 4821 7730 $12.45
//
// Only lines matching transactionLinePattern become transactions. Anything
// else is skipped without error.
//
// =============================================================================

package statement

import (
	"fmt"
	"regexp"
	"strconv"
)

// VendorMBNA is the registry name of the MBNA text format.
const VendorMBNA = "mbna"

func init() {
	Register(VendorMBNA, func(text string, opts Options) (Statement, error) {
		return NewMbnaStatement(text, opts)
	})
}

// transactionLinePattern is the full shape of one MBNA transaction line.
var transactionLinePattern = regexp.MustCompile(`^` +
	`\s{7}` +
	`(?P<transaction_date>\d{2}/\d{2})` +
	`\s{7}` +
	`(?P<posted_date>\d{2}/\d{2})` +
	`\s{3}` +
	`(?P<establishment>.+?\S)` +
	`\s+?` +
	`(?P<city>[\w-]+)` +
	`\s+?` +
	`(?P<stateprov>[A-Z]{2})` +
	`\s+?` +
	`(?P<ref_num>\d{4})` +
	`\s+?` +
	`(?P<acct_num>\d{4})` +
	`\s+?` +
	`\$(?P<amount>\d+\.?\d*|\.\d+)` +
	`$`)

// Submatch indexes, resolved once from the pattern's group names.
var (
	groupTransactionDate = transactionLinePattern.SubexpIndex("transaction_date")
	groupPostedDate      = transactionLinePattern.SubexpIndex("posted_date")
	groupEstablishment   = transactionLinePattern.SubexpIndex("establishment")
	groupCity            = transactionLinePattern.SubexpIndex("city")
	groupStateProv       = transactionLinePattern.SubexpIndex("stateprov")
	groupRefNum          = transactionLinePattern.SubexpIndex("ref_num")
	groupAcctNum         = transactionLinePattern.SubexpIndex("acct_num")
	groupAmount          = transactionLinePattern.SubexpIndex("amount")
)

// MbnaStatement is a Statement for MBNA text exports.
//
// It is not safe for concurrent use; each instance belongs to one caller.
type MbnaStatement struct {
	source

	dates DateNormalizer

	// Extraction result, filled on first access.
	extracted    bool
	transactions []Transaction
	err          error

	// scans counts extraction passes over the text.
	scans int
}

// NewMbnaStatement validates text and prepares it for extraction.
// It returns ErrInitialization when text is empty.
func NewMbnaStatement(text string, opts Options) (*MbnaStatement, error) {
	src, err := newSource(text)
	if err != nil {
		return nil, err
	}

	return &MbnaStatement{
		source: src,
		dates:  NewDateNormalizer(opts.PostedYear),
	}, nil
}

// Vendor implements Statement.
func (s *MbnaStatement) Vendor() string {
	return VendorMBNA
}

// Transactions implements Statement. The text is scanned on the first call
// only; later calls return the same slice (or the same error).
func (s *MbnaStatement) Transactions() ([]Transaction, error) {
	if !s.extracted {
		s.transactions, s.err = s.extract()
		s.extracted = true
	}
	return s.transactions, s.err
}

// TotalAmount implements Statement.
func (s *MbnaStatement) TotalAmount() (float64, error) {
	transactions, err := s.Transactions()
	if err != nil {
		return 0, err
	}
	return SumAmounts(transactions), nil
}

// Render implements Statement.
func (s *MbnaStatement) Render(delimiter string) (string, error) {
	transactions, err := s.Transactions()
	if err != nil {
		return "", err
	}
	return FormatTable(transactions, delimiter), nil
}

// extract scans every line. A posted date that fails normalization aborts
// the scan and no partial result is kept.
func (s *MbnaStatement) extract() ([]Transaction, error) {
	s.scans++

	transactions := []Transaction{}
	for i, line := range s.lines {
		m := transactionLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		t, err := s.parseMatch(m)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		transactions = append(transactions, t)
	}

	return transactions, nil
}

// parseMatch converts the submatches of one transaction line.
func (s *MbnaStatement) parseMatch(m []string) (Transaction, error) {
	posted, err := s.dates.Normalize(m[groupPostedDate])
	if err != nil {
		return Transaction{}, err
	}

	refNum, err := strconv.Atoi(m[groupRefNum])
	if err != nil {
		return Transaction{}, fmt.Errorf("ref_num %q: %w", m[groupRefNum], err)
	}
	acctNum, err := strconv.Atoi(m[groupAcctNum])
	if err != nil {
		return Transaction{}, fmt.Errorf("acct_num %q: %w", m[groupAcctNum], err)
	}
	amount, err := strconv.ParseFloat(m[groupAmount], 64)
	if err != nil {
		return Transaction{}, fmt.Errorf("amount %q: %w", m[groupAmount], err)
	}

	return Transaction{
		PostedYear:      posted.Year,
		PostedMonth:     posted.Month,
		PostedDay:       posted.Day,
		TransactionDate: m[groupTransactionDate],
		Establishment:   m[groupEstablishment],
		City:            m[groupCity],
		StateProv:       m[groupStateProv],
		RefNum:          refNum,
		AcctNum:         acctNum,
		Amount:          amount,
	}, nil
}
