package statement

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// postedDatePattern is the exact MM/DD shape of a date token.
var postedDatePattern = regexp.MustCompile(`^\d{2}/\d{2}$`)

// PostedDate is a normalized month/day token with its configured year.
type PostedDate struct {
	Year  string
	Month string // full English month name, e.g. "December"
	Day   string // no leading zero, e.g. "5"
}

// DateNormalizer converts MM/DD tokens into PostedDate values.
type DateNormalizer struct {
	// Year is copied verbatim into every PostedDate.
	Year string
}

// NewDateNormalizer returns a normalizer for the given year.
// An empty year selects DefaultPostedYear.
func NewDateNormalizer(year string) DateNormalizer {
	if year == "" {
		year = DefaultPostedYear
	}
	return DateNormalizer{Year: year}
}

// Normalize parses a "MM/DD" token.
//
// A token that is not exactly two digits, a slash and two digits, or whose
// month falls outside 1..12, yields an *InvalidDateError.
func (n DateNormalizer) Normalize(token string) (PostedDate, error) {
	if !postedDatePattern.MatchString(token) {
		return PostedDate{}, &InvalidDateError{Value: token, Reason: "expected MM/DD"}
	}

	monthPart, dayPart, _ := strings.Cut(token, "/")
	month, _ := strconv.Atoi(monthPart)
	day, _ := strconv.Atoi(dayPart)

	if month < 1 || month > 12 {
		return PostedDate{}, &InvalidDateError{Value: token, Reason: "month out of range"}
	}

	return PostedDate{
		Year:  n.Year,
		Month: time.Month(month).String(),
		Day:   strconv.Itoa(day),
	}, nil
}
