// Package model defines the expense record type and the input rules
// every write path must satisfy.
package model

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used on the wire, in storage,
// and in all rendered output.
const DateLayout = "2006-01-02"

// Expense is one persisted expense record.
type Expense struct {
	ID        int64
	Amount    decimal.Decimal
	Memo      string
	CreatedOn time.Time
}

// amountPattern enforces 1-4 integer digits and exactly 2 fractional
// digits, matching the NUMERIC(6,2) storage column.
var amountPattern = regexp.MustCompile(`^\d{1,4}\.\d{2}$`)

var idPattern = regexp.MustCompile(`^\d+$`)

// ParseAmount validates and parses an amount string such as "14.56".
// The value must match the 4.2 digit pattern and be strictly positive.
func ParseAmount(s string) (decimal.Decimal, error) {
	if !amountPattern.MatchString(s) {
		return decimal.Decimal{}, fmt.Errorf("amount %q must have 1-4 integer digits and exactly 2 decimal digits", s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("amount %q must be at least 0.01", s)
	}
	return d, nil
}

// ValidateMemo checks that a memo is present and starts with a
// non-whitespace character.
func ValidateMemo(memo string) error {
	if memo == "" {
		return fmt.Errorf("memo must not be empty")
	}
	first, _ := utf8.DecodeRuneInString(memo)
	if unicode.IsSpace(first) {
		return fmt.Errorf("memo %q must not start with whitespace", memo)
	}
	return nil
}

// ParseID parses an expense id argument: one or more digits, no sign,
// no decimal point.
func ParseID(s string) (int64, error) {
	if !idPattern.MatchString(s) {
		return 0, fmt.Errorf("id %q must be a positive integer", s)
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing id %q: %w", s, err)
	}
	return id, nil
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q must look like YYYY-MM-DD", s)
	}
	return d, nil
}

// Today returns the current calendar date with the time component
// stripped, in the local time zone's day.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
