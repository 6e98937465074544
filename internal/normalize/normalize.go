// Package normalize converts raw bank CSV fields into typed values. Bank
// exports format amounts, dates and transaction types inconsistently, so
// every parser here accepts the superset and reports failure instead of
// guessing.
package normalize

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/internal/model"
)

// nonAmount matches every character that cannot appear in a plain signed
// decimal number. Currency symbols, spaces and parentheses are stripped;
// thousands separators are removed beforehand.
var nonAmount = regexp.MustCompile(`[^0-9.\-]`)

// ParseAmount parses a raw amount cell into a decimal. It strips thousands
// separators and any non-numeric decoration ("INR 1,234.56" -> 1234.56).
// The sign is preserved. Returns false for empty or non-numeric content.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.ReplaceAll(raw, ",", "")
	s = nonAmount.ReplaceAllString(s, "")
	if s == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// dayFirstLayouts are tried first for exports that write dates day-first.
var dayFirstLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02.01.2006",
	"02/01/06",
	"2 Jan 2006",
	"02 Jan 2006",
}

// generalLayouts cover ISO and month-first conventions used by other banks.
var generalLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	time.RFC3339,
}

// ParseDate parses a raw date cell. When dayFirst is set the day-first
// layouts are attempted before the general ones, otherwise the order is
// reversed. Returns false when no layout matches.
func ParseDate(raw string, dayFirst bool) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	first, second := dayFirstLayouts, generalLayouts
	if !dayFirst {
		first, second = generalLayouts, dayFirstLayouts
	}

	for _, layout := range first {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range second {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var (
	debitWords  = []string{"debit", "withdraw", "payment", "dr"}
	creditWords = []string{"credit", "deposit", "cr"}
)

// ParseDirection classifies a raw debit/credit cell. Three tiers: explicit
// vocabulary, then the sign of a numeric value, then unknown.
func ParseDirection(raw string) (model.Direction, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", false
	}

	for _, w := range debitWords {
		if strings.Contains(s, w) {
			return model.DirectionDebit, true
		}
	}
	for _, w := range creditWords {
		if strings.Contains(s, w) {
			return model.DirectionCredit, true
		}
	}

	if d, err := decimal.NewFromString(s); err == nil {
		if d.IsNegative() {
			return model.DirectionDebit, true
		}
		return model.DirectionCredit, true
	}
	return "", false
}
