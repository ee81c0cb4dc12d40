package ingest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	markerWordsRe  = regexp.MustCompile(`(?i)debe|haber|dr|cr`)
	nonAmountChars = regexp.MustCompile(`[^\d.\-]`)
)

// ParseAmount normalizes a raw amount cell to a signed decimal. It strips
// currency symbols, whitespace, parentheses and debit/credit marker words,
// treats parenthesized, leading-minus and "debe"-marked values as negative,
// and disambiguates European (1.234,56) from Anglo (1,234.56) grouping.
// Returns ErrBadAmount rather than defaulting to zero.
func ParseAmount(c Cell) (decimal.Decimal, error) {
	if c.Kind == CellNumber {
		d, err := decimal.NewFromString(c.Text)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrBadAmount, c.Text)
		}
		return d, nil
	}

	str := strings.TrimSpace(c.String())
	if str == "" {
		return decimal.Zero, ErrBadAmount
	}

	lower := strings.ToLower(str)
	negative := strings.HasPrefix(str, "-") || strings.HasPrefix(str, "(") ||
		strings.Contains(lower, "debe")

	cleaned := strings.NewReplacer("€", "", "$", "", "£", "", "¥", "",
		"(", "", ")", "").Replace(str)
	cleaned = strings.Join(strings.Fields(cleaned), "")
	cleaned = markerWordsRe.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" || cleaned == "-" {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrBadAmount, str)
	}

	hasComma := strings.Contains(cleaned, ",")
	hasDot := strings.Contains(cleaned, ".")

	switch {
	case hasComma && hasDot:
		// The later of the two separators is the decimal point.
		if strings.LastIndex(cleaned, ",") > strings.LastIndex(cleaned, ".") {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case hasComma:
		parts := strings.Split(cleaned, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case hasDot:
		parts := strings.Split(cleaned, ".")
		if len(parts) > 2 || (len(parts) == 2 && len(parts[1]) > 2) {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
		}
	}

	cleaned = nonAmountChars.ReplaceAllString(cleaned, "")

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrBadAmount, str)
	}

	if negative && d.IsPositive() {
		d = d.Neg()
	}
	return d, nil
}
