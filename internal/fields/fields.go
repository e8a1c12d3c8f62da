// Package fields extracts canonical semantic values from rows whose column
// headers follow no reliable schema. Headers are matched by case-insensitive
// keyword containment against small ordered synonym lists, bilingual where
// the exports are.
package fields

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Row is one header-keyed record. Headers preserves the source column
// order so that, among columns matching the same keyword, the first
// encountered wins.
type Row struct {
	Headers []string
	Values  map[string]string
}

// Find returns the trimmed value of the first column whose header contains
// one of the keywords, case-insensitive, in keyword priority order. The
// first matching header decides even when its cell is empty.
func (r Row) Find(keywords []string) string {
	for _, kw := range keywords {
		k := strings.ToLower(kw)
		for _, h := range r.Headers {
			if strings.Contains(strings.ToLower(h), k) {
				return strings.TrimSpace(r.Values[h])
			}
		}
	}
	return ""
}

// FindPreferExact is Find with two refinements for identifier-style
// lookups: an exact header match is tried before containment, and empty
// cells are skipped so a lower-priority column can still supply the value.
func (r Row) FindPreferExact(keywords []string) string {
	for _, kw := range keywords {
		k := strings.ToLower(kw)
		header := ""
		for _, h := range r.Headers {
			if strings.ToLower(h) == k {
				header = h
				break
			}
		}
		if header == "" {
			for _, h := range r.Headers {
				if strings.Contains(strings.ToLower(h), k) {
					header = h
					break
				}
			}
		}
		if header != "" && r.Values[header] != "" {
			return r.Values[header]
		}
	}
	return ""
}

// Amount parses a raw cell into a non-negative decimal: every character
// that is not a digit or decimal point is stripped before parsing.
// Unparseable or empty values become zero, never an error.
func Amount(raw string) decimal.Decimal {
	clean := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' {
			return r
		}
		return -1
	}, raw)
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero
	}
	return d
}
