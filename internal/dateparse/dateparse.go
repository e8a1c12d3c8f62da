// Package dateparse canonicalizes the date cells of donation and bank
// exports into YYYY-MM-DD strings. Ambiguous two-part dates are resolved
// with a batch-level convention inferred once per file, never per row.
package dateparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Convention is the inferred order of ambiguous two-part dates.
type Convention int

const (
	// DayFirst is dd/MM/yyyy, the default when evidence is absent or mixed.
	DayFirst Convention = iota
	// MonthFirst is MM/dd/yyyy.
	MonthFirst
)

// Canonical layout for all output dates.
const layoutISO = "2006-01-02"

var (
	twoPartRe = regexp.MustCompile(`^(\d{1,2})[/\-](\d{1,2})[/\-]\d{4}`)
	isoRe     = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
)

// DetectConvention scans all raw date values of a batch. A first numeric
// group above 12 is conclusive day-first evidence; a second group above 12
// is conclusive month-first evidence. The convention with exclusive
// conclusive evidence wins; otherwise day-first.
func DetectConvention(values []string) Convention {
	monthFirst, dayFirst := 0, 0
	for _, v := range values {
		m := twoPartRe.FindStringSubmatch(strings.TrimSpace(v))
		if m == nil {
			continue
		}
		first, _ := strconv.Atoi(m[1])
		second, _ := strconv.Atoi(m[2])
		if first > 12 {
			dayFirst++
		} else if second > 12 {
			monthFirst++
		}
	}
	if monthFirst > 0 && dayFirst == 0 {
		return MonthFirst
	}
	return DayFirst
}

// Ordered layout lists. ISO comes first in both; the opposite convention's
// slash form is kept as a last resort.
var (
	dayFirstLayouts = []string{
		layoutISO,
		"2006/01/02",
		"02/01/2006",
		"2/1/2006",
		"02-01-2006",
		"01/02/2006",
	}
	monthFirstLayouts = []string{
		layoutISO,
		"2006/01/02",
		"01/02/2006",
		"1/2/2006",
		"01-02-2006",
		"02/01/2006",
	}
	genericLayouts = []string{
		time.RFC3339,
		time.RFC1123,
		time.RFC822,
		"Jan 2, 2006",
		"2 Jan 2006",
		"January 2, 2006",
	}
)

// Canonical parses a raw cell value into YYYY-MM-DD. The second return is
// false when every attempt failed and the current date was substituted;
// callers that keep the silent-default policy ignore it.
func Canonical(raw string, conv Convention) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return today(), false
	}

	// An ISO token anywhere in the value wins, which handles embedded
	// timestamps like "2026-01-20 07:20:31".
	if m := isoRe.FindStringSubmatch(s); m != nil {
		return m[1] + "-" + m[2] + "-" + m[3], true
	}

	layouts := dayFirstLayouts
	if conv == MonthFirst {
		layouts = monthFirstLayouts
	}

	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t.Format(layoutISO), true
		}
		if t, err := time.Parse(l+" 15:04:05", s); err == nil {
			return t.Format(layoutISO), true
		}
		if t, err := time.Parse(l+" 15:04", s); err == nil {
			return t.Format(layoutISO), true
		}
	}

	for _, l := range genericLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t.Format(layoutISO), true
		}
	}

	// Retry with only the part before the first space, for values with
	// trailing noise the layouts above cannot absorb.
	if i := strings.IndexByte(s, ' '); i > 0 {
		head := s[:i]
		for _, l := range layouts {
			if t, err := time.Parse(l, head); err == nil {
				return t.Format(layoutISO), true
			}
		}
	}

	return today(), false
}

func today() string {
	return time.Now().Format(layoutISO)
}
