// Package classify turns free-text category descriptions into categories,
// detecting and decomposing itemized multi-category donations.
package classify

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/RHFBAH/donation-reconciler/internal/model"
)

// keywordEntry pairs a keyword with its category. Slice order is match
// priority on the itemized path, where the first hit wins.
type keywordEntry struct {
	keyword  string
	category model.Category
}

// categoryKeywords is the bilingual category dictionary. The entries and
// their order are load-bearing for behavioral compatibility with the
// platform exports; do not reorder.
var categoryKeywords = []keywordEntry{
	// Arabic
	{"زكاة", model.CategoryZakat},
	{"صدقة", model.CategoryGeneral},
	{"أيتام", model.CategoryOrphans},
	{"يتيم", model.CategoryOrphans},
	{"كفالة", model.CategoryOrphans},
	{"صحة", model.CategoryHealth},
	{"علاج", model.CategoryHealth},
	{"تعليم", model.CategoryEducation},
	{"طلاب", model.CategoryEducation},
	{"غارمين", model.CategoryDebtors},
	{"أسر", model.CategoryProductiveFamilies},
	{"أنسولين", model.CategoryInsulinPumps},
	{"مضخات", model.CategoryInsulinPumps},
	{"اجتماعي", model.CategorySocial},
	{"أثاث", model.CategoryFurniture},
	{"إنساني", model.CategoryHumanitarian},
	{"مساعدات", model.CategoryHumanitarian},
	{"إغاثة", model.CategoryHumanitarian},
	{"عام", model.CategoryGeneral},

	// English, for exports with an English items summary
	{"Zakat", model.CategoryZakat},
	{"Sadaqah", model.CategoryGeneral},
	{"Orphan", model.CategoryOrphans},
	{"Health", model.CategoryHealth},
	{"Medical", model.CategoryHealth},
	{"Education", model.CategoryEducation},
	{"Student", model.CategoryEducation},
	{"Debtor", model.CategoryDebtors},
	{"Family", model.CategoryProductiveFamilies},
	{"Families", model.CategoryProductiveFamilies},
	{"Insulin", model.CategoryInsulinPumps},
	{"Pump", model.CategoryInsulinPumps},
	{"Social", model.CategorySocial},
	{"Furniture", model.CategoryFurniture},
	{"Humanitarian", model.CategoryHumanitarian},
	{"Aid", model.CategoryHumanitarian},
	{"Relief", model.CategoryHumanitarian},
	{"General", model.CategoryGeneral},
}

var (
	// Parts split on ASCII comma, Arabic comma, or newline.
	partSepRe    = regexp.MustCompile("[,،\n]")
	partAmountRe = regexp.MustCompile(`[0-9]+(\.[0-9]+)?`)
)

// splitTolerance is the accepted gap between the sum of itemized part
// amounts and the row's gross amount.
var splitTolerance = decimal.NewFromInt(1)

// SplitItem is one itemized part of a multi-category donation.
type SplitItem struct {
	Category model.Category
	Amount   decimal.Decimal
}

// Result is the classification of one category cell.
type Result struct {
	Category model.Category

	// SplitDetails lists the matched categories of a composite split
	// (Category == CategorySplit with no per-part amounts).
	SplitDetails []model.Category

	// Items holds a validated itemized breakdown; when non-nil the row
	// must be emitted as one donation record per item.
	Items []SplitItem
}

// Classify resolves a category cell against the row's gross amount. The
// itemized path is tried first; otherwise the whole text is scanned for
// category keywords, defaulting to General.
func Classify(text string, gross decimal.Decimal) Result {
	if items, ok := itemized(text, gross); ok {
		return Result{Category: model.CategorySplit, Items: items}
	}

	lower := strings.ToLower(text)
	var found []model.Category
	seen := make(map[model.Category]bool)
	for _, e := range categoryKeywords {
		if !strings.Contains(lower, strings.ToLower(e.keyword)) {
			continue
		}
		if !seen[e.category] {
			seen[e.category] = true
			found = append(found, e.category)
		}
	}

	// General next to specific categories adds no information.
	if len(found) > 1 && seen[model.CategoryGeneral] {
		kept := found[:0]
		for _, c := range found {
			if c != model.CategoryGeneral {
				kept = append(kept, c)
			}
		}
		found = kept
	}

	switch len(found) {
	case 0:
		return Result{Category: model.CategoryGeneral}
	case 1:
		return Result{Category: found[0]}
	}
	return Result{Category: model.CategorySplit, SplitDetails: found}
}

// itemized splits the text on commas/newlines and accepts the breakdown
// only when at least two parts carry both a positive amount and a resolved
// category, and the part amounts sum to within one currency unit of gross.
func itemized(text string, gross decimal.Decimal) ([]SplitItem, bool) {
	parts := partSepRe.Split(text, -1)

	var items []SplitItem
	n := 0
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n++

		amtStr := partAmountRe.FindString(part)
		if amtStr == "" {
			continue
		}
		amt, err := decimal.NewFromString(amtStr)
		if err != nil || !amt.IsPositive() {
			continue
		}
		cat, ok := matchKeyword(part)
		if !ok {
			continue
		}
		items = append(items, SplitItem{Category: cat, Amount: amt})
	}

	if n < 2 || len(items) < 2 {
		return nil, false
	}

	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Amount)
	}
	if sum.Sub(gross).Abs().Cmp(splitTolerance) >= 0 {
		return nil, false
	}
	return items, true
}

// matchKeyword returns the first dictionary category found inside part.
func matchKeyword(part string) (model.Category, bool) {
	lower := strings.ToLower(part)
	for _, e := range categoryKeywords {
		if strings.Contains(lower, strings.ToLower(e.keyword)) {
			return e.category, true
		}
	}
	return "", false
}
