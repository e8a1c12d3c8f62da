package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func row(pairs ...string) Row {
	r := Row{Values: map[string]string{}}
	for i := 0; i < len(pairs); i += 2 {
		r.Headers = append(r.Headers, pairs[i])
		r.Values[pairs[i]] = pairs[i+1]
	}
	return r
}

func TestFindKeywordPriority(t *testing.T) {
	r := row("Amount", "50", "Gross Amount", "100")

	// "Gross" outranks "Amount" regardless of column order.
	assert.Equal(t, "100", r.Find(AmountKeywords))
}

func TestFindContainment(t *testing.T) {
	r := row("Total Donation Value (KWD)", " 75.500 ")
	assert.Equal(t, "75.500", r.Find(AmountKeywords))
}

func TestFindCaseInsensitive(t *testing.T) {
	r := row("GROSS", "10")
	assert.Equal(t, "10", r.Find(AmountKeywords))
}

func TestFindArabicHeader(t *testing.T) {
	r := row("مبلغ التبرع", "250")
	assert.Equal(t, "250", r.Find(AmountKeywords))
}

func TestFindFirstColumnWinsWithinKeyword(t *testing.T) {
	r := row("Gross A", "1", "Gross B", "2")
	assert.Equal(t, "1", r.Find(AmountKeywords))
}

func TestFindStopsAtEmptyMatch(t *testing.T) {
	// The first matching header decides even when its cell is empty.
	r := row("Gross", "", "Amount", "50")
	assert.Equal(t, "", r.Find(AmountKeywords))
}

func TestFindNoMatch(t *testing.T) {
	r := row("Unrelated", "x")
	assert.Equal(t, "", r.Find(AmountKeywords))
}

func TestFindPreferExact(t *testing.T) {
	// Exact header "Date" beats the containment hit on "Update Date".
	r := row("Update Date", "2026-02-02", "Date", "2026-01-01")
	assert.Equal(t, "2026-01-01", r.FindPreferExact([]string{"Date"}))
}

func TestFindPreferExactSkipsEmptyCells(t *testing.T) {
	r := row("Order Created At", "", "Date", "2026-01-01")
	assert.Equal(t, "2026-01-01", r.FindPreferExact(DonationDateKeywords))
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "100.5", Amount("100.5").String())
	assert.Equal(t, "1234.56", Amount("KD 1,234.56").String())
	assert.Equal(t, "98.9", Amount(" 98.900 KWD ").String())
	assert.True(t, Amount("").IsZero())
	assert.True(t, Amount("n/a").IsZero())
	assert.True(t, Amount("1.2.3").IsZero())
}
