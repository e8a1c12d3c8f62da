package model

import (
	"github.com/shopspring/decimal"
)

// SplitAmount is one itemized part of a multi-category donation.
type SplitAmount struct {
	Category Category
	Amount   decimal.Decimal
}

// DonationRecord is a parsed donation-platform export row. Records are
// created once per parsed batch and never mutated.
type DonationRecord struct {
	ID        string
	DonorName string
	Amount    decimal.Decimal // gross amount charged to the donor
	Category  Category

	// SplitDetails lists the categories of a composite split donation
	// whose per-category amounts are unknown. Set only when Category is
	// CategorySplit.
	SplitDetails []Category

	// SplitAmounts carries a validated itemized breakdown. The importer
	// emits one record per part instead, so it populates this only for
	// callers that build records directly.
	SplitAmounts []SplitAmount

	Date          string // canonical YYYY-MM-DD
	TransactionID string
	OrderID       string
	InvoiceID     string

	// Raw preserves the source row for traceability.
	Raw map[string]string
}
