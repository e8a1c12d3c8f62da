package model

import (
	"github.com/shopspring/decimal"
)

// Status is the terminal classification of a reconciled transaction.
type Status string

const (
	StatusMatched Status = "matched"
	StatusPending Status = "pending"
	// StatusDiscrepancy is reserved; the matching engine never produces it.
	StatusDiscrepancy    Status = "discrepancy"
	StatusExtraBankEntry Status = "extra_bank_entry"
)

// ReconciliationStatus carries the per-transaction fee and difference
// figures. NetActual is meaningful only when Status is StatusMatched.
type ReconciliationStatus struct {
	Status      Status
	FeeAmount   decimal.Decimal
	NetExpected decimal.Decimal
	NetActual   decimal.Decimal
	Difference  decimal.Decimal
}

// ReconciledTransaction pairs a donation with the bank record that settled
// it. At least one of Donation and Bank is non-nil.
type ReconciledTransaction struct {
	Donation       *DonationRecord
	Bank           *BankRecord
	Reconciliation ReconciliationStatus
}

// EffectiveDate is the bank date when a bank record is present, otherwise
// the donation date. Dates are canonical YYYY-MM-DD, so lexicographic and
// chronological order coincide.
func (t ReconciledTransaction) EffectiveDate() string {
	if t.Bank != nil {
		return t.Bank.Date
	}
	if t.Donation != nil {
		return t.Donation.Date
	}
	return ""
}
