package model

import (
	"github.com/shopspring/decimal"
)

// BankRecord is a parsed bank settlement row.
type BankRecord struct {
	ID          string
	Amount      decimal.Decimal // net amount settled into the account
	Date        string          // canonical YYYY-MM-DD
	Description string
	TraceID     string // auth code / RRN, the primary cross-reference key

	MPGSOrderRef string
	MPGSOrderID  string

	// Raw preserves the source row for traceability.
	Raw map[string]string
}
