package model

import (
	"fmt"

	"github.com/google/uuid"
)

// NewDonationID returns a parse-time donation record ID like
// "don-3-8a1c9e...". The row index keeps IDs readable; the uuid keeps them
// unique across re-uploads of the same file.
func NewDonationID(row int) string {
	return fmt.Sprintf("don-%d-%s", row, uuid.NewString())
}

// NewSplitID returns the ID for one part of an itemized split row, like
// "don-3-split-1-8a1c9e...".
func NewSplitID(row, part int) string {
	return fmt.Sprintf("don-%d-split-%d-%s", row, part, uuid.NewString())
}

// NewBankID returns a parse-time bank record ID like "bank-7-8a1c9e...".
func NewBankID(row int) string {
	return fmt.Sprintf("bank-%d-%s", row, uuid.NewString())
}
