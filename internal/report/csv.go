// Package report renders reconciled transactions as CSV for downstream
// consumers.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/RHFBAH/donation-reconciler/internal/model"
)

// Header is the CSV header for reconciliation output.
const Header = "date,status,donor_name,category,gross_amount,net_expected,net_actual,fee_amount,difference,transaction_id,bank_description,bank_trace_id"

const (
	numFields   = 12
	colDate     = 0
	colStatus   = 1
	colDonor    = 2
	colCategory = 3
	colGross    = 4
	colNetExp   = 5
	colNetAct   = 6
	colFee      = 7
	colDiff     = 8
	colTxnID    = 9
	colBankDesc = 10
	colTraceID  = 11
)

// MarshalTransaction converts a ReconciledTransaction to a CSV row.
// Monetary fields carry three decimals; net_actual is blank unless the
// transaction matched.
func MarshalTransaction(tx model.ReconciledTransaction) []string {
	row := make([]string, numFields)
	row[colDate] = tx.EffectiveDate()
	row[colStatus] = string(tx.Reconciliation.Status)

	if d := tx.Donation; d != nil {
		row[colDonor] = d.DonorName
		row[colCategory] = string(d.Category)
		if len(d.SplitDetails) > 0 {
			parts := make([]string, len(d.SplitDetails))
			for i, c := range d.SplitDetails {
				parts[i] = string(c)
			}
			row[colCategory] = string(d.Category) + ":" + strings.Join(parts, "+")
		}
		row[colGross] = d.Amount.StringFixed(3)
		row[colTxnID] = d.TransactionID
	}

	row[colNetExp] = tx.Reconciliation.NetExpected.StringFixed(3)
	if tx.Reconciliation.Status == model.StatusMatched {
		row[colNetAct] = tx.Reconciliation.NetActual.StringFixed(3)
	}
	row[colFee] = tx.Reconciliation.FeeAmount.StringFixed(3)
	row[colDiff] = tx.Reconciliation.Difference.StringFixed(3)

	if b := tx.Bank; b != nil {
		row[colBankDesc] = b.Description
		row[colTraceID] = b.TraceID
	}
	return row
}

// WriteTransactions writes transactions as CSV, including the header.
func WriteTransactions(w io.Writer, txs []model.ReconciledTransaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, tx := range txs {
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
