// Package reconcile matches donation records against bank settlement
// records and allocates settled amounts back to donations.
//
// Matching is deliberately greedy: groups are processed in discovery order
// and each takes the first acceptable bank record in input order, with no
// scoring or backtracking. The output of a given input pair is therefore
// fully deterministic, which downstream reporting depends on.
package reconcile

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/RHFBAH/donation-reconciler/internal/ident"
	"github.com/RHFBAH/donation-reconciler/internal/model"
)

// DefaultFeePercent is the flat platform fee: 1% commission plus 10% VAT
// on the commission.
const DefaultFeePercent = 1.1

// DateToleranceDays bounds CloseDates.
const DateToleranceDays = 3

var hundred = decimal.NewFromInt(100)

// Options tunes the engine. The zero value uses DefaultFeePercent.
type Options struct {
	// FeePercent overrides DefaultFeePercent when non-nil. An explicit
	// zero disables the fee, so nil rather than zero means "default".
	FeePercent *decimal.Decimal
}

func (o Options) feePercent() decimal.Decimal {
	if o.FeePercent == nil {
		return decimal.NewFromFloat(DefaultFeePercent)
	}
	return *o.FeePercent
}

// ExpectedNet returns the gross amount minus the flat platform fee,
// rounded to three decimals.
func ExpectedNet(gross, feePercent decimal.Decimal) decimal.Decimal {
	fee := gross.Mul(feePercent).Div(hundred)
	return gross.Sub(fee).Round(3)
}

// CloseDates reports whether two canonical YYYY-MM-DD dates lie within
// DateToleranceDays of each other. The matcher itself does not use date
// proximity; this is a review signal for callers.
func CloseDates(a, b string) bool {
	return CloseDatesWithin(a, b, DateToleranceDays)
}

// CloseDatesWithin is CloseDates with a caller-supplied tolerance in days.
func CloseDatesWithin(a, b string, days int) bool {
	const layout = "2006-01-02"
	d1, err := time.Parse(layout, a)
	if err != nil {
		return false
	}
	d2, err := time.Parse(layout, b)
	if err != nil {
		return false
	}
	diff := d1.Sub(d2)
	if diff < 0 {
		diff = -diff
	}
	return diff <= time.Duration(days)*24*time.Hour
}

// Reconcile is a pure function of the two input batches. It groups
// donations by normalized transaction id, consumes at most one bank record
// per group, allocates the settled amount proportionally across the group,
// and classifies everything left over. The result holds one transaction
// per donation record plus one per unconsumed bank record, sorted by
// effective date.
func Reconcile(donations []model.DonationRecord, bank []model.BankRecord, opts Options) []model.ReconciledTransaction {
	feePct := opts.feePercent()

	consumed := make(map[string]bool, len(bank))
	matched := make(map[string]model.ReconciledTransaction, len(donations))

	// Group donations by normalized transaction id, preserving discovery
	// order. Records without a transaction id go straight to pending.
	groupIdx := make(map[string][]int)
	var groupKeys []string
	for i, d := range donations {
		if d.TransactionID == "" {
			continue
		}
		key := ident.Normalize(d.TransactionID)
		if _, ok := groupIdx[key]; !ok {
			groupKeys = append(groupKeys, key)
		}
		groupIdx[key] = append(groupIdx[key], i)
	}

	for _, key := range groupKeys {
		idxs := groupIdx[key]

		totalGross := decimal.Zero
		for _, i := range idxs {
			totalGross = totalGross.Add(donations[i].Amount)
		}
		expectedNet := ExpectedNet(totalGross, feePct)

		var invoiceIDs, orderIDs []string
		for _, i := range idxs {
			if v := ident.Normalize(donations[i].InvoiceID); v != "" {
				invoiceIDs = append(invoiceIDs, v)
			}
			if v := ident.Normalize(donations[i].OrderID); v != "" {
				orderIDs = append(orderIDs, v)
			}
		}

		// First acceptable bank record in input order wins.
		match := -1
		for j := range bank {
			if consumed[bank[j].ID] {
				continue
			}
			if accepts(key, invoiceIDs, orderIDs, &bank[j]) {
				match = j
				break
			}
		}
		if match < 0 {
			continue
		}

		b := &bank[match]
		consumed[b.ID] = true

		actualNet := b.Amount
		totalFee := totalGross.Sub(actualNet).Round(3)
		totalDiff := expectedNet.Sub(actualNet).Round(3)

		for _, i := range idxs {
			d := &donations[i]
			var ratio decimal.Decimal
			if totalGross.IsPositive() {
				ratio = d.Amount.Div(totalGross)
			} else {
				ratio = decimal.NewFromInt(1).Div(decimal.NewFromInt(int64(len(idxs))))
			}
			matched[d.ID] = model.ReconciledTransaction{
				Donation: d,
				Bank:     b,
				Reconciliation: model.ReconciliationStatus{
					Status:      model.StatusMatched,
					FeeAmount:   totalFee.Mul(ratio).Round(3),
					NetExpected: ExpectedNet(d.Amount, feePct),
					NetActual:   actualNet.Mul(ratio).Round(3),
					Difference:  totalDiff.Mul(ratio).Round(3),
				},
			}
		}
	}

	out := make([]model.ReconciledTransaction, 0, len(donations)+len(bank))

	// Donation-derived transactions in original input order.
	for i := range donations {
		d := &donations[i]
		if tx, ok := matched[d.ID]; ok {
			out = append(out, tx)
			continue
		}
		expected := ExpectedNet(d.Amount, feePct)
		out = append(out, model.ReconciledTransaction{
			Donation: d,
			Reconciliation: model.ReconciliationStatus{
				Status:      model.StatusPending,
				FeeAmount:   d.Amount.Sub(expected).Round(3),
				NetExpected: expected,
				Difference:  decimal.Zero,
			},
		})
	}

	// Unconsumed bank records become standalone extra entries.
	for i := range bank {
		b := &bank[i]
		if consumed[b.ID] {
			continue
		}
		out = append(out, model.ReconciledTransaction{
			Bank: b,
			Reconciliation: model.ReconciliationStatus{
				Status:      model.StatusExtraBankEntry,
				FeeAmount:   decimal.Zero,
				NetExpected: decimal.Zero,
				Difference:  b.Amount,
			},
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EffectiveDate() < out[j].EffectiveDate()
	})
	return out
}

// accepts reports whether a bank record satisfies any of the group's match
// criteria: trace id equal to (or description containing) the group's
// transaction id, order reference or trace id equal to a member invoice
// id, or gateway order id equal to a member order id.
func accepts(normTxn string, invoiceIDs, orderIDs []string, b *model.BankRecord) bool {
	normTrace := ident.Normalize(b.TraceID)
	normRef := ident.Normalize(b.MPGSOrderRef)
	normDesc := ident.NormalizeText(b.Description)

	if normTxn != "" && (normTrace == normTxn || strings.Contains(normDesc, normTxn)) {
		return true
	}
	if normRef != "" && containsString(invoiceIDs, normRef) {
		return true
	}
	if normTrace != "" && containsString(invoiceIDs, normTrace) {
		return true
	}
	normOrderID := ident.Normalize(b.MPGSOrderID)
	return normOrderID != "" && containsString(orderIDs, normOrderID)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
