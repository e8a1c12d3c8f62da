package reconcile

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RHFBAH/donation-reconciler/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func donation(id, txn, date, amount string) model.DonationRecord {
	return model.DonationRecord{
		ID:            id,
		DonorName:     "Donor",
		Amount:        dec(amount),
		Category:      model.CategoryGeneral,
		Date:          date,
		TransactionID: txn,
	}
}

func bankRecord(id, trace, date, amount string) model.BankRecord {
	return model.BankRecord{
		ID:      id,
		Amount:  dec(amount),
		Date:    date,
		TraceID: trace,
	}
}

func TestExpectedNet(t *testing.T) {
	assert.Equal(t, "98.9", ExpectedNet(dec("100"), dec("1.1")).String())
	assert.Equal(t, "0", ExpectedNet(dec("0"), dec("1.1")).String())
	assert.Equal(t, "49.45", ExpectedNet(dec("50"), dec("1.1")).String())
}

func TestMatchedByTraceID(t *testing.T) {
	donations := []model.DonationRecord{donation("d1", "ABC123", "2026-01-05", "100.000")}
	bank := []model.BankRecord{bankRecord("b1", "abc123", "2026-01-06", "98.900")}

	out := Reconcile(donations, bank, Options{})
	require.Len(t, out, 1)

	tx := out[0]
	assert.Equal(t, model.StatusMatched, tx.Reconciliation.Status)
	assert.True(t, tx.Reconciliation.FeeAmount.Equal(dec("1.1")), "fee: %s", tx.Reconciliation.FeeAmount)
	assert.True(t, tx.Reconciliation.NetExpected.Equal(dec("98.9")))
	assert.True(t, tx.Reconciliation.NetActual.Equal(dec("98.9")))
	assert.True(t, tx.Reconciliation.Difference.IsZero(), "difference: %s", tx.Reconciliation.Difference)
	require.NotNil(t, tx.Bank)
	assert.Equal(t, "b1", tx.Bank.ID)
}

func TestMatchedByDescriptionContainment(t *testing.T) {
	donations := []model.DonationRecord{donation("d1", "XYZ-987", "2026-01-05", "10")}
	bank := []model.BankRecord{{
		ID:          "b1",
		Amount:      dec("9.89"),
		Date:        "2026-01-06",
		Description: "POS SETTLEMENT xyz987 BATCH 4",
	}}

	out := Reconcile(donations, bank, Options{})
	require.Len(t, out, 1)
	assert.Equal(t, model.StatusMatched, out[0].Reconciliation.Status)
}

func TestMatchedByInvoiceID(t *testing.T) {
	don := donation("d1", "TX1", "2026-01-05", "20")
	don.InvoiceID = "INV-5501"
	bank := []model.BankRecord{{
		ID:           "b1",
		Amount:       dec("19.78"),
		Date:         "2026-01-06",
		TraceID:      "unrelated",
		MPGSOrderRef: "5501",
	}}

	out := Reconcile([]model.DonationRecord{don}, bank, Options{})
	require.Len(t, out, 1)
	assert.Equal(t, model.StatusMatched, out[0].Reconciliation.Status)
}

func TestMatchedByOrderID(t *testing.T) {
	don := donation("d1", "TX1", "2026-01-05", "20")
	don.OrderID = "ORDER-77"
	bank := []model.BankRecord{{
		ID:          "b1",
		Amount:      dec("19.78"),
		Date:        "2026-01-06",
		MPGSOrderID: "77",
	}}

	out := Reconcile([]model.DonationRecord{don}, bank, Options{})
	require.Len(t, out, 1)
	assert.Equal(t, model.StatusMatched, out[0].Reconciliation.Status)
}

func TestPendingWithoutTransactionID(t *testing.T) {
	donations := []model.DonationRecord{donation("d1", "", "2026-01-05", "100")}
	bank := []model.BankRecord{bankRecord("b1", "nomatch", "2026-01-06", "98.9")}

	out := Reconcile(donations, bank, Options{})
	require.Len(t, out, 2)

	var pending *model.ReconciledTransaction
	for i := range out {
		if out[i].Donation != nil {
			pending = &out[i]
		}
	}
	require.NotNil(t, pending)
	assert.Equal(t, model.StatusPending, pending.Reconciliation.Status)
	assert.True(t, pending.Reconciliation.NetExpected.Equal(dec("98.9")))
	assert.True(t, pending.Reconciliation.FeeAmount.Equal(dec("1.1")))
	assert.True(t, pending.Reconciliation.Difference.IsZero())
	assert.Nil(t, pending.Bank)
}

func TestExtraBankEntry(t *testing.T) {
	bank := []model.BankRecord{bankRecord("b1", "orphaned", "2026-01-06", "55.5")}

	out := Reconcile(nil, bank, Options{})
	require.Len(t, out, 1)
	assert.Equal(t, model.StatusExtraBankEntry, out[0].Reconciliation.Status)
	assert.True(t, out[0].Reconciliation.FeeAmount.IsZero())
	assert.True(t, out[0].Reconciliation.NetExpected.IsZero())
	assert.True(t, out[0].Reconciliation.Difference.Equal(dec("55.5")))
	assert.Nil(t, out[0].Donation)
}

func TestGroupProportionalAllocation(t *testing.T) {
	// Two split parts of one platform transaction settle as one bank row.
	donations := []model.DonationRecord{
		donation("d1", "GRP1", "2026-01-05", "75"),
		donation("d2", "GRP1", "2026-01-05", "25"),
	}
	bank := []model.BankRecord{bankRecord("b1", "GRP1", "2026-01-06", "98.9")}

	out := Reconcile(donations, bank, Options{})
	require.Len(t, out, 2)

	var netSum, feeSum decimal.Decimal
	for _, tx := range out {
		require.Equal(t, model.StatusMatched, tx.Reconciliation.Status)
		require.NotNil(t, tx.Bank)
		assert.Equal(t, "b1", tx.Bank.ID)
		netSum = netSum.Add(tx.Reconciliation.NetActual)
		feeSum = feeSum.Add(tx.Reconciliation.FeeAmount)
	}

	// Conservation: allocated nets sum to the settled amount, fees to
	// gross minus settled, within the rounding epsilon.
	assert.True(t, netSum.Sub(dec("98.9")).Abs().LessThanOrEqual(dec("0.001")), "net sum: %s", netSum)
	assert.True(t, feeSum.Sub(dec("1.1")).Abs().LessThanOrEqual(dec("0.001")), "fee sum: %s", feeSum)

	// 75/25 split of the settled net.
	first := out[0].Reconciliation
	assert.True(t, first.NetActual.Equal(dec("74.175")), "net actual: %s", first.NetActual)
}

func TestZeroGrossGroupSplitsEqually(t *testing.T) {
	donations := []model.DonationRecord{
		donation("d1", "GRP1", "2026-01-05", "0"),
		donation("d2", "GRP1", "2026-01-05", "0"),
	}
	bank := []model.BankRecord{bankRecord("b1", "GRP1", "2026-01-06", "10")}

	out := Reconcile(donations, bank, Options{})
	require.Len(t, out, 2)
	for _, tx := range out {
		assert.True(t, tx.Reconciliation.NetActual.Equal(dec("5")), "net actual: %s", tx.Reconciliation.NetActual)
	}
}

func TestBankRecordConsumedAtMostOnce(t *testing.T) {
	donations := []model.DonationRecord{
		donation("d1", "SAME", "2026-01-05", "10"),
		donation("d2", "same", "2026-01-05", "10"),
		donation("d3", "OTHER", "2026-01-05", "10"),
	}
	// Both groups would accept b1; only the first (discovery order) gets it.
	bank := []model.BankRecord{{
		ID:          "b1",
		Amount:      dec("19.78"),
		Date:        "2026-01-06",
		TraceID:     "SAME",
		Description: "settlement same other",
	}}

	out := Reconcile(donations, bank, Options{})
	require.Len(t, out, 3)

	seen := map[string]int{}
	for _, tx := range out {
		if tx.Bank != nil {
			seen[tx.Bank.ID]++
		}
	}
	// d1 and d2 normalize to the same group and share b1; d3 stays pending.
	assert.Equal(t, 2, seen["b1"])
	for _, tx := range out {
		if tx.Donation != nil && tx.Donation.ID == "d3" {
			assert.Equal(t, model.StatusPending, tx.Reconciliation.Status)
		}
	}
}

func TestGreedyFirstMatchInInputOrder(t *testing.T) {
	donations := []model.DonationRecord{donation("d1", "AA11", "2026-01-05", "10")}
	bank := []model.BankRecord{
		bankRecord("b1", "AA11", "2026-01-06", "9.89"),
		bankRecord("b2", "AA11", "2026-01-07", "9.89"),
	}

	out := Reconcile(donations, bank, Options{})
	require.Len(t, out, 2)

	for _, tx := range out {
		if tx.Donation != nil {
			require.NotNil(t, tx.Bank)
			assert.Equal(t, "b1", tx.Bank.ID)
		} else {
			assert.Equal(t, "b2", tx.Bank.ID)
			assert.Equal(t, model.StatusExtraBankEntry, tx.Reconciliation.Status)
		}
	}
}

func TestOutputSortedByEffectiveDate(t *testing.T) {
	donations := []model.DonationRecord{
		donation("d1", "", "2026-03-01", "10"),
		donation("d2", "", "2026-01-01", "10"),
	}
	bank := []model.BankRecord{bankRecord("b1", "x", "2026-02-01", "5")}

	out := Reconcile(donations, bank, Options{})
	require.Len(t, out, 3)
	assert.Equal(t, "2026-01-01", out[0].EffectiveDate())
	assert.Equal(t, "2026-02-01", out[1].EffectiveDate())
	assert.Equal(t, "2026-03-01", out[2].EffectiveDate())
}

func TestOutputCountInvariant(t *testing.T) {
	donations := []model.DonationRecord{
		donation("d1", "M1", "2026-01-05", "10"),
		donation("d2", "", "2026-01-05", "10"),
	}
	bank := []model.BankRecord{
		bankRecord("b1", "M1", "2026-01-06", "9.89"),
		bankRecord("b2", "unmatched", "2026-01-07", "3"),
	}

	out := Reconcile(donations, bank, Options{})
	// donations + unconsumed bank records.
	assert.Len(t, out, 3)
}

func TestReconcileIsDeterministic(t *testing.T) {
	donations := []model.DonationRecord{
		donation("d1", "A1", "2026-01-05", "40"),
		donation("d2", "A1", "2026-01-05", "60"),
		donation("d3", "B2", "2026-01-08", "25"),
		donation("d4", "", "2026-01-02", "5"),
	}
	bank := []model.BankRecord{
		bankRecord("b1", "A1", "2026-01-06", "98.9"),
		bankRecord("b2", "zzz", "2026-01-09", "12"),
	}

	first := Reconcile(donations, bank, Options{})
	second := Reconcile(donations, bank, Options{})
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Reconciliation.Status, second[i].Reconciliation.Status)
		assert.True(t, first[i].Reconciliation.FeeAmount.Equal(second[i].Reconciliation.FeeAmount))
		assert.True(t, first[i].Reconciliation.NetActual.Equal(second[i].Reconciliation.NetActual))
		assert.Equal(t, first[i].EffectiveDate(), second[i].EffectiveDate())
	}
}

func TestCustomFeePercent(t *testing.T) {
	donations := []model.DonationRecord{donation("d1", "", "2026-01-05", "100")}

	fee := dec("2.5")
	out := Reconcile(donations, nil, Options{FeePercent: &fee})
	require.Len(t, out, 1)
	assert.True(t, out[0].Reconciliation.NetExpected.Equal(dec("97.5")))
}

func TestZeroFeePercentDisablesFee(t *testing.T) {
	donations := []model.DonationRecord{donation("d1", "", "2026-01-05", "100")}

	// An explicit zero is honored, not treated as unset.
	fee := dec("0")
	out := Reconcile(donations, nil, Options{FeePercent: &fee})
	require.Len(t, out, 1)
	assert.True(t, out[0].Reconciliation.NetExpected.Equal(dec("100")))
	assert.True(t, out[0].Reconciliation.FeeAmount.IsZero())
}

func TestCloseDates(t *testing.T) {
	assert.True(t, CloseDates("2026-01-05", "2026-01-08"))
	assert.True(t, CloseDates("2026-01-08", "2026-01-05"))
	assert.False(t, CloseDates("2026-01-05", "2026-01-09"))
	assert.False(t, CloseDates("bad", "2026-01-05"))
}

func TestCloseDatesWithin(t *testing.T) {
	assert.True(t, CloseDatesWithin("2026-01-05", "2026-01-12", 7))
	assert.False(t, CloseDatesWithin("2026-01-05", "2026-01-12", 6))
	assert.True(t, CloseDatesWithin("2026-01-05", "2026-01-05", 0))
	assert.False(t, CloseDatesWithin("2026-01-05", "2026-01-06", 0))
}
