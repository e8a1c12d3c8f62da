package importer

import (
	"github.com/RHFBAH/donation-reconciler/internal/classify"
	"github.com/RHFBAH/donation-reconciler/internal/dateparse"
	"github.com/RHFBAH/donation-reconciler/internal/fields"
	"github.com/RHFBAH/donation-reconciler/internal/model"
)

// ParseDonationFile reads a donation-platform export into donation
// records. The second return counts rows whose date could not be parsed
// and was defaulted to today; callers may surface it as a warning. An
// empty result with a nil error means the file had no parseable rows —
// the caller decides whether that is an error.
func ParseDonationFile(path, encoding string) ([]model.DonationRecord, int, error) {
	rows, err := loadRows(DefaultRegistry(), path, encoding)
	if err != nil {
		return nil, 0, err
	}
	records, defaulted := MapDonationRows(rows)
	return records, defaulted, nil
}

// MapDonationRows converts header-keyed rows into donation records. The
// date convention is inferred once from the whole batch and applied to
// every row. Itemized split rows expand into one record per part.
func MapDonationRows(rows []fields.Row) ([]model.DonationRecord, int) {
	dates := make([]string, len(rows))
	for i, row := range rows {
		dates[i] = row.FindPreferExact(fields.DonationDateKeywords)
	}
	conv := dateparse.DetectConvention(dates)

	var records []model.DonationRecord
	defaulted := 0
	for i, row := range rows {
		recs, ok := mapDonationRow(row, i, conv)
		if !ok {
			defaulted++
		}
		records = append(records, recs...)
	}
	return records, defaulted
}

func mapDonationRow(row fields.Row, index int, conv dateparse.Convention) ([]model.DonationRecord, bool) {
	amount := fields.Amount(row.Find(fields.AmountKeywords))

	name := row.Find(fields.DonorNameKeywords)
	if name == "" {
		name = "Unknown"
	}

	date, dateOK := dateparse.Canonical(row.FindPreferExact(fields.DonationDateKeywords), conv)
	txnID := row.Find(fields.TransactionIDKeywords)

	res := classify.Classify(row.Find(fields.CategoryKeywords), amount)

	if res.Items != nil {
		// Authoritative itemized split: one record per part, sharing the
		// donor, date and transaction id.
		records := make([]model.DonationRecord, len(res.Items))
		for part, item := range res.Items {
			records[part] = model.DonationRecord{
				ID:            model.NewSplitID(index, part),
				DonorName:     name,
				Amount:        item.Amount,
				Category:      item.Category,
				Date:          date,
				TransactionID: txnID,
				Raw:           row.Values,
			}
		}
		return records, dateOK
	}

	return []model.DonationRecord{{
		ID:            model.NewDonationID(index),
		DonorName:     name,
		Amount:        amount,
		Category:      res.Category,
		SplitDetails:  res.SplitDetails,
		Date:          date,
		TransactionID: txnID,
		InvoiceID:     row.Find(fields.InvoiceIDKeywords),
		Raw:           row.Values,
	}}, dateOK
}
