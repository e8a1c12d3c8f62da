package importer

import (
	"github.com/RHFBAH/donation-reconciler/internal/dateparse"
	"github.com/RHFBAH/donation-reconciler/internal/fields"
	"github.com/RHFBAH/donation-reconciler/internal/model"
)

// ParseBankFile reads a bank settlement export into bank records. Returns
// follow the ParseDonationFile contract.
func ParseBankFile(path, encoding string) ([]model.BankRecord, int, error) {
	rows, err := loadRows(DefaultRegistry(), path, encoding)
	if err != nil {
		return nil, 0, err
	}
	records, defaulted := MapBankRows(rows)
	return records, defaulted, nil
}

// MapBankRows converts header-keyed rows into bank records with a
// batch-level date convention.
func MapBankRows(rows []fields.Row) ([]model.BankRecord, int) {
	dates := make([]string, len(rows))
	for i, row := range rows {
		dates[i] = row.Find(fields.BankDateKeywords)
	}
	conv := dateparse.DetectConvention(dates)

	records := make([]model.BankRecord, len(rows))
	defaulted := 0
	for i, row := range rows {
		date, ok := dateparse.Canonical(row.Find(fields.BankDateKeywords), conv)
		if !ok {
			defaulted++
		}
		records[i] = model.BankRecord{
			ID:           model.NewBankID(i),
			Amount:       fields.Amount(row.Find(fields.BankAmountKeywords)),
			Date:         date,
			Description:  row.Find(fields.BankDescriptionKeywords),
			TraceID:      row.Find(fields.BankTraceIDKeywords),
			MPGSOrderRef: row.Find(fields.BankOrderRefKeywords),
			Raw:          row.Values,
		}
	}
	return records, defaulted
}
