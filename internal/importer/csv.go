package importer

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/RHFBAH/donation-reconciler/internal/fields"
	"github.com/RHFBAH/donation-reconciler/internal/textenc"
)

// CSVParser reads delimited text exports, detecting legacy Arabic
// encodings unless one is forced.
type CSVParser struct{}

// Extensions returns the handled file extensions.
func (p *CSVParser) Extensions() []string { return []string{"csv"} }

// Rows decodes and parses a delimited export. The delimiter is sniffed
// from the header line; the first row is the header; fully empty rows are
// skipped.
func (p *CSVParser) Rows(data []byte, encoding string) ([]fields.Row, error) {
	text, err := textenc.Decode(data, encoding)
	if err != nil {
		return nil, err
	}
	text = strings.TrimPrefix(text, "\uFEFF")

	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = sniffDelimiter(text)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	var rows []fields.Row
	for _, rec := range records[1:] {
		if emptyRow(rec) {
			continue
		}
		values := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				values[h] = rec[i]
			}
		}
		rows = append(rows, fields.Row{Headers: headers, Values: values})
	}
	return rows, nil
}

// sniffDelimiter picks the candidate delimiter that yields the most
// columns in the header line. Semicolon and tab exports are common for
// Arabic and European locale files; comma wins ties.
func sniffDelimiter(text string) rune {
	header := text
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		header = text[:i]
	}

	best := ','
	bestCount := strings.Count(header, ",")
	for _, d := range []rune{';', '\t'} {
		if c := strings.Count(header, string(d)); c > bestCount {
			best, bestCount = d, c
		}
	}
	return best
}

func emptyRow(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
