package importer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/RHFBAH/donation-reconciler/internal/fields"
)

// ExcelParser reads the first sheet of an xlsx/xls workbook.
type ExcelParser struct{}

// Extensions returns the handled file extensions.
func (p *ExcelParser) Extensions() []string { return []string{"xlsx", "xls"} }

// Rows parses workbook bytes. The encoding argument is ignored; workbooks
// carry their own encoding.
func (p *ExcelParser) Rows(data []byte, _ string) ([]fields.Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	headers := make([]string, len(raw[0]))
	for i, h := range raw[0] {
		headers[i] = strings.TrimSpace(h)
	}

	var rows []fields.Row
	for _, rec := range raw[1:] {
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
