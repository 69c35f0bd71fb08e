package excelimport

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrEmptyWorkbook is returned when the first sheet has no rows at all (not
// even a header row).
var ErrEmptyWorkbook = errors.New("spreadsheet is empty")

// ParseWorkbook reads the first sheet of an xlsx workbook into headers plus
// header-keyed row records. Row 1 is taken as headers verbatim. A data row
// shorter than the header row yields empty strings for the missing trailing
// columns; cells beyond the header row are dropped (no header to key them by).
func ParseWorkbook(data []byte) (*ParsedSheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyWorkbook
	}

	headers := rows[0]
	parsed := &ParsedSheet{
		Headers: headers,
		Rows:    make([]map[string]string, 0, len(rows)-1),
	}

	for _, row := range rows[1:] {
		record := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(row) {
				record[header] = row[i]
			} else {
				record[header] = ""
			}
		}
		parsed.Rows = append(parsed.Rows, record)
	}

	return parsed, nil
}
