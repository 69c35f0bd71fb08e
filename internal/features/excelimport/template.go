package excelimport

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	templateSheet = "Cards"

	// TemplateFilename is the suggested download name for the template.
	TemplateFilename = "card-import-template.xlsx"
)

// GenerateTemplate builds the import template workbook: a single sheet whose
// first row is the display headers of TemplateColumns, in declared order.
// No data rows; column width is cosmetic only.
func GenerateTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", templateSheet); err != nil {
		return nil, fmt.Errorf("failed to rename template sheet: %w", err)
	}

	headers := make([]interface{}, len(TemplateColumns))
	for i, col := range TemplateColumns {
		headers[i] = col.Header
	}
	if err := f.SetSheetRow(templateSheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write template headers: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(TemplateColumns))
	if err != nil {
		return nil, err
	}
	if err := f.SetColWidth(templateSheet, "A", lastCol, 20); err != nil {
		return nil, fmt.Errorf("failed to set column widths: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize template: %w", err)
	}
	return buf.Bytes(), nil
}
