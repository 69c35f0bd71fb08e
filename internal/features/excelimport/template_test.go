package excelimport

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestGenerateTemplateHeaders(t *testing.T) {
	data, err := GenerateTemplate()
	if err != nil {
		t.Fatalf("GenerateTemplate: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open generated template: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Cards" {
		t.Fatalf("sheets = %v, want single sheet Cards", sheets)
	}

	rows, err := f.GetRows("Cards")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("template has %d rows, want header row only", len(rows))
	}

	headers := rows[0]
	if len(headers) != len(TemplateColumns) {
		t.Fatalf("header count = %d, want %d", len(headers), len(TemplateColumns))
	}
	for i, col := range TemplateColumns {
		if headers[i] != col.Header {
			t.Errorf("header[%d] = %q, want %q", i, headers[i], col.Header)
		}
	}
}

func TestTemplateRoundTripsThroughParser(t *testing.T) {
	data, err := GenerateTemplate()
	if err != nil {
		t.Fatalf("GenerateTemplate: %v", err)
	}

	sheet, err := ParseWorkbook(data)
	if err != nil {
		t.Fatalf("ParseWorkbook: %v", err)
	}
	if len(sheet.Rows) != 0 {
		t.Errorf("template parsed with %d data rows, want 0", len(sheet.Rows))
	}

	mappings := AutoMatchColumns(sheet.Headers)
	if len(mappings) != len(TemplateColumns) {
		t.Fatalf("auto-match on own template mapped %d of %d columns", len(mappings), len(TemplateColumns))
	}
	for i, col := range TemplateColumns {
		if mappings[i].Field != col.Field {
			t.Errorf("mapping[%d].Field = %q, want %q", i, mappings[i].Field, col.Field)
		}
	}
}
