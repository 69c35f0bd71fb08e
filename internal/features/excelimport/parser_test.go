package excelimport

import (
	"errors"
	"testing"
)

func TestParseWorkbook(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Player Name", "Season / Year", "Card Number"},
		{"Michael Jordan", "1996-97", "23"},
		{"Larry Bird", "1985-86"}, // short row
	})

	sheet, err := ParseWorkbook(data)
	if err != nil {
		t.Fatalf("ParseWorkbook: %v", err)
	}

	if len(sheet.Headers) != 3 {
		t.Fatalf("headers = %v, want 3", sheet.Headers)
	}
	if len(sheet.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(sheet.Rows))
	}

	if got := sheet.Rows[0]["Card Number"]; got != "23" {
		t.Errorf("row 0 card number = %q, want %q", got, "23")
	}
	if got := sheet.Rows[1]["Card Number"]; got != "" {
		t.Errorf("short row card number = %q, want empty", got)
	}
}

func TestParseWorkbookHeaderOnly(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Player Name", "Season / Year"},
	})

	sheet, err := ParseWorkbook(data)
	if err != nil {
		t.Fatalf("ParseWorkbook: %v", err)
	}
	if len(sheet.Rows) != 0 {
		t.Errorf("rows = %d, want 0", len(sheet.Rows))
	}
}

func TestParseWorkbookEmpty(t *testing.T) {
	data := buildWorkbook(t, nil)

	_, err := ParseWorkbook(data)
	if !errors.Is(err, ErrEmptyWorkbook) {
		t.Fatalf("err = %v, want ErrEmptyWorkbook", err)
	}
}

func TestParseWorkbookGarbage(t *testing.T) {
	if _, err := ParseWorkbook([]byte("not a spreadsheet")); err == nil {
		t.Fatal("expected error for non-xlsx bytes")
	}
}
