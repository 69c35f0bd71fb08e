package excelimport

import (
	"reflect"
	"testing"
)

func TestAutoMatchColumns(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    []ColumnMapping
	}{
		{
			name:    "exact match ignoring case and whitespace",
			headers: []string{"  player name ", "BRAND"},
			want: []ColumnMapping{
				{ExcelColumn: "  player name ", Field: FieldPlayerName},
				{ExcelColumn: "BRAND", Field: FieldBrandID},
			},
		},
		{
			name:    "substring match in either direction",
			headers: []string{"Player", "The Card Number Column"},
			want: []ColumnMapping{
				{ExcelColumn: "Player", Field: FieldPlayerName},
				{ExcelColumn: "The Card Number Column", Field: FieldCardNumber},
			},
		},
		{
			name:    "unmatched headers are omitted",
			headers: []string{"Favorite Color", "Season / Year"},
			want: []ColumnMapping{
				{ExcelColumn: "Season / Year", Field: FieldSeason},
			},
		},
		{
			name:    "blank headers are skipped",
			headers: []string{"", "   ", "Notes"},
			want: []ColumnMapping{
				{ExcelColumn: "Notes", Field: FieldNotes},
			},
		},
		{
			name:    "no headers",
			headers: nil,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AutoMatchColumns(tt.headers)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AutoMatchColumns(%v) = %v, want %v", tt.headers, got, tt.want)
			}
		})
	}
}

func TestAutoMatchColumnsNeverClaimsFieldTwice(t *testing.T) {
	// "Number" is a substring of several template headers; duplicates of the
	// same header must spread across distinct fields or go unmapped.
	headers := []string{"Player Name", "Player Name", "Number", "Number", "Number", "Number"}

	mappings := AutoMatchColumns(headers)

	seen := make(map[string]bool)
	for _, m := range mappings {
		if seen[m.Field] {
			t.Fatalf("field %q mapped twice in %v", m.Field, mappings)
		}
		seen[m.Field] = true
	}
}

func TestAutoMatchColumnsIdempotent(t *testing.T) {
	// Mixed exact, substring, duplicate, and unmatched headers.
	headers := []string{"Player Name", "brand", "The Card Number Column", "Number", "Favorite Color", "Player Name"}

	first := AutoMatchColumns(headers)
	for run := 0; run < 50; run++ {
		if got := AutoMatchColumns(headers); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d mappings differ:\n got %v\nwant %v", run, got, first)
		}
	}
}

func TestAutoMatchColumnsDeclarationOrderPriority(t *testing.T) {
	// "Numbered" matches its column exactly; a bare "Number" must then fall
	// through to the earliest still-unclaimed template column containing it.
	mappings := AutoMatchColumns([]string{"Numbered", "Number"})

	want := []ColumnMapping{
		{ExcelColumn: "Numbered", Field: FieldNumbered},
		{ExcelColumn: "Number", Field: FieldCardNumber},
	}
	if !reflect.DeepEqual(mappings, want) {
		t.Errorf("mappings = %v, want %v", mappings, want)
	}
}
