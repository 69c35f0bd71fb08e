package excelimport

import (
	"context"
	"reflect"
	"testing"

	"cardvault/internal/features/reference"
)

func TestValidateValidRow(t *testing.T) {
	refs := &fakeRefs{entries: map[reference.Type][]string{
		reference.TypeBrand:  {"Panini"},
		reference.TypeSeries: {"Prizm"},
	}}
	rows := []map[string]string{{
		"Player Name":   "Michael Jordan",
		"Season / Year": "1996-97",
		"Card Number":   "23",
		"Brand":         "Panini",
		"Series":        "Prizm",
	}}
	mappings := identityMappings(FieldPlayerName, FieldSeason, FieldCardNumber, FieldBrandID, FieldSeriesID)

	result, err := Validate(context.Background(), refs, rows, mappings)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if !result.Valid {
		t.Errorf("Valid = false, errors = %v, missing = %+v", result.Errors, result.MissingData)
	}
	if len(result.Errors) != 0 {
		t.Errorf("Errors = %v, want none", result.Errors)
	}
	if !result.MissingData.Empty() {
		t.Errorf("MissingData = %+v, want empty", result.MissingData)
	}
	if len(result.Preview) != 1 || result.Preview[0].RowNumber != 2 {
		t.Fatalf("Preview = %+v, want one row numbered 2", result.Preview)
	}
	if got := result.Preview[0].Fields[FieldPlayerName]; got != "Michael Jordan" {
		t.Errorf("preview player = %q", got)
	}
}

func TestValidateUnmappedRequiredFieldAborts(t *testing.T) {
	rows := []map[string]string{{"Player Name": "Michael Jordan"}}
	mappings := identityMappings(FieldPlayerName, FieldSeason) // cardNumber unmapped

	result, err := Validate(context.Background(), &fakeRefs{}, rows, mappings)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if result.Valid {
		t.Error("Valid = true with an unmapped required field")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("Errors = %v, want exactly one", result.Errors)
	}
	e := result.Errors[0]
	if e.Row != 0 || e.Field != FieldCardNumber {
		t.Errorf("error = %+v, want row 0 on %s", e, FieldCardNumber)
	}
	if len(result.Preview) != 0 {
		t.Errorf("Preview = %+v, want empty on whole-file error", result.Preview)
	}
}

func TestValidateRequiredValues(t *testing.T) {
	rows := []map[string]string{
		{"Player Name": "Michael Jordan", "Season / Year": "1996-97", "Card Number": "23"},
		{"Player Name": "", "Season / Year": "  ", "Card Number": "24"},
	}
	mappings := identityMappings(FieldPlayerName, FieldSeason, FieldCardNumber)

	result, err := Validate(context.Background(), &fakeRefs{}, rows, mappings)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if result.Valid {
		t.Error("Valid = true with empty required values")
	}
	byField := make(map[string]ValidationError)
	for _, e := range result.Errors {
		byField[e.Field] = e
	}
	if e := byField[FieldPlayerName]; e.Row != 3 || e.Message != "Player Name is required" {
		t.Errorf("player error = %+v", e)
	}
	if e := byField[FieldSeason]; e.Row != 3 || e.Message != "Season/Year is required" {
		t.Errorf("season error = %+v", e)
	}
	if len(result.Preview) != 2 {
		t.Errorf("Preview = %d rows, want 2 (invalid rows still previewed)", len(result.Preview))
	}
}

func TestValidateErrorOrderIsStable(t *testing.T) {
	rows := []map[string]string{
		{"Player Name": "", "Season / Year": "", "Card Number": ""},
	}
	mappings := identityMappings(FieldPlayerName, FieldSeason, FieldCardNumber)

	first, err := Validate(context.Background(), &fakeRefs{}, rows, mappings)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	wantFields := []string{FieldPlayerName, FieldSeason, FieldCardNumber}
	if len(first.Errors) != len(wantFields) {
		t.Fatalf("Errors = %v, want one per required field", first.Errors)
	}
	for i, field := range wantFields {
		if first.Errors[i].Field != field {
			t.Errorf("Errors[%d].Field = %q, want %q", i, first.Errors[i].Field, field)
		}
	}

	// Same inputs must yield an identical result on every run.
	for run := 0; run < 50; run++ {
		again, err := Validate(context.Background(), &fakeRefs{}, rows, mappings)
		if err != nil {
			t.Fatalf("Validate run %d: %v", run, err)
		}
		if !reflect.DeepEqual(again, first) {
			t.Fatalf("run %d result differs:\n got %+v\nwant %+v", run, again, first)
		}
	}
}

func TestValidateMissingReferences(t *testing.T) {
	refs := &fakeRefs{entries: map[reference.Type][]string{
		reference.TypeSeries: {"Prizm"},
	}}
	rows := []map[string]string{
		{"Player Name": "A", "Season / Year": "2020", "Card Number": "1", "Brand": "Panini", "Series": "Prizm"},
		{"Player Name": "B", "Season / Year": "2020", "Card Number": "2", "Brand": "Panini", "Series": "Select"},
	}
	mappings := identityMappings(FieldPlayerName, FieldSeason, FieldCardNumber, FieldBrandID, FieldSeriesID)

	result, err := Validate(context.Background(), refs, rows, mappings)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if len(result.Errors) != 0 {
		t.Errorf("Errors = %v, missing names are not row errors", result.Errors)
	}
	if result.Valid {
		t.Error("Valid = true with missing reference names")
	}
	if want := []string{"Panini"}; !reflect.DeepEqual(result.MissingData.Brands, want) {
		t.Errorf("Brands = %v, want %v (deduplicated)", result.MissingData.Brands, want)
	}
	if want := []string{"Select"}; !reflect.DeepEqual(result.MissingData.Series, want) {
		t.Errorf("Series = %v, want %v", result.MissingData.Series, want)
	}
}

func TestValidateVocabularyMatchIsCaseInsensitive(t *testing.T) {
	refs := &fakeRefs{entries: map[reference.Type][]string{
		reference.TypeBrand: {"Panini"},
	}}
	rows := []map[string]string{
		{"Player Name": "A", "Season / Year": "2020", "Card Number": "1", "Brand": "  pAnInI "},
	}
	mappings := identityMappings(FieldPlayerName, FieldSeason, FieldCardNumber, FieldBrandID)

	result, err := Validate(context.Background(), refs, rows, mappings)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !result.Valid {
		t.Errorf("Valid = false, missing = %+v", result.MissingData)
	}
}
