package excelimport

import (
	"context"
	"testing"

	"cardvault/internal/features/card"
	"cardvault/internal/features/reference"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeRefs serves a fixed vocabulary keyed by type.
type fakeRefs struct {
	entries map[reference.Type][]string
}

func (f *fakeRefs) List(_ context.Context, t reference.Type) ([]reference.Entry, error) {
	names := f.entries[t]
	out := make([]reference.Entry, len(names))
	for i, name := range names {
		out[i] = reference.Entry{ID: primitive.NewObjectID(), Name: name}
	}
	return out, nil
}

// fakeInserter records the batch it was handed.
type fakeInserter struct {
	cards []card.Card
}

func (f *fakeInserter) CreateMany(_ context.Context, cards []card.Card) (int, error) {
	f.cards = cards
	return len(cards), nil
}

// buildWorkbook serializes a header row plus data rows into xlsx bytes.
func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row %d: %v", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("serialize workbook: %v", err)
	}
	return buf.Bytes()
}

// identityMappings maps template headers straight to their own fields.
func identityMappings(fields ...string) []ColumnMapping {
	byField := make(map[string]TemplateColumn, len(TemplateColumns))
	for _, col := range TemplateColumns {
		byField[col.Field] = col
	}

	mappings := make([]ColumnMapping, 0, len(fields))
	for _, field := range fields {
		mappings = append(mappings, ColumnMapping{
			ExcelColumn: byField[field].Header,
			Field:       field,
		})
	}
	return mappings
}
