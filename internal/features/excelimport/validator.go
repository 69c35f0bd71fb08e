package excelimport

import (
	"context"
	"fmt"
	"strings"

	"cardvault/internal/features/reference"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// vocabSnapshot holds one read of the reference vocabularies: lowercased
// name sets for existence checks and name→id maps for import resolution.
// Validate and ImportCards each take their own snapshot; the two reads are
// not transactionally consistent across the HTTP round trip, so a validation
// result is advisory rather than a commit guarantee.
type vocabSnapshot struct {
	names map[reference.Type]map[string]struct{}
	ids   map[reference.Type]map[string]primitive.ObjectID
}

func loadVocabulary(ctx context.Context, refs ReferenceReader) (*vocabSnapshot, error) {
	snap := &vocabSnapshot{
		names: make(map[reference.Type]map[string]struct{}),
		ids:   make(map[reference.Type]map[string]primitive.ObjectID),
	}

	for _, rf := range referenceFields {
		t := rf.Type
		if _, done := snap.names[t]; done {
			continue
		}
		entries, err := refs.List(ctx, t)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s vocabulary: %w", t, err)
		}

		names := make(map[string]struct{}, len(entries))
		ids := make(map[string]primitive.ObjectID, len(entries))
		for _, e := range entries {
			lower := strings.ToLower(e.Name)
			names[lower] = struct{}{}
			ids[lower] = e.ID
		}
		snap.names[t] = names
		snap.ids[t] = ids
	}

	return snap, nil
}

func (s *vocabSnapshot) has(t reference.Type, name string) bool {
	_, ok := s.names[t][strings.ToLower(name)]
	return ok
}

func (s *vocabSnapshot) resolve(t reference.Type, name string) *primitive.ObjectID {
	if id, ok := s.ids[t][strings.ToLower(name)]; ok {
		return &id
	}
	return nil
}

// requiredChecks are the fixed per-row messages for empty required values,
// checked in this order.
var requiredChecks = []struct {
	Field   string
	Message string
}{
	{FieldPlayerName, "Player Name is required"},
	{FieldSeason, "Season/Year is required"},
	{FieldCardNumber, "Card Number is required"},
}

// Validate checks the mapped rows against the current vocabulary snapshot.
// Structural errors accumulate across all rows; missing reference names go
// into a separate advisory report because their remedy is administrative.
// The result is valid only when both are empty.
func Validate(ctx context.Context, refs ReferenceReader, rows []map[string]string, mappings []ColumnMapping) (*ValidationResult, error) {
	result := &ValidationResult{
		Errors:  []ValidationError{},
		Preview: []PreviewRow{},
	}

	fieldToColumn := fieldColumnMap(mappings)

	// All-or-nothing: row-level validation never runs with a required field
	// unmapped.
	for _, col := range TemplateColumns {
		if !col.Required {
			continue
		}
		if _, ok := fieldToColumn[col.Field]; !ok {
			result.Errors = append(result.Errors, ValidationError{
				Row:     0,
				Field:   col.Field,
				Message: fmt.Sprintf("Required field %q is not mapped", col.Header),
			})
		}
	}
	if len(result.Errors) > 0 {
		return result, nil
	}

	snap, err := loadVocabulary(ctx, refs)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		rowNum := i + 2 // 1-based spreadsheet numbering plus the header row

		fields := resolveRow(row, fieldToColumn)

		for _, check := range requiredChecks {
			if fields[check.Field] == "" {
				result.Errors = append(result.Errors, ValidationError{
					Row:     rowNum,
					Field:   check.Field,
					Message: check.Message,
				})
			}
		}

		for _, rf := range referenceFields {
			value := fields[rf.Field]
			if value == "" {
				continue
			}
			if !snap.has(rf.Type, value) {
				result.MissingData.add(rf.Type, value)
			}
		}

		// Preview is an unvalidated pass-through, appended for every row.
		result.Preview = append(result.Preview, PreviewRow{
			RowNumber: rowNum,
			Fields:    fields,
		})
	}

	result.Valid = len(result.Errors) == 0 && result.MissingData.Empty()
	return result, nil
}

// fieldColumnMap inverts the mapping list to canonical field → uploaded
// column. If two mappings target the same field the last one wins.
func fieldColumnMap(mappings []ColumnMapping) map[string]string {
	m := make(map[string]string, len(mappings))
	for _, mapping := range mappings {
		m[mapping.Field] = mapping.ExcelColumn
	}
	return m
}

// resolveRow reads every mapped field's cell for one row, trimming
// whitespace. An absent cell resolves to the empty string.
func resolveRow(row map[string]string, fieldToColumn map[string]string) map[string]string {
	fields := make(map[string]string, len(fieldToColumn))
	for field, column := range fieldToColumn {
		fields[field] = strings.TrimSpace(row[column])
	}
	return fields
}

// add records a missing reference name, deduplicated in first-seen order.
func (m *MissingReferenceData) add(t reference.Type, name string) {
	var list *[]string
	switch t {
	case reference.TypeBrand:
		list = &m.Brands
	case reference.TypeSeries:
		list = &m.Series
	case reference.TypeInsert:
		list = &m.Inserts
	case reference.TypeParallel:
		list = &m.Parallels
	case reference.TypeTeam:
		list = &m.Teams
	case reference.TypeAutographType:
		list = &m.AutographTypes
	case reference.TypeGradingCompany:
		list = &m.GradingCompanies
	default:
		return
	}

	for _, existing := range *list {
		if existing == name {
			return
		}
	}
	*list = append(*list, name)
}
