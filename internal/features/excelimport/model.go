package excelimport

import (
	"context"

	"cardvault/internal/features/reference"
)

// Canonical field identifiers. Reference-typed fields keep the Id suffix even
// though spreadsheet cells carry the free-text name; the importer resolves
// them to vocabulary ids.
const (
	FieldPlayerName       = "playerName"
	FieldTeamID           = "teamId"
	FieldBrandID          = "brandId"
	FieldSeriesID         = "seriesId"
	FieldInsertID         = "insertId"
	FieldParallelID       = "parallelId"
	FieldMemorabilia      = "memorabilia"
	FieldSeason           = "season"
	FieldCardNumber       = "cardNumber"
	FieldAutograph        = "autograph"
	FieldAutographTypeID  = "autographTypeId"
	FieldNumbered         = "numbered"
	FieldNumberedCurrent  = "numberedCurrent"
	FieldNumberedOf       = "numberedOf"
	FieldGradingCompanyID = "gradingCompanyId"
	FieldGradingScore     = "gradingScore"
	FieldNotes            = "notes"
)

// TemplateColumn defines one column of the import template. The list below
// is the full set of fields the importer understands.
type TemplateColumn struct {
	Header   string `json:"header"`
	Field    string `json:"field"`
	Required bool   `json:"required"`
	Example  string `json:"example,omitempty"`
}

// TemplateColumns is declared once and never mutated. Declaration order is
// both the template's column order and the auto-matcher's priority order.
var TemplateColumns = []TemplateColumn{
	{Header: "Player Name", Field: FieldPlayerName, Required: true, Example: "Michael Jordan"},
	{Header: "Team", Field: FieldTeamID, Example: "Chicago Bulls"},
	{Header: "Brand", Field: FieldBrandID, Example: "Panini"},
	{Header: "Series", Field: FieldSeriesID, Example: "Prizm"},
	{Header: "Insert", Field: FieldInsertID, Example: "Silver"},
	{Header: "Parallel", Field: FieldParallelID, Example: "Rookie"},
	{Header: "Memorabilia", Field: FieldMemorabilia, Example: "Jersey Patch"},
	{Header: "Season / Year", Field: FieldSeason, Required: true, Example: "2012-13"},
	{Header: "Card Number", Field: FieldCardNumber, Required: true, Example: "147"},
	{Header: "Autograph", Field: FieldAutograph, Example: "Yes"},
	{Header: "Type of Autograph", Field: FieldAutographTypeID, Example: "On-card"},
	{Header: "Numbered", Field: FieldNumbered, Example: "Yes"},
	{Header: "Current #", Field: FieldNumberedCurrent, Example: "221"},
	{Header: "Of #", Field: FieldNumberedOf, Example: "499"},
	{Header: "Grading Company", Field: FieldGradingCompanyID, Example: "PSA"},
	{Header: "Grading Score", Field: FieldGradingScore, Example: "9.5"},
	{Header: "Notes", Field: FieldNotes, Example: "Mint condition"},
}

// referenceFields lists the reference-typed canonical fields with their
// vocabulary, in template column order. Validation and import iterate this
// slice, so error and missing-name ordering is stable across runs.
var referenceFields = []struct {
	Field string
	Type  reference.Type
}{
	{FieldTeamID, reference.TypeTeam},
	{FieldBrandID, reference.TypeBrand},
	{FieldSeriesID, reference.TypeSeries},
	{FieldInsertID, reference.TypeInsert},
	{FieldParallelID, reference.TypeParallel},
	{FieldAutographTypeID, reference.TypeAutographType},
	{FieldGradingCompanyID, reference.TypeGradingCompany},
}

// ParsedSheet is the parser's output: headers exactly as uploaded, and one
// header-keyed record per data row. Request-scoped, never persisted.
type ParsedSheet struct {
	Headers []string
	Rows    []map[string]string
}

// ColumnMapping associates one uploaded column with a canonical field. A
// header without a mapping is skipped.
type ColumnMapping struct {
	ExcelColumn string `json:"excelColumn"`
	Field       string `json:"field"`
}

type ValidationError struct {
	// Row 0 is a whole-file error; otherwise the 1-based spreadsheet row
	// number (data row index + 2, accounting for the header row).
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// MissingReferenceData lists uploaded names with no vocabulary match, per
// type. These are advisory: the fix is an admin creating the entries, not a
// spreadsheet correction.
type MissingReferenceData struct {
	Brands           []string `json:"brands"`
	Series           []string `json:"series"`
	Inserts          []string `json:"inserts"`
	Parallels        []string `json:"parallels"`
	Teams            []string `json:"teams"`
	AutographTypes   []string `json:"autographTypes"`
	GradingCompanies []string `json:"gradingCompanies"`
}

// Empty reports whether no reference names are missing.
func (m *MissingReferenceData) Empty() bool {
	return len(m.Brands) == 0 &&
		len(m.Series) == 0 &&
		len(m.Inserts) == 0 &&
		len(m.Parallels) == 0 &&
		len(m.Teams) == 0 &&
		len(m.AutographTypes) == 0 &&
		len(m.GradingCompanies) == 0
}

// PreviewRow is one row of the validation preview: resolved field values
// passed through unvalidated, tagged with the spreadsheet row number.
type PreviewRow struct {
	RowNumber int               `json:"rowNumber"`
	Fields    map[string]string `json:"fields"`
}

type ValidationResult struct {
	Valid       bool                 `json:"valid"`
	Errors      []ValidationError    `json:"errors"`
	MissingData MissingReferenceData `json:"missingData"`
	Preview     []PreviewRow         `json:"preview"`
}

// ReferenceReader is the read-only slice of the vocabulary store the
// validator and importer need. Satisfied by reference.ReferenceRepository.
type ReferenceReader interface {
	List(ctx context.Context, t reference.Type) ([]reference.Entry, error)
}
