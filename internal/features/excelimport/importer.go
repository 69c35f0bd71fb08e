package excelimport

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cardvault/internal/features/card"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CardInserter is the write-side slice of the card store the importer needs.
// Satisfied by card.CardRepository.
type CardInserter interface {
	CreateMany(ctx context.Context, cards []card.Card) (int, error)
}

// ImportCards materializes the mapped rows into cards and inserts them as one
// ordered batch. Reference names are resolved against a fresh vocabulary
// snapshot; an unresolved name becomes a null foreign key unless strictRefs
// is set, in which case the whole import fails before any insert. Returns the
// number of cards submitted for insertion.
func ImportCards(ctx context.Context, refs ReferenceReader, inserter CardInserter, collectionID primitive.ObjectID, rows []map[string]string, mappings []ColumnMapping, strictRefs bool) (int, error) {
	snap, err := loadVocabulary(ctx, refs)
	if err != nil {
		return 0, err
	}

	fieldToColumn := fieldColumnMap(mappings)
	now := time.Now()

	cards := make([]card.Card, 0, len(rows))
	for i, row := range rows {
		fields := resolveRow(row, fieldToColumn)

		c := card.Card{
			CollectionID: collectionID,
			PlayerName:   fields[FieldPlayerName],
			Memorabilia:  fields[FieldMemorabilia],
			Season:       fields[FieldSeason],
			CardNumber:   fields[FieldCardNumber],
			Autograph:    parseBool(fields[FieldAutograph]),
			Numbered:     parseBool(fields[FieldNumbered]),
			GradingScore: fields[FieldGradingScore],
			Notes:        fields[FieldNotes],
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		c.NumberedCurrent = parseIntPtr(fields[FieldNumberedCurrent])
		c.NumberedOf = parseIntPtr(fields[FieldNumberedOf])

		for _, rf := range referenceFields {
			name := fields[rf.Field]
			if name == "" {
				continue
			}
			id := snap.resolve(rf.Type, name)
			if id == nil && strictRefs {
				return 0, fmt.Errorf("row %d: unknown %s %q", i+2, rf.Type, name)
			}
			switch rf.Field {
			case FieldTeamID:
				c.TeamID = id
			case FieldBrandID:
				c.BrandID = id
			case FieldSeriesID:
				c.SeriesID = id
			case FieldInsertID:
				c.InsertID = id
			case FieldParallelID:
				c.ParallelID = id
			case FieldAutographTypeID:
				c.AutographTypeID = id
			case FieldGradingCompanyID:
				c.GradingCompanyID = id
			}
		}
		c.Graded = c.GradingCompanyID != nil || c.GradingScore != ""

		cards = append(cards, c)
	}

	return inserter.CreateMany(ctx, cards)
}

// parseBool accepts "yes" and "true" (any case, surrounding whitespace
// already trimmed); everything else, including empty, is false.
func parseBool(value string) bool {
	switch strings.ToLower(value) {
	case "yes", "true":
		return true
	}
	return false
}

// parseIntPtr returns nil for empty or unparseable numeric cells rather than
// failing the import over a typo in an optional column.
func parseIntPtr(value string) *int {
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &n
}
