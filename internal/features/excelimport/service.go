package excelimport

import (
	"context"

	"cardvault/internal/config"
	"cardvault/internal/features/card"
	"cardvault/internal/features/collection"
	"cardvault/internal/features/reference"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ParseResult is the response of the parse step: the uploaded headers, how
// many data rows follow them, and the advisory auto-mapping proposal.
type ParseResult struct {
	Headers      []string        `json:"headers"`
	RowCount     int             `json:"rowCount"`
	AutoMappings []ColumnMapping `json:"autoMappings"`
}

type ImportService interface {
	Template() ([]byte, error)
	Parse(data []byte) (*ParseResult, error)
	Validate(ctx context.Context, data []byte, mappings []ColumnMapping) (*ValidationResult, error)
	Import(ctx context.Context, userID primitive.ObjectID, collectionID string, data []byte, mappings []ColumnMapping) (int, error)
}

type ImportServiceImpl struct {
	References  reference.ReferenceRepository
	Cards       card.CardRepository
	Collections collection.CollectionService
	StrictRefs  bool
	Logger      *zap.Logger
}

func NewImportService(refs reference.ReferenceRepository, cards card.CardRepository, collections collection.CollectionService, cfg *config.Config, logger *zap.Logger) ImportService {
	return &ImportServiceImpl{
		References:  refs,
		Cards:       cards,
		Collections: collections,
		StrictRefs:  cfg.ImportStrictRefs,
		Logger:      logger,
	}
}

func (s *ImportServiceImpl) Template() ([]byte, error) {
	return GenerateTemplate()
}

func (s *ImportServiceImpl) Parse(data []byte) (*ParseResult, error) {
	sheet, err := ParseWorkbook(data)
	if err != nil {
		return nil, err
	}
	return &ParseResult{
		Headers:      sheet.Headers,
		RowCount:     len(sheet.Rows),
		AutoMappings: AutoMatchColumns(sheet.Headers),
	}, nil
}

func (s *ImportServiceImpl) Validate(ctx context.Context, data []byte, mappings []ColumnMapping) (*ValidationResult, error) {
	sheet, err := ParseWorkbook(data)
	if err != nil {
		return nil, err
	}
	return Validate(ctx, s.References, sheet.Rows, mappings)
}

// Import re-parses the uploaded workbook, enforces collection ownership, and
// commits the batch. Validation is not re-run here; the client is expected to
// have called Validate first, and unresolved references fall back to null
// foreign keys unless strict mode is on.
func (s *ImportServiceImpl) Import(ctx context.Context, userID primitive.ObjectID, collectionID string, data []byte, mappings []ColumnMapping) (int, error) {
	col, err := s.Collections.GetOwnedCollection(ctx, userID, collectionID)
	if err != nil {
		return 0, err
	}

	sheet, err := ParseWorkbook(data)
	if err != nil {
		return 0, err
	}

	count, err := ImportCards(ctx, s.References, s.Cards, col.ID, sheet.Rows, mappings, s.StrictRefs)
	if err != nil {
		s.Logger.Error("card import failed",
			zap.String("collectionId", collectionID),
			zap.Int("rows", len(sheet.Rows)),
			zap.Error(err))
		return count, err
	}

	s.Logger.Info("card import committed",
		zap.String("collectionId", collectionID),
		zap.Int("imported", count))
	return count, nil
}
