package card

import (
	"context"
	"errors"
	"time"

	"cardvault/internal/features/collection"
	"cardvault/internal/features/reference"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VocabularyReader is the read-only slice of the vocabulary store needed to
// resolve reference ids back to display names. Satisfied by
// reference.ReferenceRepository.
type VocabularyReader interface {
	List(ctx context.Context, t reference.Type) ([]reference.Entry, error)
}

type CardService interface {
	CreateCard(ctx context.Context, userID primitive.ObjectID, c *Card) error
	GetCard(ctx context.Context, userID primitive.ObjectID, id string) (*Card, error)
	ListByCollection(ctx context.Context, userID primitive.ObjectID, collectionID string) ([]Card, error)
	UpdateCard(ctx context.Context, userID primitive.ObjectID, id string, update bson.M) error
	DeleteCard(ctx context.Context, userID primitive.ObjectID, id string) error
	DistinctPlayers(ctx context.Context, userID primitive.ObjectID) ([]string, error)
	DistinctSeasons(ctx context.Context, userID primitive.ObjectID) ([]string, error)
	DistinctBrands(ctx context.Context, userID primitive.ObjectID) ([]string, error)
	DistinctSeries(ctx context.Context, userID primitive.ObjectID) ([]string, error)
}

type CardServiceImpl struct {
	CardRepo          CardRepository
	CollectionService collection.CollectionService
	Vocab             VocabularyReader
}

func NewCardService(cardRepo CardRepository, collectionService collection.CollectionService, vocab VocabularyReader) CardService {
	return &CardServiceImpl{
		CardRepo:          cardRepo,
		CollectionService: collectionService,
		Vocab:             vocab,
	}
}

func (s *CardServiceImpl) CreateCard(ctx context.Context, userID primitive.ObjectID, c *Card) error {
	if c.PlayerName == "" {
		return errors.New("player name is required")
	}
	if c.Season == "" {
		return errors.New("season is required")
	}
	if c.CardNumber == "" {
		return errors.New("card number is required")
	}

	if _, err := s.CollectionService.GetOwnedCollection(ctx, userID, c.CollectionID.Hex()); err != nil {
		return err
	}

	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	return s.CardRepo.Create(ctx, c)
}

func (s *CardServiceImpl) GetCard(ctx context.Context, userID primitive.ObjectID, id string) (*Card, error) {
	c, err := s.CardRepo.Get(ctx, id)
	if err != nil {
		return nil, errors.New("card not found")
	}

	if _, err := s.CollectionService.GetOwnedCollection(ctx, userID, c.CollectionID.Hex()); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CardServiceImpl) ListByCollection(ctx context.Context, userID primitive.ObjectID, collectionID string) ([]Card, error) {
	col, err := s.CollectionService.GetOwnedCollection(ctx, userID, collectionID)
	if err != nil {
		return nil, err
	}
	return s.CardRepo.ListByCollection(ctx, col.ID)
}

func (s *CardServiceImpl) UpdateCard(ctx context.Context, userID primitive.ObjectID, id string, update bson.M) error {
	if _, err := s.GetCard(ctx, userID, id); err != nil {
		return err
	}

	update["updated_at"] = time.Now()
	return s.CardRepo.Update(ctx, id, update)
}

func (s *CardServiceImpl) DeleteCard(ctx context.Context, userID primitive.ObjectID, id string) error {
	if _, err := s.GetCard(ctx, userID, id); err != nil {
		return err
	}
	return s.CardRepo.Delete(ctx, id)
}

func (s *CardServiceImpl) DistinctPlayers(ctx context.Context, userID primitive.ObjectID) ([]string, error) {
	return s.distinct(ctx, userID, "player_name")
}

func (s *CardServiceImpl) DistinctSeasons(ctx context.Context, userID primitive.ObjectID) ([]string, error) {
	return s.distinct(ctx, userID, "season")
}

func (s *CardServiceImpl) DistinctBrands(ctx context.Context, userID primitive.ObjectID) ([]string, error) {
	return s.distinctRef(ctx, userID, "brand_id", reference.TypeBrand)
}

func (s *CardServiceImpl) DistinctSeries(ctx context.Context, userID primitive.ObjectID) ([]string, error) {
	return s.distinctRef(ctx, userID, "series_id", reference.TypeSeries)
}

func (s *CardServiceImpl) distinct(ctx context.Context, userID primitive.ObjectID, field string) ([]string, error) {
	ids, err := s.ownedCollectionIDs(ctx, userID)
	if err != nil || len(ids) == 0 {
		return []string{}, err
	}
	return s.CardRepo.Distinct(ctx, field, ids)
}

// distinctRef resolves the distinct foreign keys of a reference field back to
// vocabulary names, in vocabulary (alphabetical) order. Ids whose entry has
// been deleted are dropped.
func (s *CardServiceImpl) distinctRef(ctx context.Context, userID primitive.ObjectID, field string, t reference.Type) ([]string, error) {
	ids, err := s.ownedCollectionIDs(ctx, userID)
	if err != nil || len(ids) == 0 {
		return []string{}, err
	}

	refIDs, err := s.CardRepo.DistinctIDs(ctx, field, ids)
	if err != nil {
		return nil, err
	}
	used := make(map[primitive.ObjectID]bool, len(refIDs))
	for _, id := range refIDs {
		used[id] = true
	}

	entries, err := s.Vocab.List(ctx, t)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(used))
	for _, e := range entries {
		if used[e.ID] {
			names = append(names, e.Name)
		}
	}
	return names, nil
}

func (s *CardServiceImpl) ownedCollectionIDs(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error) {
	cols, err := s.CollectionService.ListCollections(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(cols))
	for _, col := range cols {
		ids = append(ids, col.ID)
	}
	return ids, nil
}
