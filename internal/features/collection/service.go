package collection

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotOwner is returned when a caller touches a collection they do not own.
var ErrNotOwner = errors.New("collection not found or unauthorized")

type CollectionService interface {
	CreateCollection(ctx context.Context, userID primitive.ObjectID, col *Collection) error
	ListCollections(ctx context.Context, userID primitive.ObjectID) ([]Collection, error)
	GetOwnedCollection(ctx context.Context, userID primitive.ObjectID, id string) (*Collection, error)
	UpdateCollection(ctx context.Context, userID primitive.ObjectID, id string, name, description *string, categoryID *primitive.ObjectID) error
	DeleteCollection(ctx context.Context, userID primitive.ObjectID, id string) error
}

type CollectionServiceImpl struct {
	Repo CollectionRepository
}

func NewCollectionService(repo CollectionRepository) CollectionService {
	return &CollectionServiceImpl{Repo: repo}
}

func (s *CollectionServiceImpl) CreateCollection(ctx context.Context, userID primitive.ObjectID, col *Collection) error {
	if col.Name == "" {
		return errors.New("name is required")
	}

	now := time.Now()
	col.UserID = userID
	col.CreatedAt = now
	col.UpdatedAt = now

	return s.Repo.Create(ctx, col)
}

func (s *CollectionServiceImpl) ListCollections(ctx context.Context, userID primitive.ObjectID) ([]Collection, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// GetOwnedCollection fetches a collection and enforces ownership in one step.
// Every card and import entry point funnels through this check.
func (s *CollectionServiceImpl) GetOwnedCollection(ctx context.Context, userID primitive.ObjectID, id string) (*Collection, error) {
	col, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, ErrNotOwner
	}
	if col.UserID != userID {
		return nil, ErrNotOwner
	}
	return col, nil
}

func (s *CollectionServiceImpl) UpdateCollection(ctx context.Context, userID primitive.ObjectID, id string, name, description *string, categoryID *primitive.ObjectID) error {
	if _, err := s.GetOwnedCollection(ctx, userID, id); err != nil {
		return err
	}

	update := bson.M{"updated_at": time.Now()}
	if name != nil {
		if *name == "" {
			return errors.New("name is required")
		}
		update["name"] = *name
	}
	if description != nil {
		update["description"] = *description
	}
	if categoryID != nil {
		update["category_id"] = *categoryID
	}

	return s.Repo.Update(ctx, id, update)
}

func (s *CollectionServiceImpl) DeleteCollection(ctx context.Context, userID primitive.ObjectID, id string) error {
	if _, err := s.GetOwnedCollection(ctx, userID, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}
