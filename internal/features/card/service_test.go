package card

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"cardvault/internal/features/collection"
	"cardvault/internal/features/reference"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeCardRepo struct {
	CardRepository
	distinctIDs   []primitive.ObjectID
	distinctField string
}

func (f *fakeCardRepo) DistinctIDs(_ context.Context, field string, _ []primitive.ObjectID) ([]primitive.ObjectID, error) {
	f.distinctField = field
	return f.distinctIDs, nil
}

type fakeCollections struct {
	collections []collection.Collection
}

func (f *fakeCollections) CreateCollection(context.Context, primitive.ObjectID, *collection.Collection) error {
	return errors.New("not implemented")
}

func (f *fakeCollections) ListCollections(context.Context, primitive.ObjectID) ([]collection.Collection, error) {
	return f.collections, nil
}

func (f *fakeCollections) GetOwnedCollection(context.Context, primitive.ObjectID, string) (*collection.Collection, error) {
	return nil, collection.ErrNotOwner
}

func (f *fakeCollections) UpdateCollection(context.Context, primitive.ObjectID, string, *string, *string, *primitive.ObjectID) error {
	return errors.New("not implemented")
}

func (f *fakeCollections) DeleteCollection(context.Context, primitive.ObjectID, string) error {
	return errors.New("not implemented")
}

type fakeVocab struct {
	entries map[reference.Type][]reference.Entry
}

func (f *fakeVocab) List(_ context.Context, t reference.Type) ([]reference.Entry, error) {
	return f.entries[t], nil
}

func TestDistinctBrandsResolvesNames(t *testing.T) {
	panini := reference.Entry{ID: primitive.NewObjectID(), Name: "Panini"}
	topps := reference.Entry{ID: primitive.NewObjectID(), Name: "Topps"}
	staleID := primitive.NewObjectID() // FK whose vocabulary entry is gone

	repo := &fakeCardRepo{distinctIDs: []primitive.ObjectID{panini.ID, staleID}}
	svc := NewCardService(repo,
		&fakeCollections{collections: []collection.Collection{{ID: primitive.NewObjectID()}}},
		&fakeVocab{entries: map[reference.Type][]reference.Entry{
			reference.TypeBrand: {panini, topps},
		}})

	brands, err := svc.DistinctBrands(context.Background(), primitive.NewObjectID())
	if err != nil {
		t.Fatalf("DistinctBrands: %v", err)
	}

	if want := []string{"Panini"}; !reflect.DeepEqual(brands, want) {
		t.Errorf("brands = %v, want %v", brands, want)
	}
	if repo.distinctField != "brand_id" {
		t.Errorf("distinct field = %q, want brand_id", repo.distinctField)
	}
}

func TestDistinctBrandsNoCollections(t *testing.T) {
	repo := &fakeCardRepo{}
	svc := NewCardService(repo, &fakeCollections{}, &fakeVocab{})

	brands, err := svc.DistinctBrands(context.Background(), primitive.NewObjectID())
	if err != nil {
		t.Fatalf("DistinctBrands: %v", err)
	}
	if len(brands) != 0 {
		t.Errorf("brands = %v, want empty", brands)
	}
	if repo.distinctField != "" {
		t.Error("repository queried with no owned collections")
	}
}

func TestDistinctSeriesUsesSeriesVocabulary(t *testing.T) {
	prizm := reference.Entry{ID: primitive.NewObjectID(), Name: "Prizm"}

	repo := &fakeCardRepo{distinctIDs: []primitive.ObjectID{prizm.ID}}
	svc := NewCardService(repo,
		&fakeCollections{collections: []collection.Collection{{ID: primitive.NewObjectID()}}},
		&fakeVocab{entries: map[reference.Type][]reference.Entry{
			reference.TypeSeries: {prizm},
		}})

	series, err := svc.DistinctSeries(context.Background(), primitive.NewObjectID())
	if err != nil {
		t.Fatalf("DistinctSeries: %v", err)
	}
	if want := []string{"Prizm"}; !reflect.DeepEqual(series, want) {
		t.Errorf("series = %v, want %v", series, want)
	}
	if repo.distinctField != "series_id" {
		t.Errorf("distinct field = %q, want series_id", repo.distinctField)
	}
}
