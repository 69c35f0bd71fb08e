package card

import (
	"context"

	"cardvault/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CardRepository interface {
	Create(ctx context.Context, c *Card) error
	CreateMany(ctx context.Context, cards []Card) (int, error)
	Get(ctx context.Context, id string) (*Card, error)
	ListByCollection(ctx context.Context, collectionID primitive.ObjectID) ([]Card, error)
	Update(ctx context.Context, id string, update bson.M) error
	Delete(ctx context.Context, id string) error
	Distinct(ctx context.Context, field string, collectionIDs []primitive.ObjectID) ([]string, error)
	DistinctIDs(ctx context.Context, field string, collectionIDs []primitive.ObjectID) ([]primitive.ObjectID, error)
}

type CardRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewCardRepository(mongodb *database.MongodbDB) CardRepository {
	return &CardRepositoryImpl{
		Collection: mongodb.DB.Collection("cards"),
	}
}

func (r *CardRepositoryImpl) Create(ctx context.Context, c *Card) error {
	c.ID = primitive.NewObjectID()
	_, err := r.Collection.InsertOne(ctx, c)
	return err
}

// CreateMany inserts the whole batch with one ordered InsertMany so a failure
// stops at the failing row instead of leaving interleaved gaps. Returns the
// number of documents actually written.
func (r *CardRepositoryImpl) CreateMany(ctx context.Context, cards []Card) (int, error) {
	if len(cards) == 0 {
		return 0, nil
	}

	docs := make([]interface{}, len(cards))
	for i := range cards {
		cards[i].ID = primitive.NewObjectID()
		docs[i] = cards[i]
	}

	res, err := r.Collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if res != nil {
		return len(res.InsertedIDs), err
	}
	return 0, err
}

func (r *CardRepositoryImpl) Get(ctx context.Context, id string) (*Card, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var c Card
	if err := r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CardRepositoryImpl) ListByCollection(ctx context.Context, collectionID primitive.ObjectID) ([]Card, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.Collection.Find(ctx, bson.M{"collection_id": collectionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cards []Card
	if err := cursor.All(ctx, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *CardRepositoryImpl) Update(ctx context.Context, id string, update bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update})
	return err
}

func (r *CardRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

// Distinct returns the distinct values of a field across the given
// collections; backs the filter dropdowns in the UI.
func (r *CardRepositoryImpl) Distinct(ctx context.Context, field string, collectionIDs []primitive.ObjectID) ([]string, error) {
	values, err := r.Collection.Distinct(ctx, field, bson.M{"collection_id": bson.M{"$in": collectionIDs}})
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

// DistinctIDs is Distinct for reference foreign-key fields; null FKs are
// dropped.
func (r *CardRepositoryImpl) DistinctIDs(ctx context.Context, field string, collectionIDs []primitive.ObjectID) ([]primitive.ObjectID, error) {
	values, err := r.Collection.Distinct(ctx, field, bson.M{"collection_id": bson.M{"$in": collectionIDs}})
	if err != nil {
		return nil, err
	}

	out := make([]primitive.ObjectID, 0, len(values))
	for _, v := range values {
		if id, ok := v.(primitive.ObjectID); ok && !id.IsZero() {
			out = append(out, id)
		}
	}
	return out, nil
}
