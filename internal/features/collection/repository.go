package collection

import (
	"context"

	"cardvault/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CollectionRepository interface {
	Create(ctx context.Context, col *Collection) error
	Get(ctx context.Context, id string) (*Collection, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]Collection, error)
	Update(ctx context.Context, id string, update bson.M) error
	Delete(ctx context.Context, id string) error
}

type CollectionRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewCollectionRepository(mongodb *database.MongodbDB) CollectionRepository {
	return &CollectionRepositoryImpl{
		Collection: mongodb.DB.Collection("collections"),
	}
}

func (r *CollectionRepositoryImpl) Create(ctx context.Context, col *Collection) error {
	col.ID = primitive.NewObjectID()
	_, err := r.Collection.InsertOne(ctx, col)
	return err
}

func (r *CollectionRepositoryImpl) Get(ctx context.Context, id string) (*Collection, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var col Collection
	if err := r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&col); err != nil {
		return nil, err
	}
	return &col, nil
}

func (r *CollectionRepositoryImpl) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]Collection, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.Collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cols []Collection
	if err := cursor.All(ctx, &cols); err != nil {
		return nil, err
	}
	return cols, nil
}

func (r *CollectionRepositoryImpl) Update(ctx context.Context, id string, update bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update})
	return err
}

func (r *CollectionRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
