package reference

import (
	"context"
	"strings"

	"cardvault/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReferenceRepository interface {
	List(ctx context.Context, t Type) ([]Entry, error)
	FindByName(ctx context.Context, t Type, name string) (*Entry, error)
	Create(ctx context.Context, t Type, entry *Entry) error
	Update(ctx context.Context, t Type, id string, entry *Entry) error
	Delete(ctx context.Context, t Type, id string) error
	EnsureIndexes(ctx context.Context) error
}

type ReferenceRepositoryImpl struct {
	DB *mongo.Database
}

func NewReferenceRepository(mongodb *database.MongodbDB) ReferenceRepository {
	return &ReferenceRepositoryImpl{DB: mongodb.DB}
}

func (r *ReferenceRepositoryImpl) collection(t Type) *mongo.Collection {
	return r.DB.Collection(collectionNames[t])
}

func (r *ReferenceRepositoryImpl) List(ctx context.Context, t Type) ([]Entry, error) {
	opts := options.Find().SetSort(bson.M{"name_lower": 1})
	cursor, err := r.collection(t).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *ReferenceRepositoryImpl) FindByName(ctx context.Context, t Type, name string) (*Entry, error) {
	var entry Entry
	err := r.collection(t).FindOne(ctx, bson.M{"name_lower": strings.ToLower(name)}).Decode(&entry)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *ReferenceRepositoryImpl) Create(ctx context.Context, t Type, entry *Entry) error {
	entry.ID = primitive.NewObjectID()
	entry.NameLower = strings.ToLower(entry.Name)
	_, err := r.collection(t).InsertOne(ctx, entry)
	return err
}

func (r *ReferenceRepositoryImpl) Update(ctx context.Context, t Type, id string, entry *Entry) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"name":       entry.Name,
		"name_lower": strings.ToLower(entry.Name),
		"updated_at": entry.UpdatedAt,
	}}

	_, err = r.collection(t).UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

func (r *ReferenceRepositoryImpl) Delete(ctx context.Context, t Type, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection(t).DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

// EnsureIndexes creates the unique name_lower index on every vocabulary.
func (r *ReferenceRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys:    bson.M{"name_lower": 1},
		Options: options.Index().SetUnique(true),
	}
	for _, t := range AllTypes {
		if _, err := r.collection(t).Indexes().CreateOne(ctx, model); err != nil {
			return err
		}
	}
	return nil
}
