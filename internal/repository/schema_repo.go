package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"scopeforge/internal/model"
)

// SchemaRepo handles MongoDB operations for questionnaire schemas
type SchemaRepo interface {
	Create(ctx context.Context, schema *model.Schema) (string, error)
	GetByID(ctx context.Context, id string) (*model.Schema, error)
	GetByHostID(ctx context.Context, hostID string) ([]*model.Schema, error)
	Update(ctx context.Context, schema *model.Schema) error
	Delete(ctx context.Context, id string) error
}

type schemaRepo struct {
	collection *mongo.Collection
}

// NewSchemaRepo creates a new schema repository
func NewSchemaRepo(db *mongo.Database) SchemaRepo {
	return &schemaRepo{
		collection: db.Collection("schemas"),
	}
}

func (r *schemaRepo) Create(ctx context.Context, schema *model.Schema) (string, error) {
	// Ids are stored as hex strings so documents round-trip into the string
	// ID field without a custom decoder.
	schema.ID = primitive.NewObjectID().Hex()
	schema.CreatedAt = time.Now()
	schema.UpdatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, schema); err != nil {
		return "", err
	}
	return schema.ID, nil
}

func (r *schemaRepo) GetByID(ctx context.Context, id string) (*model.Schema, error) {
	var schema model.Schema
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&schema)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	schema.ID = id
	return &schema, nil
}

func (r *schemaRepo) GetByHostID(ctx context.Context, hostID string) ([]*model.Schema, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"hostId": hostID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var schemas []*model.Schema
	if err := cursor.All(ctx, &schemas); err != nil {
		return nil, err
	}
	return schemas, nil
}

func (r *schemaRepo) Update(ctx context.Context, schema *model.Schema) error {
	schema.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": schema.ID}, schema)
	return err
}

func (r *schemaRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
