package repositories

import (
	"context"

	"bistro-boss-server/constants"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Cart rows arrive as arbitrary client payloads and are stored as-is.
type ICartRepository interface {
	Insert(ctx context.Context, item bson.M) (interface{}, error)
	FindByEmail(ctx context.Context, email string) ([]bson.M, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

type CartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(db *mongo.Database) ICartRepository {
	return &CartRepository{collection: db.Collection(constants.CollectionCarts)}
}

func (r *CartRepository) Insert(ctx context.Context, item bson.M) (interface{}, error) {
	result, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}
	return result.InsertedID, nil
}

func (r *CartRepository) FindByEmail(ctx context.Context, email string) ([]bson.M, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	var items []bson.M
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CartRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *CartRepository) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
