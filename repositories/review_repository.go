package repositories

import (
	"context"

	"bistro-boss-server/constants"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Reviews are written by another system; this service only reads them, so
// they stay untyped documents.
type IReviewRepository interface {
	FindAll(ctx context.Context) ([]bson.M, error)
}

type ReviewRepository struct {
	collection *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) IReviewRepository {
	return &ReviewRepository{collection: db.Collection(constants.CollectionReviews)}
}

func (r *ReviewRepository) FindAll(ctx context.Context) ([]bson.M, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var reviews []bson.M
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
