package repositories

import (
	"context"
	"errors"

	"bistro-boss-server/constants"
	"bistro-boss-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type IMenuRepository interface {
	FindAll(ctx context.Context) ([]models.MenuItem, error)
	// FindById returns (nil, nil) for an absent document.
	FindById(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error)
	Insert(ctx context.Context, item models.MenuItem) (interface{}, error)
	// Update overwrites the given fields with $set; callers supply every
	// replaceable field so omitted values are cleared, not kept.
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type MenuRepository struct {
	collection *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) IMenuRepository {
	return &MenuRepository{collection: db.Collection(constants.CollectionMenu)}
}

func (r *MenuRepository) FindAll(ctx context.Context) ([]models.MenuItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var items []models.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuRepository) FindById(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Insert(ctx context.Context, item models.MenuItem) (interface{}, error) {
	result, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}
	return result.InsertedID, nil
}

func (r *MenuRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (r *MenuRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *MenuRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.EstimatedDocumentCount(ctx)
}
