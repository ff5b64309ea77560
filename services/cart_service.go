package services

import (
	"context"

	"bistro-boss-server/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ICartService interface {
	Add(ctx context.Context, item bson.M) (interface{}, error)
	FindByEmail(ctx context.Context, email string) ([]bson.M, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type CartService struct {
	repository repositories.ICartRepository
}

func NewCartService(repository repositories.ICartRepository) ICartService {
	return &CartService{repository: repository}
}

func (s *CartService) Add(ctx context.Context, item bson.M) (interface{}, error) {
	return s.repository.Insert(ctx, item)
}

func (s *CartService) FindByEmail(ctx context.Context, email string) ([]bson.M, error) {
	return s.repository.FindByEmail(ctx, email)
}

func (s *CartService) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.repository.Delete(ctx, id)
}
