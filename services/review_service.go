package services

import (
	"context"

	"bistro-boss-server/repositories"

	"go.mongodb.org/mongo-driver/bson"
)

type IReviewService interface {
	FindAll(ctx context.Context) ([]bson.M, error)
}

type ReviewService struct {
	repository repositories.IReviewRepository
}

func NewReviewService(repository repositories.IReviewRepository) IReviewService {
	return &ReviewService{repository: repository}
}

func (s *ReviewService) FindAll(ctx context.Context) ([]bson.M, error) {
	return s.repository.FindAll(ctx)
}
