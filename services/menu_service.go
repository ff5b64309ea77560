package services

import (
	"context"

	"bistro-boss-server/dto"
	"bistro-boss-server/models"
	"bistro-boss-server/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IMenuService interface {
	FindAll(ctx context.Context) ([]models.MenuItem, error)
	FindById(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error)
	Create(ctx context.Context, input dto.CreateMenuItemInput) (interface{}, error)
	Update(ctx context.Context, id primitive.ObjectID, input dto.UpdateMenuItemInput) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type MenuService struct {
	repository repositories.IMenuRepository
}

func NewMenuService(repository repositories.IMenuRepository) IMenuService {
	return &MenuService{repository: repository}
}

func (s *MenuService) FindAll(ctx context.Context) ([]models.MenuItem, error) {
	return s.repository.FindAll(ctx)
}

func (s *MenuService) FindById(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	return s.repository.FindById(ctx, id)
}

func (s *MenuService) Create(ctx context.Context, input dto.CreateMenuItemInput) (interface{}, error) {
	item := models.MenuItem{
		Name:     input.Name,
		Category: input.Category,
		Price:    input.Price,
		Recipe:   input.Recipe,
		Image:    input.Image,
	}
	return s.repository.Insert(ctx, item)
}

// Update replaces the replaceable fields wholesale. All five are written
// unconditionally, so a field omitted from the request clears the stored one.
func (s *MenuService) Update(ctx context.Context, id primitive.ObjectID, input dto.UpdateMenuItemInput) (int64, error) {
	fields := bson.M{
		"name":     input.Name,
		"category": input.Category,
		"price":    input.Price,
		"recipe":   input.Recipe,
		"image":    input.Image,
	}
	return s.repository.Update(ctx, id, fields)
}

func (s *MenuService) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.repository.Delete(ctx, id)
}
