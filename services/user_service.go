package services

import (
	"context"

	"bistro-boss-server/constants"
	"bistro-boss-server/dto"
	"bistro-boss-server/models"
	"bistro-boss-server/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IUserService interface {
	// Register inserts the user unless one with the same email exists.
	// A nil inserted id with a nil error means the email was already taken.
	Register(ctx context.Context, input dto.RegisterUserInput) (interface{}, error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (int64, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type UserService struct {
	repository repositories.IUserRepository
}

func NewUserService(repository repositories.IUserRepository) IUserService {
	return &UserService{repository: repository}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterUserInput) (interface{}, error) {
	// Check-then-insert: uniqueness is not backed by a database constraint,
	// so two concurrent registrations of the same email can both pass the
	// check. Kept as the documented contract of POST /users.
	existing, err := s.repository.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, nil
	}

	user := models.User{
		Name:  input.Name,
		Email: input.Email,
	}
	return s.repository.Insert(ctx, user)
}

func (s *UserService) FindAll(ctx context.Context) ([]models.User, error) {
	return s.repository.FindAll(ctx)
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repository.FindByEmail(ctx, email)
}

func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.repository.Delete(ctx, id)
}

func (s *UserService) PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.repository.SetRole(ctx, id, constants.RoleAdmin)
}

func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repository.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	return user.IsAdmin(), nil
}
