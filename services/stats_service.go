package services

import (
	"context"

	"bistro-boss-server/dto"
	"bistro-boss-server/models"
	"bistro-boss-server/repositories"
)

type IStatsService interface {
	AdminStats(ctx context.Context) (*dto.AdminStatsResponse, error)
	OrderStats(ctx context.Context) ([]models.CategoryStat, error)
}

type StatsService struct {
	userRepository    repositories.IUserRepository
	menuRepository    repositories.IMenuRepository
	paymentRepository repositories.IPaymentRepository
}

func NewStatsService(
	userRepository repositories.IUserRepository,
	menuRepository repositories.IMenuRepository,
	paymentRepository repositories.IPaymentRepository,
) IStatsService {
	return &StatsService{
		userRepository:    userRepository,
		menuRepository:    menuRepository,
		paymentRepository: paymentRepository,
	}
}

func (s *StatsService) AdminStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	users, err := s.userRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	menuItems, err := s.menuRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.paymentRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.paymentRepository.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AdminStatsResponse{
		Users:     users,
		MenuItems: menuItems,
		Orders:    orders,
		Revinue:   revenue,
	}, nil
}

func (s *StatsService) OrderStats(ctx context.Context) ([]models.CategoryStat, error) {
	return s.paymentRepository.OrderStats(ctx)
}
