package services

import (
	"context"
	"testing"

	"bistro-boss-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeMenuRepository struct {
	items      []models.MenuItem
	lastUpdate bson.M
}

func (f *fakeMenuRepository) FindAll(ctx context.Context) ([]models.MenuItem, error) {
	return f.items, nil
}

func (f *fakeMenuRepository) FindById(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, nil
}

func (f *fakeMenuRepository) Insert(ctx context.Context, item models.MenuItem) (interface{}, error) {
	item.ID = primitive.NewObjectID()
	f.items = append(f.items, item)
	return item.ID, nil
}

func (f *fakeMenuRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	f.lastUpdate = fields
	for i := range f.items {
		if f.items[i].ID == id {
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeMenuRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeMenuRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(f.items)), nil
}

func TestAdminStatsRevenueIsSumOfPayments(t *testing.T) {
	userRepo := &fakeUserRepository{users: []models.User{
		{Email: "a@example.com"},
		{Email: "b@example.com"},
	}}
	menuRepo := &fakeMenuRepository{items: []models.MenuItem{
		{Name: "Pizza", Category: "pizza", Price: 12},
	}}
	paymentRepo := &fakePaymentRepository{payments: []models.Payment{
		{Email: "a@example.com", Price: 10.5},
		{Email: "b@example.com", Price: 4.25},
	}}
	service := NewStatsService(userRepo, menuRepo, paymentRepo)

	stats, err := service.AdminStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Users)
	assert.Equal(t, int64(1), stats.MenuItems)
	assert.Equal(t, int64(2), stats.Orders)
	assert.Equal(t, 14.75, stats.Revinue)
}

func TestAdminStatsZeroPayments(t *testing.T) {
	service := NewStatsService(&fakeUserRepository{}, &fakeMenuRepository{}, &fakePaymentRepository{})

	stats, err := service.AdminStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Orders)
	assert.Equal(t, float64(0), stats.Revinue)
}
