package services

import (
	"context"
	"errors"
	"time"

	"bistro-boss-server/dto"
	"bistro-boss-server/models"
	"bistro-boss-server/repositories"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidCartID = errors.New("invalid cart id")

type IPaymentService interface {
	CreatePaymentIntent(price float64) (string, error)
	// RecordPayment inserts the payment and then removes the paid-for cart
	// rows. The two writes are not transactional.
	RecordPayment(ctx context.Context, input dto.PaymentInput) (interface{}, int64, error)
	FindByEmail(ctx context.Context, email string) ([]models.Payment, error)
}

type PaymentService struct {
	repository     repositories.IPaymentRepository
	cartRepository repositories.ICartRepository
}

func NewPaymentService(repository repositories.IPaymentRepository, cartRepository repositories.ICartRepository) IPaymentService {
	return &PaymentService{
		repository:     repository,
		cartRepository: cartRepository,
	}
}

// CreatePaymentIntent asks Stripe for a card-only intent and hands the
// client secret back to the caller. The amount is the price in cents,
// truncated.
func (s *PaymentService) CreatePaymentIntent(price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(int64(price * 100)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

func (s *PaymentService) RecordPayment(ctx context.Context, input dto.PaymentInput) (interface{}, int64, error) {
	cartIDs := make([]primitive.ObjectID, 0, len(input.CartIDs))
	for _, hex := range input.CartIDs {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return nil, 0, ErrInvalidCartID
		}
		cartIDs = append(cartIDs, id)
	}

	payment := models.Payment{
		Email:         input.Email,
		Price:         input.Price,
		TransactionID: input.TransactionID,
		Date:          time.Now(),
		CartIDs:       input.CartIDs,
		MenuItemIDs:   input.MenuItemIDs,
		Status:        input.Status,
	}

	insertedID, err := s.repository.Insert(ctx, payment)
	if err != nil {
		return nil, 0, err
	}

	// A crash here leaves a recorded payment with its cart rows still in
	// place; there is no compensating write.
	deletedCount, err := s.cartRepository.DeleteMany(ctx, cartIDs)
	if err != nil {
		return insertedID, 0, err
	}
	return insertedID, deletedCount, nil
}

func (s *PaymentService) FindByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	return s.repository.FindByEmail(ctx, email)
}
