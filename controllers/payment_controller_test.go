package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bistro-boss-server/dto"
	"bistro-boss-server/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPaymentService struct {
	payments []models.Payment
}

func (s *stubPaymentService) CreatePaymentIntent(price float64) (string, error) {
	return "secret_test", nil
}

func (s *stubPaymentService) RecordPayment(ctx context.Context, input dto.PaymentInput) (interface{}, int64, error) {
	return nil, 0, nil
}

func (s *stubPaymentService) FindByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	var matched []models.Payment
	for _, p := range s.payments {
		if p.Email == email {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func setupPaymentRouter(service *stubPaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewPaymentController(service)

	r := gin.New()
	r.GET("/payments/:email", func(ctx *gin.Context) {
		// stands in for AuthMiddleware
		ctx.Set("email", "alice@example.com")
		controller.FindByEmail(ctx)
	})
	return r
}

func TestFindPaymentsForeignEmailForbidden(t *testing.T) {
	r := setupPaymentRouter(&stubPaymentService{})

	req := httptest.NewRequest(http.MethodGet, "/payments/bob@example.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestFindPaymentsOwnEmail(t *testing.T) {
	r := setupPaymentRouter(&stubPaymentService{payments: []models.Payment{
		{Email: "alice@example.com", Price: 20, TransactionID: "tx_1"},
		{Email: "bob@example.com", Price: 5, TransactionID: "tx_2"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/payments/alice@example.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tx_1")
	assert.NotContains(t, w.Body.String(), "tx_2")
}
