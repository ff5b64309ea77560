package controllers

import (
	"errors"
	"log"
	"net/http"

	"bistro-boss-server/constants"
	"bistro-boss-server/dto"
	"bistro-boss-server/services"

	"github.com/gin-gonic/gin"
)

type IPaymentController interface {
	CreateIntent(ctx *gin.Context)
	Record(ctx *gin.Context)
	FindByEmail(ctx *gin.Context)
}

type PaymentController struct {
	service services.IPaymentService
}

func NewPaymentController(service services.IPaymentService) IPaymentController {
	return &PaymentController{service: service}
}

func (c *PaymentController) CreateIntent(ctx *gin.Context) {
	var input dto.CreatePaymentIntentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	clientSecret, err := c.service.CreatePaymentIntent(input.Price)
	if err != nil {
		log.Printf("Create payment intent error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.PaymentIntentResponse{ClientSecret: clientSecret})
}

func (c *PaymentController) Record(ctx *gin.Context) {
	var input dto.PaymentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	insertedID, deletedCount, err := c.service.RecordPayment(ctx.Request.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCartID) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
			return
		}
		log.Printf("Record payment error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"paymentResult": gin.H{"insertedId": insertedID},
		"deleteResult":  gin.H{"deletedCount": deletedCount},
	})
}

// FindByEmail returns the caller's own payments; asking about another email
// is forbidden.
func (c *PaymentController) FindByEmail(ctx *gin.Context) {
	email := ctx.Param("email")
	if email != ctx.GetString("email") {
		ctx.JSON(http.StatusForbidden, gin.H{"error": constants.ErrForbidden})
		return
	}

	payments, err := c.service.FindByEmail(ctx.Request.Context(), email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, payments)
}
