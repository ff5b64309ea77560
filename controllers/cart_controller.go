package controllers

import (
	"net/http"

	"bistro-boss-server/constants"
	"bistro-boss-server/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ICartController interface {
	Add(ctx *gin.Context)
	FindByEmail(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type CartController struct {
	service services.ICartService
}

func NewCartController(service services.ICartService) ICartController {
	return &CartController{service: service}
}

// Add stores the request body as-is; cart rows have no fixed schema.
func (c *CartController) Add(ctx *gin.Context) {
	var item bson.M
	if err := ctx.ShouldBindJSON(&item); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	insertedID, err := c.service.Add(ctx.Request.Context(), item)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"insertedId": insertedID})
}

// FindByEmail filters by the email query parameter. Nothing ties the caller
// to the requested email; any caller can read any cart.
func (c *CartController) FindByEmail(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrEmailRequired})
		return
	}

	items, err := c.service.FindByEmail(ctx.Request.Context(), email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, items)
}

func (c *CartController) Delete(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	deletedCount, err := c.service.Delete(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deletedCount": deletedCount})
}
