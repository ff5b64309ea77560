package controllers

import (
	"net/http"

	"bistro-boss-server/constants"
	"bistro-boss-server/services"

	"github.com/gin-gonic/gin"
)

type IReviewController interface {
	FindAll(ctx *gin.Context)
}

type ReviewController struct {
	service services.IReviewService
}

func NewReviewController(service services.IReviewService) IReviewController {
	return &ReviewController{service: service}
}

func (c *ReviewController) FindAll(ctx *gin.Context) {
	reviews, err := c.service.FindAll(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, reviews)
}
