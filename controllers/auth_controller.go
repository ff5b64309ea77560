package controllers

import (
	"net/http"

	"bistro-boss-server/constants"
	"bistro-boss-server/dto"
	"bistro-boss-server/services"

	"github.com/gin-gonic/gin"
)

type IAuthController interface {
	IssueToken(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

// IssueToken signs the request body as token claims. The client decides what
// goes in; identity is established upstream of this service.
func (c *AuthController) IssueToken(ctx *gin.Context) {
	var claims map[string]interface{}
	if err := ctx.ShouldBindJSON(&claims); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	token, err := c.service.IssueToken(claims)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{Token: *token})
}
