package controllers

import (
	"log"
	"net/http"

	"bistro-boss-server/constants"
	"bistro-boss-server/dto"
	"bistro-boss-server/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IUserController interface {
	Register(ctx *gin.Context)
	FindAll(ctx *gin.Context)
	Delete(ctx *gin.Context)
	PromoteToAdmin(ctx *gin.Context)
	CheckAdmin(ctx *gin.Context)
}

type UserController struct {
	service services.IUserService
}

func NewUserController(service services.IUserService) IUserController {
	return &UserController{service: service}
}

func (c *UserController) Register(ctx *gin.Context) {
	var input dto.RegisterUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	insertedID, err := c.service.Register(ctx.Request.Context(), input)
	if err != nil {
		log.Printf("Register user error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	if insertedID == nil {
		ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgUserExists, "insertedId": nil})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"insertedId": insertedID})
}

func (c *UserController) FindAll(ctx *gin.Context) {
	users, err := c.service.FindAll(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, users)
}

func (c *UserController) Delete(ctx *gin.Context) {
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

func (c *UserController) PromoteToAdmin(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	modifiedCount, err := c.service.PromoteToAdmin(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"modifiedCount": modifiedCount})
}

// CheckAdmin tells a caller whether an email belongs to an admin. Callers may
// only ask about their own token's identity.
func (c *UserController) CheckAdmin(ctx *gin.Context) {
	email := ctx.Param("email")
	if email != ctx.GetString("email") {
		ctx.JSON(http.StatusForbidden, gin.H{"error": constants.ErrForbidden})
		return
	}

	admin, err := c.service.IsAdmin(ctx.Request.Context(), email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.AdminCheckResponse{Admin: admin})
}
