package controllers

import (
	"log"
	"net/http"

	"bistro-boss-server/constants"
	"bistro-boss-server/services"

	"github.com/gin-gonic/gin"
)

type IStatsController interface {
	AdminStats(ctx *gin.Context)
	OrderStats(ctx *gin.Context)
}

type StatsController struct {
	service services.IStatsService
}

func NewStatsController(service services.IStatsService) IStatsController {
	return &StatsController{service: service}
}

func (c *StatsController) AdminStats(ctx *gin.Context) {
	stats, err := c.service.AdminStats(ctx.Request.Context())
	if err != nil {
		log.Printf("Admin stats error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

func (c *StatsController) OrderStats(ctx *gin.Context) {
	stats, err := c.service.OrderStats(ctx.Request.Context())
	if err != nil {
		log.Printf("Order stats error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
