package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"botlist-backend/internal/common/middleware"
	"botlist-backend/internal/features/favorite/service"
)

type FavoriteHandler struct {
	service service.FavoriteService
}

func NewFavoriteHandler(service service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

func (h *FavoriteHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/users/:telegramId/favorites", h.List)
	router.POST("/users/:telegramId/favorites", h.Add)
	router.DELETE("/users/:telegramId/favorites/:botUsername", h.Remove)
}

func (h *FavoriteHandler) List(c *gin.Context) {
	telegramID, err := strconv.ParseInt(c.Param("telegramId"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid telegram ID"})
		return
	}

	bots, svcErr := h.service.List(c.Request.Context(), telegramID)
	if svcErr != nil {
		middleware.AbortWithError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, bots)
}

type addFavoriteRequest struct {
	BotUsername string `json:"bot_username" binding:"required"`
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	telegramID, err := strconv.ParseInt(c.Param("telegramId"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid telegram ID"})
		return
	}

	var req addFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "bot_username is required"})
		return
	}

	if svcErr := h.service.Add(c.Request.Context(), telegramID, req.BotUsername); svcErr != nil {
		middleware.AbortWithError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Bot added to favorites"})
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	telegramID, err := strconv.ParseInt(c.Param("telegramId"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid telegram ID"})
		return
	}

	if svcErr := h.service.Remove(c.Request.Context(), telegramID, c.Param("botUsername")); svcErr != nil {
		middleware.AbortWithError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Bot removed from favorites"})
}
