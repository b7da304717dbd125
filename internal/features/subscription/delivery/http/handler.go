package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"botlist-backend/internal/common/middleware"
	"botlist-backend/internal/features/subscription/service"
)

type SubscriptionHandler struct {
	service service.SubscriptionService
}

func NewSubscriptionHandler(service service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{service: service}
}

func (h *SubscriptionHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/subscriptions", h.Subscribe)
	router.GET("/subscriptions", h.ListActive)
	router.GET("/subscriptions/:chatId", h.Status)
	router.DELETE("/subscriptions/:chatId", h.Unsubscribe)
}

type subscribeRequest struct {
	ChatID     int64 `json:"chat_id" binding:"required"`
	TelegramID int64 `json:"telegram_id" binding:"required"`
}

func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "chat_id and telegram_id are required"})
		return
	}

	if err := h.service.Subscribe(c.Request.Context(), req.ChatID, req.TelegramID); err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Subscribed to updates"})
}

func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	chatID, err := strconv.ParseInt(c.Param("chatId"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid chat ID"})
		return
	}

	if svcErr := h.service.Unsubscribe(c.Request.Context(), chatID); svcErr != nil {
		middleware.AbortWithError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Unsubscribed from updates"})
}

func (h *SubscriptionHandler) Status(c *gin.Context) {
	chatID, err := strconv.ParseInt(c.Param("chatId"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid chat ID"})
		return
	}

	subscribed, svcErr := h.service.IsSubscribed(c.Request.Context(), chatID)
	if svcErr != nil {
		middleware.AbortWithError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribed": subscribed})
}

func (h *SubscriptionHandler) ListActive(c *gin.Context) {
	chatIDs, err := h.service.ActiveChatIDs(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	subscribers := make([]gin.H, 0, len(chatIDs))
	for _, chatID := range chatIDs {
		subscribers = append(subscribers, gin.H{"chat_id": chatID})
	}
	c.JSON(http.StatusOK, subscribers)
}
