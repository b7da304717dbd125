package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"botlist-backend/internal/common/middleware"
	"botlist-backend/internal/features/report/service"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(service service.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/spam-reports", h.ReportSpam)
	router.POST("/offline-reports", h.ReportOffline)
}

type spamReportRequest struct {
	BotUsername string  `json:"bot_username" binding:"required"`
	TelegramID  int64   `json:"telegram_id" binding:"required"`
	Reason      *string `json:"reason"`
}

func (h *ReportHandler) ReportSpam(c *gin.Context) {
	var req spamReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "bot_username and telegram_id are required"})
		return
	}

	if err := h.service.ReportSpam(c.Request.Context(), req.TelegramID, req.BotUsername, req.Reason); err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Spam report submitted"})
}

type offlineReportRequest struct {
	BotUsername string `json:"bot_username" binding:"required"`
	TelegramID  int64  `json:"telegram_id" binding:"required"`
}

func (h *ReportHandler) ReportOffline(c *gin.Context) {
	var req offlineReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "bot_username and telegram_id are required"})
		return
	}

	if err := h.service.ReportOffline(c.Request.Context(), req.TelegramID, req.BotUsername); err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Bot reported as offline"})
}
