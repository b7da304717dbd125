package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"botlist-backend/internal/common/middleware"
	"botlist-backend/internal/features/submission/service"
)

type SubmissionHandler struct {
	service service.SubmissionService
}

func NewSubmissionHandler(service service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

func (h *SubmissionHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/submissions", h.Submit)
	router.GET("/users/:telegramId/submissions", h.UserSubmissions)

	admin := router.Group("/admin")
	{
		admin.GET("/submissions/pending", h.ListPending)
		admin.POST("/submissions/:id/approve", h.Approve)
		admin.POST("/submissions/:id/reject", h.Reject)
	}
}

type submitRequest struct {
	Username    string `json:"username" binding:"required"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryID  int    `json:"category_id"`
	TelegramID  int64  `json:"telegram_id" binding:"required"`
}

func (h *SubmissionHandler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "username and telegram_id are required"})
		return
	}

	_, err := h.service.Submit(c.Request.Context(), service.SubmitRequest{
		Username:    req.Username,
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		TelegramID:  req.TelegramID,
	})
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Bot submitted for review"})
}

func (h *SubmissionHandler) UserSubmissions(c *gin.Context) {
	telegramID, err := strconv.ParseInt(c.Param("telegramId"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid telegram ID"})
		return
	}

	submissions, svcErr := h.service.UserSubmissions(c.Request.Context(), telegramID)
	if svcErr != nil {
		middleware.AbortWithError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, submissions)
}

func (h *SubmissionHandler) ListPending(c *gin.Context) {
	adminID, err := strconv.ParseInt(c.Query("admin_id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "admin_id is required"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		limit = 10
	}

	submissions, svcErr := h.service.ListPending(c.Request.Context(), adminID, limit)
	if svcErr != nil {
		middleware.AbortWithError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, submissions)
}

type decisionRequest struct {
	AdminTelegramID int64 `json:"admin_telegram_id" binding:"required"`
}

func (h *SubmissionHandler) Approve(c *gin.Context) {
	submissionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	var req decisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "admin_telegram_id is required"})
		return
	}

	bot, svcErr := h.service.Approve(c.Request.Context(), req.AdminTelegramID, submissionID)
	if svcErr != nil {
		middleware.AbortWithError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, bot)
}

func (h *SubmissionHandler) Reject(c *gin.Context) {
	submissionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	var req decisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "admin_telegram_id is required"})
		return
	}

	if svcErr := h.service.Reject(c.Request.Context(), req.AdminTelegramID, submissionID); svcErr != nil {
		middleware.AbortWithError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Submission rejected"})
}
