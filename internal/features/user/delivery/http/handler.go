package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"botlist-backend/internal/common/middleware"
	"botlist-backend/internal/features/user/service"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/users", h.GetOrCreate)
	router.GET("/users/:telegramId", h.Get)
	router.GET("/users/:telegramId/banned", h.IsBanned)

	admin := router.Group("/admin")
	{
		admin.POST("/ban", h.Ban)
		admin.POST("/unban", h.Unban)
		admin.GET("/userinfo/:userId", h.UserInfo)
		admin.GET("/check/:telegramId", h.AdminCheck)
	}
}

type getOrCreateRequest struct {
	TelegramID int64   `json:"telegram_id" binding:"required"`
	Username   *string `json:"username"`
	FirstName  *string `json:"first_name"`
}

func (h *UserHandler) GetOrCreate(c *gin.Context) {
	var req getOrCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "telegram_id is required"})
		return
	}

	user, err := h.service.GetOrCreate(c.Request.Context(), req.TelegramID, req.Username, req.FirstName)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Get(c *gin.Context) {
	telegramID, err := strconv.ParseInt(c.Param("telegramId"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid telegram ID"})
		return
	}

	user, svcErr := h.service.Get(c.Request.Context(), telegramID)
	if svcErr != nil {
		middleware.AbortWithError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) IsBanned(c *gin.Context) {
	telegramID, err := strconv.ParseInt(c.Param("telegramId"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid telegram ID"})
		return
	}

	banned, svcErr := h.service.IsBanned(c.Request.Context(), telegramID)
	if svcErr != nil {
		middleware.AbortWithError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"banned": banned})
}

type moderationRequest struct {
	UserID          int64 `json:"user_id" binding:"required"`
	AdminTelegramID int64 `json:"admin_telegram_id" binding:"required"`
}

func (h *UserHandler) Ban(c *gin.Context) {
	var req moderationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "user_id and admin_telegram_id are required"})
		return
	}

	if err := h.service.Ban(c.Request.Context(), req.AdminTelegramID, req.UserID); err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User banned"})
}

func (h *UserHandler) Unban(c *gin.Context) {
	var req moderationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "user_id and admin_telegram_id are required"})
		return
	}

	if err := h.service.Unban(c.Request.Context(), req.AdminTelegramID, req.UserID); err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User unbanned"})
}

func (h *UserHandler) UserInfo(c *gin.Context) {
	targetID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	adminID, err := strconv.ParseInt(c.Query("admin_id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "admin_id is required"})
		return
	}

	info, svcErr := h.service.UserInfo(c.Request.Context(), adminID, targetID)
	if svcErr != nil {
		middleware.AbortWithError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *UserHandler) AdminCheck(c *gin.Context) {
	telegramID, err := strconv.ParseInt(c.Param("telegramId"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid telegram ID"})
		return
	}

	isAdmin, svcErr := h.service.IsAdmin(c.Request.Context(), telegramID)
	if svcErr != nil {
		middleware.AbortWithError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_admin": isAdmin})
}
