package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"botlist-backend/internal/common/middleware"
	"botlist-backend/internal/features/catalog/models"
	"botlist-backend/internal/features/catalog/service"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(service service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.Root)
	router.GET("/categories", h.Categories)
	router.GET("/gimme", h.ListAll)
	router.GET("/search", h.Search)

	bots := router.Group("/bots")
	{
		bots.GET("/category/:id", h.ListByCategory)
		bots.GET("/random", h.Random)
		bots.GET("/new", h.Newest)
		bots.GET("/best", h.BestRated)
		bots.GET("/username/:username", h.GetByUsername)
	}

	admin := router.Group("/admin")
	{
		admin.POST("/bots", h.AdminAdd)
		admin.PUT("/bots/username/:username", h.AdminUpdate)
	}
}

func (h *CatalogHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "GET /search?username=file&name=convert&description=audio")
}

func (h *CatalogHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Categories())
}

func (h *CatalogHandler) ListAll(c *gin.Context) {
	bots, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, bots)
}

func (h *CatalogHandler) ListByCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID provided."})
		return
	}

	bots, svcErr := h.service.ListByCategory(c.Request.Context(), categoryID)
	if svcErr != nil {
		middleware.AbortWithError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, bots)
}

func (h *CatalogHandler) Search(c *gin.Context) {
	bots, err := h.service.Search(c.Request.Context(),
		c.Query("name"), c.Query("username"), c.Query("description"))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, bots)
}

func (h *CatalogHandler) Random(c *gin.Context) {
	bots, err := h.service.Random(c.Request.Context(), limitQuery(c, 5))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, bots)
}

func (h *CatalogHandler) Newest(c *gin.Context) {
	bots, err := h.service.Newest(c.Request.Context(), limitQuery(c, 10))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, bots)
}

func (h *CatalogHandler) BestRated(c *gin.Context) {
	bots, err := h.service.BestRated(c.Request.Context(), limitQuery(c, 10))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, bots)
}

func (h *CatalogHandler) GetByUsername(c *gin.Context) {
	bot, err := h.service.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, bot)
}

type adminAddRequest struct {
	Username        string `json:"username" binding:"required"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	CategoryID      int    `json:"category_id"`
	AdminTelegramID int64  `json:"admin_telegram_id" binding:"required"`
}

func (h *CatalogHandler) AdminAdd(c *gin.Context) {
	var req adminAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "username and admin_telegram_id are required"})
		return
	}

	bot, err := h.service.AdminAdd(c.Request.Context(),
		req.AdminTelegramID, req.Username, req.Name, req.Description, req.CategoryID)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, bot)
}

type adminUpdateRequest struct {
	models.BotUpdate
	AdminTelegramID int64 `json:"admin_telegram_id" binding:"required"`
}

func (h *CatalogHandler) AdminUpdate(c *gin.Context) {
	var req adminUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "admin_telegram_id is required"})
		return
	}

	bot, err := h.service.AdminUpdate(c.Request.Context(), req.AdminTelegramID, c.Param("username"), req.BotUpdate)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, bot)
}

// limitQuery parses ?limit=N, falling back to the endpoint default on
// missing or malformed values. Range clamping happens in the service.
func limitQuery(c *gin.Context, def int) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return limit
}
