package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botlist-backend/internal/common/apperr"
	"botlist-backend/internal/features/catalog/models"
	"botlist-backend/internal/features/catalog/service"
)

type stubCatalog struct {
	service.CatalogService
	bots []*models.Bot
	err  error
}

func (s *stubCatalog) Categories() []models.Category { return models.Categories }

func (s *stubCatalog) Search(ctx context.Context, name, username, description string) ([]*models.Bot, error) {
	return s.bots, s.err
}

func (s *stubCatalog) GetByUsername(ctx context.Context, username string) (*models.Bot, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.bots[0], nil
}

func newTestRouter(svc service.CatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewCatalogHandler(svc).RegisterRoutes(router)
	return router
}

func TestCategoriesEndpoint(t *testing.T) {
	router := newTestRouter(&stubCatalog{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var categories []models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	assert.Len(t, categories, 28)
}

func TestSearchEndpointMapsValidationError(t *testing.T) {
	router := newTestRouter(&stubCatalog{err: apperr.Validation("minimum query length allowed is 3.")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/search?name=ab", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "minimum query length allowed is 3.", body["error"])
}

func TestGetByUsernameNotFound(t *testing.T) {
	router := newTestRouter(&stubCatalog{err: apperr.NotFound("Bot not found")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bots/username/missing", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Bot not found", body["error"])
}

func TestListByCategoryRejectsBadID(t *testing.T) {
	router := newTestRouter(&stubCatalog{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bots/category/abc", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid category ID provided.", body["error"])
}
