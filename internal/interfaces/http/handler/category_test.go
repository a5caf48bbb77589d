package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	catalogapp "github.com/storehub/backend/internal/application/catalog"
	"github.com/storehub/backend/internal/domain/catalog"
	"github.com/storehub/backend/internal/domain/shared"
	"go.uber.org/zap"
)

type categoryTestEnv struct {
	engine     *gin.Engine
	categories *mockCategoryRepository
	products   *mockProductRepository
}

func newCategoryTestEnv(t *testing.T) *categoryTestEnv {
	t.Helper()

	categories := new(mockCategoryRepository)
	products := new(mockProductRepository)
	svc := catalogapp.NewCategoryService(categories, products, zap.NewNop())

	engine := gin.New()
	api := engine.Group("/api/v1")
	NewCategoryHandler(svc).RegisterRoutes(api)

	return &categoryTestEnv{engine: engine, categories: categories, products: products}
}

func TestCategoryEndpoints(t *testing.T) {
	t.Run("GET /category lists categories", func(t *testing.T) {
		env := newCategoryTestEnv(t)
		category, err := catalog.NewCategory("Phones", "Mobile devices")
		require.NoError(t, err)
		env.categories.On("FindAll", mock.Anything, mock.Anything).Return([]catalog.Category{*category}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/category", nil)
		rec := httptest.NewRecorder()
		env.engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeResponse(t, rec)
		require.Equal(t, true, body["success"])
		list := body["data"].([]interface{})
		require.Len(t, list, 1)
		assert.Equal(t, "Phones", list[0].(map[string]interface{})["name"])
	})

	t.Run("POST /category creates", func(t *testing.T) {
		env := newCategoryTestEnv(t)
		env.categories.On("FindByName", mock.Anything, "Phones").Return(nil, shared.ErrNotFound)
		env.categories.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Category")).Return(nil)

		rec := postJSON(t, env.engine, "/api/v1/category", gin.H{"name": "Phones"})

		require.Equal(t, http.StatusCreated, rec.Code)
		data := decodeResponse(t, rec)["data"].(map[string]interface{})
		assert.Equal(t, "Phones", data["name"])
	})

	t.Run("duplicate name returns 409", func(t *testing.T) {
		env := newCategoryTestEnv(t)
		existing, err := catalog.NewCategory("Phones", "")
		require.NoError(t, err)
		env.categories.On("FindByName", mock.Anything, "Phones").Return(existing, nil)

		rec := postJSON(t, env.engine, "/api/v1/category", gin.H{"name": "Phones"})

		require.Equal(t, http.StatusConflict, rec.Code)
		body := decodeResponse(t, rec)
		assert.Equal(t, "CATEGORY_EXISTS", body["error"].(map[string]interface{})["code"])
	})

	t.Run("delete of category in use returns 409", func(t *testing.T) {
		env := newCategoryTestEnv(t)
		category, err := catalog.NewCategory("Phones", "")
		require.NoError(t, err)
		env.categories.On("FindByID", mock.Anything, category.ID).Return(category, nil)
		env.products.On("CountByCategory", mock.Anything, category.ID).Return(int64(2), nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/category/"+category.ID.String(), nil)
		rec := httptest.NewRecorder()
		env.engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusConflict, rec.Code)
		body := decodeResponse(t, rec)
		assert.Equal(t, "CATEGORY_IN_USE", body["error"].(map[string]interface{})["code"])
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		env := newCategoryTestEnv(t)
		category, err := catalog.NewCategory("Phones", "")
		require.NoError(t, err)
		env.categories.On("FindByID", mock.Anything, category.ID).Return(nil, shared.ErrNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/category/"+category.ID.String(), nil)
		rec := httptest.NewRecorder()
		env.engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		env := newCategoryTestEnv(t)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/category/not-a-uuid", nil)
		rec := httptest.NewRecorder()
		env.engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
