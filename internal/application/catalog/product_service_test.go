package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/storehub/backend/internal/domain/catalog"
	"github.com/storehub/backend/internal/domain/shared"
	"go.uber.org/zap"
)

func newProductService(t *testing.T) (*ProductService, *mockProductRepository, *mockCategoryRepository) {
	t.Helper()
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	return NewProductService(products, categories, zap.NewNop()), products, categories
}

func TestProductServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates product in existing category", func(t *testing.T) {
		svc, products, categories := newProductService(t)
		category, err := catalog.NewCategory("Phones", "")
		require.NoError(t, err)
		categories.On("FindByID", ctx, category.ID).Return(category, nil)
		products.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		resp, err := svc.Create(ctx, CreateProductRequest{
			CategoryID:     category.ID.String(),
			Name:           "iPhone 13",
			Price:          decimal.NewFromInt(999),
			WholesalePrice: decimal.NewFromInt(850),
			Stock:          5,
		})

		require.NoError(t, err)
		assert.Equal(t, "iPhone 13", resp.Name)
		assert.Equal(t, category.ID.String(), resp.CategoryID)
		products.AssertExpectations(t)
	})

	t.Run("rejects malformed category id", func(t *testing.T) {
		svc, products, _ := newProductService(t)

		_, err := svc.Create(ctx, CreateProductRequest{CategoryID: "nope", Name: "iPhone"})

		require.Error(t, err)
		products.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		svc, products, categories := newProductService(t)
		categories.On("FindByID", ctx, mock.Anything).Return(nil, shared.ErrNotFound)

		_, err := svc.Create(ctx, CreateProductRequest{
			CategoryID: "7b4a2f9c-07dd-4f2b-b0ac-1c2de1a5f3aa",
			Name:       "iPhone",
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		products.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestProductServiceListByCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("returns products for category", func(t *testing.T) {
		svc, products, categories := newProductService(t)
		category, err := catalog.NewCategory("Phones", "")
		require.NoError(t, err)
		product, err := catalog.NewProduct(category.ID, "iPhone", "", decimal.NewFromInt(999), decimal.Zero, 1)
		require.NoError(t, err)

		categories.On("FindByID", ctx, category.ID).Return(category, nil)
		products.On("FindByCategory", ctx, category.ID).Return([]catalog.Product{*product}, nil)

		resp, err := svc.ListByCategory(ctx, category.ID)

		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "iPhone", resp[0].Name)
	})

	t.Run("unknown category", func(t *testing.T) {
		svc, _, categories := newProductService(t)
		category, err := catalog.NewCategory("Phones", "")
		require.NoError(t, err)
		categories.On("FindByID", ctx, category.ID).Return(nil, shared.ErrNotFound)

		_, err = svc.ListByCategory(ctx, category.ID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestProductServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("moves product to another category", func(t *testing.T) {
		svc, products, categories := newProductService(t)
		oldCategory, err := catalog.NewCategory("Phones", "")
		require.NoError(t, err)
		newCategory, err := catalog.NewCategory("Tablets", "")
		require.NoError(t, err)
		product, err := catalog.NewProduct(oldCategory.ID, "iPad", "", decimal.NewFromInt(700), decimal.Zero, 2)
		require.NoError(t, err)

		products.On("FindByID", ctx, product.ID).Return(product, nil)
		categories.On("FindByID", ctx, newCategory.ID).Return(newCategory, nil)
		products.On("Save", ctx, product).Return(nil)

		resp, err := svc.Update(ctx, product.ID, UpdateProductRequest{
			CategoryID: newCategory.ID.String(),
			Name:       "iPad Air",
			Price:      decimal.NewFromInt(750),
			Stock:      2,
		})

		require.NoError(t, err)
		assert.Equal(t, newCategory.ID.String(), resp.CategoryID)
		assert.Equal(t, "iPad Air", resp.Name)
	})
}
