package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/storehub/backend/internal/domain/shared"
)

func TestNewProduct(t *testing.T) {
	categoryID := uuid.New()

	t.Run("creates product with valid input", func(t *testing.T) {
		product, err := NewProduct(categoryID, "iPhone 13", "128GB", decimal.NewFromInt(999), decimal.NewFromInt(850), 10)

		require.NoError(t, err)
		assert.Equal(t, categoryID, product.CategoryID)
		assert.Equal(t, "iPhone 13", product.Name)
		assert.True(t, product.Price.Equal(decimal.NewFromInt(999)))
		assert.True(t, product.WholesalePrice.Equal(decimal.NewFromInt(850)))
		assert.Equal(t, 10, product.Stock)
	})

	t.Run("rejects nil category", func(t *testing.T) {
		_, err := NewProduct(uuid.Nil, "iPhone 13", "", decimal.NewFromInt(999), decimal.Zero, 0)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CATEGORY", domainErr.Code)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewProduct(categoryID, "iPhone 13", "", decimal.NewFromInt(-1), decimal.Zero, 0)

		require.Error(t, err)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		_, err := NewProduct(categoryID, "iPhone 13", "", decimal.NewFromInt(999), decimal.Zero, -1)

		require.Error(t, err)
	})
}

func TestProductStock(t *testing.T) {
	newProduct := func(t *testing.T, stock int) *Product {
		t.Helper()
		product, err := NewProduct(uuid.New(), "Cable", "", decimal.NewFromInt(5), decimal.NewFromInt(3), stock)
		require.NoError(t, err)
		return product
	}

	t.Run("deducts available stock", func(t *testing.T) {
		product := newProduct(t, 10)

		err := product.DeductStock(4)

		require.NoError(t, err)
		assert.Equal(t, 6, product.Stock)
	})

	t.Run("rejects deduction beyond stock", func(t *testing.T) {
		product := newProduct(t, 2)

		err := product.DeductStock(3)

		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		assert.Equal(t, 2, product.Stock)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		product := newProduct(t, 2)

		assert.Error(t, product.DeductStock(0))
		assert.Error(t, product.RestoreStock(-1))
	})

	t.Run("restores stock", func(t *testing.T) {
		product := newProduct(t, 1)

		err := product.RestoreStock(3)

		require.NoError(t, err)
		assert.Equal(t, 4, product.Stock)
	})
}
