package catalog

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/storehub/backend/internal/domain/catalog"
)

// CreateCategoryRequest is the input for creating a category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateCategoryRequest is the input for updating a category
type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CategoryResponse is the wire representation of a category
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToCategoryResponse converts a domain category to its wire form
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// CreateProductRequest is the input for creating a product
type CreateProductRequest struct {
	CategoryID     string          `json:"categoryId" binding:"required"`
	Name           string          `json:"name" binding:"required"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price" binding:"decimalgte0"`
	WholesalePrice decimal.Decimal `json:"wholesalePrice" binding:"decimalgte0"`
	Stock          int             `json:"stock" binding:"gte=0"`
}

// UpdateProductRequest is the input for updating a product
type UpdateProductRequest struct {
	CategoryID     string          `json:"categoryId" binding:"required"`
	Name           string          `json:"name" binding:"required"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price" binding:"decimalgte0"`
	WholesalePrice decimal.Decimal `json:"wholesalePrice" binding:"decimalgte0"`
	Stock          int             `json:"stock" binding:"gte=0"`
}

// ProductResponse is the wire representation of a product
type ProductResponse struct {
	ID             string          `json:"id"`
	CategoryID     string          `json:"categoryId"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	WholesalePrice decimal.Decimal `json:"wholesalePrice"`
	Stock          int             `json:"stock"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ToProductResponse converts a domain product to its wire form
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID.String(),
		CategoryID:     p.CategoryID.String(),
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		WholesalePrice: p.WholesalePrice,
		Stock:          p.Stock,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ToProductResponses converts a slice of domain products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
