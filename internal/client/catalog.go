package client

import (
	"context"
	"net/http"

	catalogapp "github.com/storehub/backend/internal/application/catalog"
)

// CategoryService accesses the category endpoints
type CategoryService struct {
	c *Client
}

// Categories returns the category service
func (c *Client) Categories() *CategoryService {
	return &CategoryService{c: c}
}

// List fetches all categories
func (s *CategoryService) List(ctx context.Context) ([]catalogapp.CategoryResponse, error) {
	var out []catalogapp.CategoryResponse
	if err := s.c.do(ctx, http.MethodGet, "/category", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create adds a category
func (s *CategoryService) Create(ctx context.Context, req catalogapp.CreateCategoryRequest) (*catalogapp.CategoryResponse, error) {
	var out catalogapp.CategoryResponse
	if err := s.c.do(ctx, http.MethodPost, "/category", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update edits a category
func (s *CategoryService) Update(ctx context.Context, id string, req catalogapp.UpdateCategoryRequest) (*catalogapp.CategoryResponse, error) {
	var out catalogapp.CategoryResponse
	if err := s.c.do(ctx, http.MethodPatch, "/category/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a category
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/category/"+id, nil, nil)
}

// ProductService accesses the product endpoints
type ProductService struct {
	c *Client
}

// Products returns the product service
func (c *Client) Products() *ProductService {
	return &ProductService{c: c}
}

// List fetches all products
func (s *ProductService) List(ctx context.Context) ([]catalogapp.ProductResponse, error) {
	var out []catalogapp.ProductResponse
	if err := s.c.do(ctx, http.MethodGet, "/product", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByCategory fetches the products of one category
func (s *ProductService) ListByCategory(ctx context.Context, categoryID string) ([]catalogapp.ProductResponse, error) {
	var out []catalogapp.ProductResponse
	if err := s.c.do(ctx, http.MethodGet, "/product/category/"+categoryID, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create adds a product
func (s *ProductService) Create(ctx context.Context, req catalogapp.CreateProductRequest) (*catalogapp.ProductResponse, error) {
	var out catalogapp.ProductResponse
	if err := s.c.do(ctx, http.MethodPost, "/product", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update edits a product
func (s *ProductService) Update(ctx context.Context, id string, req catalogapp.UpdateProductRequest) (*catalogapp.ProductResponse, error) {
	var out catalogapp.ProductResponse
	if err := s.c.do(ctx, http.MethodPatch, "/product/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/product/"+id, nil, nil)
}
