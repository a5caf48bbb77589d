package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/storehub/backend/internal/domain/catalog"
	"github.com/storehub/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProductService implements product use cases
type ProductService struct {
	products   catalog.ProductRepository
	categories catalog.CategoryRepository
	logger     *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(products catalog.ProductRepository, categories catalog.CategoryRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
		logger:     logger.Named("catalog.product"),
	}
}

// List returns all products
func (s *ProductService) List(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.products.FindAll(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// ListByCategory returns products belonging to a category
func (s *ProductService) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]ProductResponse, error) {
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}

	products, err := s.products.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// Create adds a new product to an existing category
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category ID is not valid")
	}

	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(categoryID, req.Name, req.Description, req.Price, req.WholesalePrice, req.Stock)
	if err != nil {
		return nil, err
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("Product created", zap.String("id", product.ID.String()), zap.String("name", product.Name))

	resp := ToProductResponse(product)
	return &resp, nil
}

// Update modifies an existing product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category ID is not valid")
	}

	if categoryID != product.CategoryID {
		if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
			return nil, err
		}
	}

	if err := product.Update(categoryID, req.Name, req.Description, req.Price, req.WholesalePrice, req.Stock); err != nil {
		return nil, err
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.products.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Product deleted", zap.String("id", id.String()))
	return nil
}
