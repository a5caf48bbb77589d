package console

import (
	"context"
	"strconv"

	catalogapp "github.com/storehub/backend/internal/application/catalog"
)

// ShowCategories fetches and prints all categories
func (c *Console) ShowCategories(ctx context.Context) error {
	list, err := c.api.Categories().List(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(list))
	for _, cat := range list {
		rows = append(rows, []string{cat.ID, cat.Name, cat.Description})
	}
	c.table([]string{"ID", "NAME", "DESCRIPTION"}, rows)
	return nil
}

// CreateCategory adds a category, then reprints the collection
func (c *Console) CreateCategory(ctx context.Context, name, description string) error {
	if _, err := c.api.Categories().Create(ctx, catalogapp.CreateCategoryRequest{
		Name:        name,
		Description: description,
	}); err != nil {
		return err
	}
	return c.ShowCategories(ctx)
}

// UpdateCategory edits a category, then reprints the collection
func (c *Console) UpdateCategory(ctx context.Context, id, name, description string) error {
	if _, err := c.api.Categories().Update(ctx, id, catalogapp.UpdateCategoryRequest{
		Name:        name,
		Description: description,
	}); err != nil {
		return err
	}
	return c.ShowCategories(ctx)
}

// DeleteCategory removes a category, then reprints the collection
func (c *Console) DeleteCategory(ctx context.Context, id string) error {
	if err := c.api.Categories().Delete(ctx, id); err != nil {
		return err
	}
	return c.ShowCategories(ctx)
}

// ShowProducts fetches and prints products, optionally for one category
func (c *Console) ShowProducts(ctx context.Context, categoryID string) error {
	var (
		list []catalogapp.ProductResponse
		err  error
	)
	if categoryID != "" {
		list, err = c.api.Products().ListByCategory(ctx, categoryID)
	} else {
		list, err = c.api.Products().List(ctx)
	}
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(list))
	for _, p := range list {
		rows = append(rows, []string{
			p.ID, p.Name, p.Price.StringFixed(2), p.WholesalePrice.StringFixed(2), strconv.Itoa(p.Stock),
		})
	}
	c.table([]string{"ID", "NAME", "PRICE", "WHOLESALE", "STOCK"}, rows)
	return nil
}

// CreateProduct adds a product, then reprints the collection
func (c *Console) CreateProduct(ctx context.Context, req catalogapp.CreateProductRequest) error {
	if _, err := c.api.Products().Create(ctx, req); err != nil {
		return err
	}
	return c.ShowProducts(ctx, "")
}

// UpdateProduct edits a product, then reprints the collection
func (c *Console) UpdateProduct(ctx context.Context, id string, req catalogapp.UpdateProductRequest) error {
	if _, err := c.api.Products().Update(ctx, id, req); err != nil {
		return err
	}
	return c.ShowProducts(ctx, "")
}

// DeleteProduct removes a product, then reprints the collection
func (c *Console) DeleteProduct(ctx context.Context, id string) error {
	if err := c.api.Products().Delete(ctx, id); err != nil {
		return err
	}
	return c.ShowProducts(ctx, "")
}
