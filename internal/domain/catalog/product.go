package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storehub/backend/internal/domain/shared"
)

// Product is a sellable item in the catalog
type Product struct {
	shared.BaseAggregateRoot
	CategoryID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name           string          `gorm:"type:varchar(150);not null"`
	Description    string          `gorm:"type:text"`
	Price          decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Retail price
	WholesalePrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Stock          int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product in the given category
func NewProduct(categoryID uuid.UUID, name, description string, price, wholesalePrice decimal.Decimal, stock int) (*Product, error) {
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Product category is required")
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validatePrices(price, wholesalePrice); err != nil {
		return nil, err
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Product stock cannot be negative")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CategoryID:        categoryID,
		Name:              strings.TrimSpace(name),
		Description:       description,
		Price:             price,
		WholesalePrice:    wholesalePrice,
		Stock:             stock,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update updates the product's details
func (p *Product) Update(categoryID uuid.UUID, name, description string, price, wholesalePrice decimal.Decimal, stock int) error {
	if categoryID == uuid.Nil {
		return shared.NewDomainError("INVALID_CATEGORY", "Product category is required")
	}
	if err := validateProductName(name); err != nil {
		return err
	}
	if err := validatePrices(price, wholesalePrice); err != nil {
		return err
	}
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Product stock cannot be negative")
	}

	p.CategoryID = categoryID
	p.Name = strings.TrimSpace(name)
	p.Description = description
	p.Price = price
	p.WholesalePrice = wholesalePrice
	p.Stock = stock
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// DeductStock removes quantity from stock for a sale
func (p *Product) DeductStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if p.Stock < quantity {
		return shared.ErrInsufficientStock
	}

	p.Stock -= quantity
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// RestoreStock returns quantity to stock
func (p *Product) RestoreStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	p.Stock += quantity
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// validateProductName validates the product name
func validateProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 150 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 150 characters")
	}
	return nil
}

// validatePrices validates retail and wholesale prices
func validatePrices(price, wholesalePrice decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	if wholesalePrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Wholesale price cannot be negative")
	}
	return nil
}
