package catalog

import (
	"github.com/storehub/backend/internal/domain/shared"
)

// Event types for the catalog domain
const (
	EventCategoryCreated = "catalog.category.created"
	EventCategoryUpdated = "catalog.category.updated"
	EventProductCreated  = "catalog.product.created"
	EventProductUpdated  = "catalog.product.updated"
)

// CategoryCreatedEvent is raised when a category is created
type CategoryCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewCategoryCreatedEvent creates a new CategoryCreatedEvent
func NewCategoryCreatedEvent(c *Category) *CategoryCreatedEvent {
	return &CategoryCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventCategoryCreated, "Category", c.ID),
		Name:            c.Name,
	}
}

// CategoryUpdatedEvent is raised when a category is updated
type CategoryUpdatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewCategoryUpdatedEvent creates a new CategoryUpdatedEvent
func NewCategoryUpdatedEvent(c *Category) *CategoryUpdatedEvent {
	return &CategoryUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventCategoryUpdated, "Category", c.ID),
		Name:            c.Name,
	}
}

// ProductCreatedEvent is raised when a product is created
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewProductCreatedEvent creates a new ProductCreatedEvent
func NewProductCreatedEvent(p *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventProductCreated, "Product", p.ID),
		Name:            p.Name,
	}
}

// ProductUpdatedEvent is raised when a product is updated
type ProductUpdatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewProductUpdatedEvent creates a new ProductUpdatedEvent
func NewProductUpdatedEvent(p *Product) *ProductUpdatedEvent {
	return &ProductUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventProductUpdated, "Product", p.ID),
		Name:            p.Name,
	}
}
