package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/storehub/backend/internal/domain/catalog"
	"github.com/storehub/backend/internal/domain/sales"
	"github.com/storehub/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSaleRepository implements sales.SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new sale repository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByID finds a sale with its items
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Sale, error) {
	var sale sales.Sale
	err := r.db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&sale).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindAll lists sales with their items
func (r *GormSaleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Sale, error) {
	var result []sales.Sale
	db := r.db.WithContext(ctx).Model(&sales.Sale{}).Preload("Items")
	if filter.OrderBy == "" {
		filter.OrderBy = "sold_at"
	}
	if err := applyFilter(db, filter).Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// FindByPeriod lists sales within [from, to)
func (r *GormSaleRepository) FindByPeriod(ctx context.Context, from, to time.Time) ([]sales.Sale, error) {
	var result []sales.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("sold_at >= ? AND sold_at < ?", from, to).
		Order("sold_at desc").
		Find(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Record persists a sale together with the stock levels it deducted.
// Everything happens in one transaction.
func (r *GormSaleRepository) Record(ctx context.Context, sale *sales.Sale, stock []*catalog.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, product := range stock {
			if err := tx.Save(product).Error; err != nil {
				return err
			}
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(sale).Error
	})
}

// Remove deletes a sale and writes back the restored stock levels in
// one transaction; items cascade with the sale row
func (r *GormSaleRepository) Remove(ctx context.Context, sale *sales.Sale, stock []*catalog.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, product := range stock {
			if err := tx.Save(product).Error; err != nil {
				return err
			}
		}

		result := tx.Where("id = ?", sale.ID).Delete(&sales.Sale{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}
