package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/storehub/backend/internal/domain/repairs"
	"github.com/storehub/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormRepairRepository implements repairs.RepairRepository using GORM
type GormRepairRepository struct {
	db *gorm.DB
}

// NewGormRepairRepository creates a new repair repository
func NewGormRepairRepository(db *gorm.DB) *GormRepairRepository {
	return &GormRepairRepository{db: db}
}

// FindByID finds a repair by ID
func (r *GormRepairRepository) FindByID(ctx context.Context, id uuid.UUID) (*repairs.Repair, error) {
	var repair repairs.Repair
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&repair).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &repair, nil
}

// FindAll lists repairs
func (r *GormRepairRepository) FindAll(ctx context.Context, filter shared.Filter) ([]repairs.Repair, error) {
	var result []repairs.Repair
	db := r.db.WithContext(ctx).Model(&repairs.Repair{})
	if filter.OrderBy == "" {
		filter.OrderBy = "received_at"
	}
	if err := applyFilter(db, filter).Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// FindByCustomer lists repairs whose customer name contains the given text
func (r *GormRepairRepository) FindByCustomer(ctx context.Context, customer string) ([]repairs.Repair, error) {
	var result []repairs.Repair
	err := r.db.WithContext(ctx).
		Where("customer_name LIKE ?", "%"+customer+"%").
		Order("received_at desc").
		Find(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

// FindByPeriod lists repairs received within [from, to)
func (r *GormRepairRepository) FindByPeriod(ctx context.Context, from, to time.Time) ([]repairs.Repair, error) {
	var result []repairs.Repair
	err := r.db.WithContext(ctx).
		Where("received_at >= ? AND received_at < ?", from, to).
		Order("received_at desc").
		Find(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Save inserts or updates a repair
func (r *GormRepairRepository) Save(ctx context.Context, repair *repairs.Repair) error {
	return r.db.WithContext(ctx).Save(repair).Error
}

// Delete removes a repair
func (r *GormRepairRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&repairs.Repair{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
