package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storehub/backend/internal/domain/shared"
)

// Sale is a completed point-of-sale transaction
type Sale struct {
	shared.BaseAggregateRoot
	Items       []SaleItem      `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	SoldAt      time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// SaleItem is a single product line within a sale.
// Product name and unit price are snapshotted so later catalog edits
// do not rewrite sales history.
type SaleItem struct {
	shared.BaseEntity
	SaleID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(150);not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (SaleItem) TableName() string {
	return "sale_items"
}

// SaleLine is the input for one line of a new sale
type SaleLine struct {
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// NewSale creates a sale from the given lines, computing subtotals and total
func NewSale(lines []SaleLine, soldAt time.Time) (*Sale, error) {
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_SALE", "Sale must contain at least one item")
	}
	if soldAt.IsZero() {
		soldAt = time.Now()
	}

	sale := &Sale{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SoldAt:            soldAt,
		TotalAmount:       decimal.Zero,
	}

	for _, line := range lines {
		if line.ProductID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Sale item product is required")
		}
		if line.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Sale item quantity must be positive")
		}
		if line.UnitPrice.IsNegative() {
			return nil, shared.NewDomainError("INVALID_PRICE", "Sale item price cannot be negative")
		}

		subtotal := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		sale.Items = append(sale.Items, SaleItem{
			BaseEntity:  shared.NewBaseEntity(),
			SaleID:      sale.ID,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    subtotal,
		})
		sale.TotalAmount = sale.TotalAmount.Add(subtotal)
	}

	sale.AddDomainEvent(NewSaleRecordedEvent(sale))

	return sale, nil
}

// ItemCount returns the total quantity across all lines
func (s *Sale) ItemCount() int {
	count := 0
	for _, item := range s.Items {
		count += item.Quantity
	}
	return count
}
