package sales

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storehub/backend/internal/domain/catalog"
	"github.com/storehub/backend/internal/domain/sales"
	"github.com/storehub/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// SaleService implements sale recording and reporting use cases
type SaleService struct {
	sales    sales.SaleRepository
	products catalog.ProductRepository
	logger   *zap.Logger
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo sales.SaleRepository, products catalog.ProductRepository, logger *zap.Logger) *SaleService {
	return &SaleService{
		sales:    saleRepo,
		products: products,
		logger:   logger.Named("sales.sale"),
	}
}

// List returns all sales, newest first
func (s *SaleService) List(ctx context.Context) ([]SaleResponse, error) {
	filter := shared.DefaultFilter()
	filter.OrderBy = "sold_at"
	filter.OrderDir = "desc"

	list, err := s.sales.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToSaleResponses(list), nil
}

// Get returns a single sale
func (s *SaleService) Get(ctx context.Context, id uuid.UUID) (*SaleResponse, error) {
	sale, err := s.sales.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToSaleResponse(sale)
	return &resp, nil
}

// Create records a sale. Product name and price are snapshotted at
// sale time and stock is deducted for every line; a line that cannot
// be covered by stock fails the whole sale.
func (s *SaleService) Create(ctx context.Context, req CreateSaleRequest) (*SaleResponse, error) {
	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("EMPTY_SALE", "Sale must contain at least one item")
	}

	lines := make([]sales.SaleLine, 0, len(req.Items))
	touched := make([]*catalog.Product, 0, len(req.Items))
	loaded := make(map[uuid.UUID]*catalog.Product, len(req.Items))

	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID is not valid")
		}

		// Lines naming the same product share one loaded copy so their
		// quantities deduct from the same stock level
		product, ok := loaded[productID]
		if !ok {
			product, err = s.products.FindByID(ctx, productID)
			if err != nil {
				return nil, err
			}
			loaded[productID] = product
			touched = append(touched, product)
		}

		if err := product.DeductStock(item.Quantity); err != nil {
			return nil, err
		}

		lines = append(lines, sales.SaleLine{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.Price,
		})
	}

	sale, err := sales.NewSale(lines, req.SoldAt)
	if err != nil {
		return nil, err
	}

	if err := s.sales.Record(ctx, sale, touched); err != nil {
		return nil, err
	}

	s.logger.Info("Sale recorded",
		zap.String("id", sale.ID.String()),
		zap.Int("items", sale.ItemCount()),
		zap.String("total", sale.TotalAmount.String()),
	)

	resp := ToSaleResponse(sale)
	return &resp, nil
}

// Delete removes a sale and returns its quantities to stock
func (s *SaleService) Delete(ctx context.Context, id uuid.UUID) error {
	sale, err := s.sales.FindByID(ctx, id)
	if err != nil {
		return err
	}

	restored := make([]*catalog.Product, 0, len(sale.Items))
	loaded := make(map[uuid.UUID]*catalog.Product, len(sale.Items))
	for _, item := range sale.Items {
		product, ok := loaded[item.ProductID]
		if !ok {
			var err error
			product, err = s.products.FindByID(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					// Product removed from the catalog since the sale; nothing to restore
					continue
				}
				return err
			}
			loaded[item.ProductID] = product
			restored = append(restored, product)
		}
		if err := product.RestoreStock(item.Quantity); err != nil {
			return err
		}
	}

	if err := s.sales.Remove(ctx, sale, restored); err != nil {
		return err
	}

	s.logger.Info("Sale deleted", zap.String("id", id.String()))
	return nil
}

// MonthlyStats summarizes the sales of one calendar month
func (s *SaleService) MonthlyStats(ctx context.Context, year int, month time.Month) (*MonthlySalesStats, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	list, err := s.sales.FindByPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for i := range list {
		total = total.Add(list[i].TotalAmount)
	}

	return &MonthlySalesStats{
		TotalRevenue: total,
		SalesCount:   len(list),
		Sales:        ToSaleResponses(list),
	}, nil
}
