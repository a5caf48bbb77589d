package sales

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/storehub/backend/internal/domain/sales"
)

// SaleItemRequest is one product line of a new sale
type SaleItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// CreateSaleRequest is the input for recording a sale
type CreateSaleRequest struct {
	Items  []SaleItemRequest `json:"items" binding:"required,dive"`
	SoldAt time.Time         `json:"soldAt"`
}

// SaleItemResponse is the wire representation of a sale line
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse is the wire representation of a sale
type SaleResponse struct {
	ID          string             `json:"id"`
	Items       []SaleItemResponse `json:"items"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
	SoldAt      time.Time          `json:"soldAt"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// MonthlySalesStats summarizes one month of sales
type MonthlySalesStats struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	SalesCount   int             `json:"salesCount"`
	Sales        []SaleResponse  `json:"sales"`
}

// ToSaleResponse converts a domain sale to its wire form
func ToSaleResponse(s *sales.Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, SaleItemResponse{
			ID:          item.ID.String(),
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}

	return SaleResponse{
		ID:          s.ID.String(),
		Items:       items,
		TotalAmount: s.TotalAmount,
		SoldAt:      s.SoldAt,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToSaleResponses converts a slice of domain sales
func ToSaleResponses(list []sales.Sale) []SaleResponse {
	responses := make([]SaleResponse, 0, len(list))
	for i := range list {
		responses = append(responses, ToSaleResponse(&list[i]))
	}
	return responses
}
