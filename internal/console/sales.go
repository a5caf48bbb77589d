package console

import (
	"context"
	"strconv"
	"time"

	salesapp "github.com/storehub/backend/internal/application/sales"
)

// ShowSales fetches and prints all sales
func (c *Console) ShowSales(ctx context.Context) error {
	list, err := c.api.Sales().List(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(list))
	for _, s := range list {
		rows = append(rows, []string{
			s.ID, formatTime(s.SoldAt), strconv.Itoa(len(s.Items)), s.TotalAmount.StringFixed(2),
		})
	}
	c.table([]string{"ID", "SOLD AT", "LINES", "TOTAL"}, rows)
	return nil
}

// RecordSale records a sale, then reprints the collection
func (c *Console) RecordSale(ctx context.Context, items []salesapp.SaleItemRequest) error {
	if _, err := c.api.Sales().Create(ctx, salesapp.CreateSaleRequest{Items: items}); err != nil {
		return err
	}
	return c.ShowSales(ctx)
}

// DeleteSale removes a sale, then reprints the collection
func (c *Console) DeleteSale(ctx context.Context, id string) error {
	if err := c.api.Sales().Delete(ctx, id); err != nil {
		return err
	}
	return c.ShowSales(ctx)
}

// ShowSalesStats prints the sales summary for one month
func (c *Console) ShowSalesStats(ctx context.Context, year int, month time.Month) error {
	stats, err := c.api.Sales().MonthlyStats(ctx, year, month)
	if err != nil {
		return err
	}

	c.printf("Sales %d-%02d: %d sales, revenue %s\n",
		year, int(month), stats.SalesCount, stats.TotalRevenue.StringFixed(2))
	return nil
}
