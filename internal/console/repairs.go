package console

import (
	"context"
	"time"

	repairsapp "github.com/storehub/backend/internal/application/repairs"
)

// ShowRepairs fetches and prints repairs, optionally filtered by customer
func (c *Console) ShowRepairs(ctx context.Context, customer string) error {
	list, err := c.api.Repairs().List(ctx, customer)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(list))
	for _, r := range list {
		delivered := "no"
		if r.IsDelivered {
			delivered = formatDate(*r.DeliveredAt)
		}
		rows = append(rows, []string{
			r.ID, r.CustomerName, r.DeviceName, r.Status, r.Cost.StringFixed(2), delivered,
		})
	}
	c.table([]string{"ID", "CUSTOMER", "DEVICE", "STATUS", "COST", "DELIVERED"}, rows)
	return nil
}

// CreateRepair registers a repair, then reprints the collection
func (c *Console) CreateRepair(ctx context.Context, req repairsapp.CreateRepairRequest) error {
	if _, err := c.api.Repairs().Create(ctx, req); err != nil {
		return err
	}
	return c.ShowRepairs(ctx, "")
}

// UpdateRepair edits intake details, then reprints the collection
func (c *Console) UpdateRepair(ctx context.Context, id string, req repairsapp.UpdateRepairRequest) error {
	if _, err := c.api.Repairs().Update(ctx, id, req); err != nil {
		return err
	}
	return c.ShowRepairs(ctx, "")
}

// MarkRepairFixed records a successful repair, then reprints the collection
func (c *Console) MarkRepairFixed(ctx context.Context, id string) error {
	if _, err := c.api.Repairs().MarkFixed(ctx, id); err != nil {
		return err
	}
	return c.ShowRepairs(ctx, "")
}

// MarkRepairNotFixed records a failed repair, then reprints the collection
func (c *Console) MarkRepairNotFixed(ctx context.Context, id string) error {
	if _, err := c.api.Repairs().MarkNotFixed(ctx, id); err != nil {
		return err
	}
	return c.ShowRepairs(ctx, "")
}

// DeliverRepair hands the device back, then reprints the collection
func (c *Console) DeliverRepair(ctx context.Context, id string) error {
	if _, err := c.api.Repairs().Deliver(ctx, id, repairsapp.DeliverRepairRequest{}); err != nil {
		return err
	}
	return c.ShowRepairs(ctx, "")
}

// DeleteRepair removes a repair job, then reprints the collection
func (c *Console) DeleteRepair(ctx context.Context, id string) error {
	if err := c.api.Repairs().Delete(ctx, id); err != nil {
		return err
	}
	return c.ShowRepairs(ctx, "")
}

// ShowRepairStats prints the repair summary for one month
func (c *Console) ShowRepairStats(ctx context.Context, year int, month time.Month) error {
	stats, err := c.api.Repairs().MonthlyStats(ctx, year, month)
	if err != nil {
		return err
	}

	c.printf("Repairs %d-%02d: %d received, billed cost %s\n",
		year, int(month), stats.TotalCount, stats.TotalCost.StringFixed(2))
	return nil
}
