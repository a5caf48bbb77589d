package sales

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSale(t *testing.T) {
	t.Run("computes subtotals and total", func(t *testing.T) {
		lines := []SaleLine{
			{ProductID: uuid.New(), ProductName: "Screen protector", Quantity: 3, UnitPrice: decimal.RequireFromString("4.50")},
			{ProductID: uuid.New(), ProductName: "USB cable", Quantity: 2, UnitPrice: decimal.RequireFromString("7.25")},
		}

		sale, err := NewSale(lines, time.Now())

		require.NoError(t, err)
		require.Len(t, sale.Items, 2)
		assert.True(t, sale.Items[0].Subtotal.Equal(decimal.RequireFromString("13.50")))
		assert.True(t, sale.Items[1].Subtotal.Equal(decimal.RequireFromString("14.50")))
		assert.True(t, sale.TotalAmount.Equal(decimal.RequireFromString("28.00")))
		assert.Equal(t, 5, sale.ItemCount())
		assert.Equal(t, sale.ID, sale.Items[0].SaleID)
	})

	t.Run("defaults sold time when zero", func(t *testing.T) {
		sale, err := NewSale([]SaleLine{{ProductID: uuid.New(), ProductName: "Cable", Quantity: 1, UnitPrice: decimal.NewFromInt(1)}}, time.Time{})

		require.NoError(t, err)
		assert.False(t, sale.SoldAt.IsZero())
	})

	t.Run("rejects empty sale", func(t *testing.T) {
		_, err := NewSale(nil, time.Now())

		require.Error(t, err)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewSale([]SaleLine{{ProductID: uuid.New(), Quantity: 0, UnitPrice: decimal.NewFromInt(1)}}, time.Now())

		require.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewSale([]SaleLine{{ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.NewFromInt(-1)}}, time.Now())

		require.Error(t, err)
	})
}
