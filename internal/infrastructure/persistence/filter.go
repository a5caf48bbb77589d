package persistence

import (
	"fmt"
	"strings"

	"github.com/storehub/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// allowed sort columns, per table
var sortableColumns = map[string]bool{
	"created_at":   true,
	"updated_at":   true,
	"name":         true,
	"sold_at":      true,
	"expense_date": true,
	"received_at":  true,
}

// applyFilter applies ordering and pagination from a shared.Filter
func applyFilter(db *gorm.DB, filter shared.Filter) *gorm.DB {
	orderBy := filter.OrderBy
	if orderBy == "" || !sortableColumns[orderBy] {
		orderBy = "created_at"
	}
	orderDir := strings.ToLower(filter.OrderDir)
	if orderDir != "asc" {
		orderDir = "desc"
	}
	db = db.Order(fmt.Sprintf("%s %s", orderBy, orderDir))

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		db = db.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	return db
}
