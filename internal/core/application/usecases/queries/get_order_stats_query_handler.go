package queries

import (
	"context"

	"appcenar/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler counts orders per status in one grouped query.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for order stats queries.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the stats query.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}
	defer rows.Close()

	var stats GetOrderStatsQueryResponse
	for rows.Next() {
		var (
			status int
			count  int64
		)

		if err = rows.Scan(&status, &count); err != nil {
			return GetOrderStatsQueryResponse{}, err
		}

		switch order.Status(status) {
		case order.Pending:
			stats.Pending = count
		case order.InProgress:
			stats.InProgress = count
		case order.Completed:
			stats.Completed = count
		default:
		}
	}
	if err = rows.Err(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	return stats, nil
}
