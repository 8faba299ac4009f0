package queries

import (
	"context"

	"gorm.io/gorm"
)

// OrderStatsQueryHandler computes order statistics from the database.
type OrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewOrderStatsQueryHandler creates a handler for order statistics queries.
func NewOrderStatsQueryHandler(db *gorm.DB) OrderStatsQueryHandler {
	return OrderStatsQueryHandler{db: db}
}

// Handle computes total count, urgent count, a status breakdown and the
// average order total over the filtered set. An empty match yields zero
// counts and a zero average.
func (h OrderStatsQueryHandler) Handle(
	ctx context.Context,
	query OrderStatsQuery,
) (OrderStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderStatsResponse{}, err
	}

	base := func() *gorm.DB {
		return query.Filters().apply(h.db.WithContext(ctx).Table("orders"))
	}

	stats := OrderStatsResponse{ByStatus: make(map[string]int64)}

	if err := base().Count(&stats.Total).Error; err != nil {
		return OrderStatsResponse{}, searchFailure(err)
	}

	if err := base().Where("is_urgent = ?", true).Count(&stats.Urgent).Error; err != nil {
		return OrderStatsResponse{}, searchFailure(err)
	}

	type statusCount struct {
		Status string
		Count  int64
	}
	counts := make([]statusCount, 0)
	err := base().
		Select("status, COUNT(*) AS count").
		Group("status").
		Find(&counts).Error
	if err != nil {
		return OrderStatsResponse{}, searchFailure(err)
	}
	for _, c := range counts {
		stats.ByStatus[c.Status] = c.Count
	}

	err = base().
		Select("COALESCE(AVG(total_amount), 0)").
		Scan(&stats.AverageTotalAmount).Error
	if err != nil {
		return OrderStatsResponse{}, searchFailure(err)
	}

	return stats, nil
}
