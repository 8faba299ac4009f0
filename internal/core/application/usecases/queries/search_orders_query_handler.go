package queries

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// orderRow is the scan target for order projections. The jsonb columns
// are unmarshalled separately because gorm scans them as raw bytes here.
type orderRow struct {
	ID                    int64
	CustomerID            int64
	CustomerName          string
	OrderNumber           string
	Status                string
	Priority              string
	FitterID              *int64
	FactoryID             *int64
	SaddleID              *int64
	SeatSizeIDs           []byte
	SpecialInstructions   string
	CancellationReason    string
	EstimatedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time
	TotalAmount           float64
	DepositPaid           float64
	BalanceOwing          float64
	IsUrgent              bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (r orderRow) toResponse() (OrderResponse, error) {
	resp := OrderResponse{
		ID:                    r.ID,
		CustomerID:            r.CustomerID,
		CustomerName:          r.CustomerName,
		OrderNumber:           r.OrderNumber,
		Status:                r.Status,
		Priority:              r.Priority,
		FitterID:              r.FitterID,
		FactoryID:             r.FactoryID,
		SaddleID:              r.SaddleID,
		SpecialInstructions:   r.SpecialInstructions,
		CancellationReason:    r.CancellationReason,
		EstimatedDeliveryDate: r.EstimatedDeliveryDate,
		ActualDeliveryDate:    r.ActualDeliveryDate,
		TotalAmount:           r.TotalAmount,
		DepositPaid:           r.DepositPaid,
		BalanceOwing:          r.BalanceOwing,
		IsUrgent:              r.IsUrgent,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}

	if len(r.SeatSizeIDs) > 0 {
		if err := json.Unmarshal(r.SeatSizeIDs, &resp.SeatSizeIDs); err != nil {
			return OrderResponse{}, err
		}
	}

	return resp, nil
}

// SearchOrdersQueryHandler executes order searches against the database.
type SearchOrdersQueryHandler struct {
	db *gorm.DB
}

// NewSearchOrdersQueryHandler creates a handler for order search queries.
func NewSearchOrdersQueryHandler(db *gorm.DB) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{db: db}
}

// Handle runs the filtered, sorted, paginated search and returns the
// result envelope. The total count is computed over the same predicate
// as the page itself.
func (h SearchOrdersQueryHandler) Handle(
	ctx context.Context,
	query SearchOrdersQuery,
) (OrderSearchResult, error) {
	if err := query.Validate(); err != nil {
		return OrderSearchResult{}, err
	}

	base := query.Filters().apply(h.db.WithContext(ctx).Table("orders"))

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return OrderSearchResult{}, searchFailure(err)
	}

	rows := make([]orderRow, 0, query.Limit())
	err := base.Session(&gorm.Session{}).
		Order(fmt.Sprintf("%s %s", query.SortBy(), query.SortDir())).
		Limit(query.Limit()).
		Offset(query.Offset()).
		Find(&rows).Error
	if err != nil {
		return OrderSearchResult{}, searchFailure(err)
	}

	items := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		item, convErr := row.toResponse()
		if convErr != nil {
			return OrderSearchResult{}, searchFailure(convErr)
		}
		items = append(items, item)
	}

	totalPages := (total + int64(query.Limit()) - 1) / int64(query.Limit())

	return OrderSearchResult{
		Items:   items,
		Total:   total,
		Page:    query.Page(),
		Limit:   query.Limit(),
		HasNext: int64(query.Page()) < totalPages,
		HasPrev: query.Page() > 1,
	}, nil
}
