// Package queries contains read-only operations against the order store.
// Implements the Query pattern for read operations in the CQRS
// architecture. Queries bypass the domain aggregate and read projections
// directly from the database.
package queries

import (
	"fmt"
	"time"

	"saddleoms/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// OrderFilters is the flat optional filter set shared by the search and
// stats queries. Zero values mean "not filtered". All present filters
// combine conjunctively.
type OrderFilters struct {
	CustomerName string
	OrderID      *int64
	OrderNumber  string
	SeatSizeID   *int64
	IsUrgent     *bool
	SaddleID     *int64
	FitterID     *int64
	FactoryID    *int64
	CustomerID   *int64
	Status       string
	Priority     string
	CreatedFrom  *time.Time
	CreatedTo    *time.Time
}

// validate parses the enum-valued filters. Unknown status or priority
// strings are rejected at the boundary, before any query is built.
func (f OrderFilters) validate() error {
	if f.Status != "" {
		if _, err := order.NewStatus(f.Status); err != nil {
			return err
		}
	}
	if f.Priority != "" {
		if _, err := order.NewPriority(f.Priority); err != nil {
			return err
		}
	}
	return nil
}

// apply composes the filter set into a conjunctive predicate chain.
// Soft-deleted rows are always excluded.
func (f OrderFilters) apply(db *gorm.DB) *gorm.DB {
	db = db.Where("deleted_at IS NULL")

	if f.CustomerName != "" {
		db = db.Where("customer_name ILIKE ?", "%"+f.CustomerName+"%")
	}
	if f.OrderID != nil {
		db = db.Where("id = ?", *f.OrderID)
	}
	if f.OrderNumber != "" {
		db = db.Where("order_number = ?", f.OrderNumber)
	}
	if f.SeatSizeID != nil {
		db = db.Where("seat_size_ids @> ?::jsonb", fmt.Sprintf("[%d]", *f.SeatSizeID))
	}
	if f.IsUrgent != nil {
		db = db.Where("is_urgent = ?", *f.IsUrgent)
	}
	if f.SaddleID != nil {
		db = db.Where("saddle_id = ?", *f.SaddleID)
	}
	if f.FitterID != nil {
		db = db.Where("fitter_id = ?", *f.FitterID)
	}
	if f.FactoryID != nil {
		db = db.Where("factory_id = ?", *f.FactoryID)
	}
	if f.CustomerID != nil {
		db = db.Where("customer_id = ?", *f.CustomerID)
	}
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.Priority != "" {
		db = db.Where("priority = ?", f.Priority)
	}
	if f.CreatedFrom != nil {
		db = db.Where("created_at >= ?", *f.CreatedFrom)
	}
	if f.CreatedTo != nil {
		db = db.Where("created_at <= ?", *f.CreatedTo)
	}

	return db
}

// searchFailure wraps a storage error so callers can distinguish a failed
// search from domain validation errors. No retry, no partial results.
func searchFailure(err error) error {
	return fmt.Errorf("order search failed: %w", err)
}
