// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. This package implements the repository pattern
// for the order domain aggregate, handling the conversion between domain
// entities and database representations.
package orderrepo

import (
	"time"

	"saddleoms/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Orders are soft-deleted, never removed. Indexes cover the
// hot search filters: customer, status, urgency and saddle model.
type OrderDTO struct {
	ID                    int64              `gorm:"primaryKey;autoIncrement"`
	CustomerID            int64              `gorm:"index;not null"`
	CustomerName          string             `gorm:"not null"`
	OrderNumber           string             `gorm:"uniqueIndex;not null"`
	Status                string             `gorm:"index;not null"`
	Priority              string             `gorm:"not null"`
	FitterID              *int64             `gorm:"index"`
	FactoryID             *int64
	SaddleID              *int64             `gorm:"index"`
	SeatSizeIDs           []int64            `gorm:"type:jsonb;serializer:json"`
	SaddleSpecifications  map[string]any     `gorm:"type:jsonb;serializer:json"`
	SpecialInstructions   string
	CancellationReason    string
	EstimatedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time
	TotalAmount           float64            `gorm:"not null"`
	DepositPaid           float64            `gorm:"not null"`
	BalanceOwing          float64            `gorm:"not null"`
	Measurements          map[string]float64 `gorm:"type:jsonb;serializer:json"`
	IsUrgent              bool               `gorm:"index;not null"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             gorm.DeletedAt     `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                    aggregate.ID(),
		CustomerID:            aggregate.CustomerID(),
		CustomerName:          aggregate.CustomerName(),
		OrderNumber:           aggregate.OrderNumber(),
		Status:                aggregate.Status().String(),
		Priority:              aggregate.Priority().String(),
		FitterID:              aggregate.FitterID(),
		FactoryID:             aggregate.FactoryID(),
		SaddleID:              aggregate.SaddleID(),
		SeatSizeIDs:           aggregate.SeatSizeIDs(),
		SaddleSpecifications:  aggregate.SaddleSpecifications(),
		SpecialInstructions:   aggregate.SpecialInstructions(),
		CancellationReason:    aggregate.CancellationReason(),
		EstimatedDeliveryDate: aggregate.EstimatedDeliveryDate(),
		ActualDeliveryDate:    aggregate.ActualDeliveryDate(),
		TotalAmount:           aggregate.TotalAmount(),
		DepositPaid:           aggregate.DepositPaid(),
		BalanceOwing:          aggregate.BalanceOwing(),
		Measurements:          aggregate.Measurements(),
		IsUrgent:              aggregate.IsUrgent(),
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder, which
// recomputes the derived fields from the stored values.
func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                    dto.ID,
		CustomerID:            dto.CustomerID,
		CustomerName:          dto.CustomerName,
		OrderNumber:           dto.OrderNumber,
		Status:                order.Status(dto.Status),
		Priority:              order.Priority(dto.Priority),
		FitterID:              dto.FitterID,
		FactoryID:             dto.FactoryID,
		SaddleID:              dto.SaddleID,
		SeatSizeIDs:           dto.SeatSizeIDs,
		SaddleSpecifications:  dto.SaddleSpecifications,
		SpecialInstructions:   dto.SpecialInstructions,
		CancellationReason:    dto.CancellationReason,
		EstimatedDeliveryDate: dto.EstimatedDeliveryDate,
		ActualDeliveryDate:    dto.ActualDeliveryDate,
		TotalAmount:           dto.TotalAmount,
		DepositPaid:           dto.DepositPaid,
		Measurements:          dto.Measurements,
		CreatedAt:             dto.CreatedAt,
		UpdatedAt:             dto.UpdatedAt,
	})
}
