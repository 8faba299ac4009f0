package http

import (
	"time"

	"saddleoms/internal/core/application/usecases/queries"
)

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the payload for POST /api/v1/orders.
// OrderNumber is optional; the server generates one when it is empty.
type CreateOrderRequest struct {
	CustomerID            int64          `json:"customerId"`
	CustomerName          string         `json:"customerName"`
	OrderNumber           string         `json:"orderNumber,omitempty"`
	SaddleID              *int64         `json:"saddleId,omitempty"`
	SeatSizeIDs           []int64        `json:"seatSizeIds,omitempty"`
	SaddleSpecifications  map[string]any `json:"saddleSpecifications,omitempty"`
	SpecialInstructions   string         `json:"specialInstructions,omitempty"`
	EstimatedDeliveryDate *time.Time     `json:"estimatedDeliveryDate,omitempty"`
	TotalAmount           float64        `json:"totalAmount"`
}

// CreateOrderResponse returns the storage id of the created order.
type CreateOrderResponse struct {
	ID int64 `json:"id"`
}

// ChangeStatusRequest is the payload for POST /api/v1/orders/:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// ChangePriorityRequest is the payload for POST /api/v1/orders/:id/priority.
type ChangePriorityRequest struct {
	Priority string `json:"priority"`
}

// DepositRequest is the payload for POST /api/v1/orders/:id/deposit.
type DepositRequest struct {
	Amount float64 `json:"amount"`
}

// AssignFitterRequest is the payload for POST /api/v1/orders/:id/fitter.
type AssignFitterRequest struct {
	FitterID int64 `json:"fitterId"`
}

// AssignFactoryRequest is the payload for POST /api/v1/orders/:id/factory.
type AssignFactoryRequest struct {
	FactoryID int64 `json:"factoryId"`
}

// MeasurementsRequest is the payload for POST /api/v1/orders/:id/measurements.
type MeasurementsRequest struct {
	Measurements map[string]float64 `json:"measurements"`
}

// DeliveryDateRequest is the payload for POST /api/v1/orders/:id/delivery-date.
type DeliveryDateRequest struct {
	EstimatedDeliveryDate time.Time `json:"estimatedDeliveryDate"`
}

// CancelOrderRequest is the payload for POST /api/v1/orders/:id/cancel.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// OrderView is the JSON projection of an order.
type OrderView struct {
	ID                    int64          `json:"id"`
	CustomerID            int64          `json:"customerId"`
	CustomerName          string         `json:"customerName"`
	OrderNumber           string         `json:"orderNumber"`
	Status                string         `json:"status"`
	Priority              string         `json:"priority"`
	FitterID              *int64         `json:"fitterId,omitempty"`
	FactoryID             *int64         `json:"factoryId,omitempty"`
	SaddleID              *int64         `json:"saddleId,omitempty"`
	SeatSizeIDs           []int64        `json:"seatSizeIds,omitempty"`
	SpecialInstructions   string         `json:"specialInstructions,omitempty"`
	CancellationReason    string         `json:"cancellationReason,omitempty"`
	EstimatedDeliveryDate *time.Time     `json:"estimatedDeliveryDate,omitempty"`
	ActualDeliveryDate    *time.Time     `json:"actualDeliveryDate,omitempty"`
	TotalAmount           float64        `json:"totalAmount"`
	DepositPaid           float64        `json:"depositPaid"`
	BalanceOwing          float64        `json:"balanceOwing"`
	IsUrgent              bool           `json:"isUrgent"`
	CreatedAt             time.Time      `json:"createdAt"`
	UpdatedAt             time.Time      `json:"updatedAt"`
}

// SearchOrdersResponse is the search result envelope.
type SearchOrdersResponse struct {
	Items   []OrderView `json:"items"`
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	Limit   int         `json:"limit"`
	HasNext bool        `json:"hasNext"`
	HasPrev bool        `json:"hasPrev"`
}

// OrderStatsView is the aggregate statistics payload.
type OrderStatsView struct {
	Total              int64            `json:"total"`
	Urgent             int64            `json:"urgent"`
	ByStatus           map[string]int64 `json:"byStatus"`
	AverageTotalAmount float64          `json:"averageTotalAmount"`
}

func toOrderView(resp queries.OrderResponse) OrderView {
	return OrderView{
		ID:                    resp.ID,
		CustomerID:            resp.CustomerID,
		CustomerName:          resp.CustomerName,
		OrderNumber:           resp.OrderNumber,
		Status:                resp.Status,
		Priority:              resp.Priority,
		FitterID:              resp.FitterID,
		FactoryID:             resp.FactoryID,
		SaddleID:              resp.SaddleID,
		SeatSizeIDs:           resp.SeatSizeIDs,
		SpecialInstructions:   resp.SpecialInstructions,
		CancellationReason:    resp.CancellationReason,
		EstimatedDeliveryDate: resp.EstimatedDeliveryDate,
		ActualDeliveryDate:    resp.ActualDeliveryDate,
		TotalAmount:           resp.TotalAmount,
		DepositPaid:           resp.DepositPaid,
		BalanceOwing:          resp.BalanceOwing,
		IsUrgent:              resp.IsUrgent,
		CreatedAt:             resp.CreatedAt,
		UpdatedAt:             resp.UpdatedAt,
	}
}
