// Package http exposes the order management use cases over a REST API.
// Handlers stay thin: they parse input, dispatch to command and query
// handlers and translate domain errors to HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"saddleoms/internal/core/application/usecases/commands"
	"saddleoms/internal/core/application/usecases/queries"
	"saddleoms/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler        commands.CreateOrderCommandHandler
	assignFitterHandler       commands.AssignFitterCommandHandler
	assignFactoryHandler      commands.AssignFactoryCommandHandler
	changeStatusHandler       commands.ChangeOrderStatusCommandHandler
	updatePriorityHandler     commands.UpdateOrderPriorityCommandHandler
	recordDepositHandler      commands.RecordDepositPaymentCommandHandler
	updateMeasurementsHandler commands.UpdateMeasurementsCommandHandler
	updateDeliveryDateHandler commands.UpdateDeliveryDateCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler

	searchOrdersHandler     queries.SearchOrdersQueryHandler
	orderSuggestionsHandler queries.OrderSuggestionsQueryHandler
	orderStatsHandler       queries.OrderStatsQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
}

// NewServer creates an HTTP server wired to the given use case handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignFitterHandler commands.AssignFitterCommandHandler,
	assignFactoryHandler commands.AssignFactoryCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	updatePriorityHandler commands.UpdateOrderPriorityCommandHandler,
	recordDepositHandler commands.RecordDepositPaymentCommandHandler,
	updateMeasurementsHandler commands.UpdateMeasurementsCommandHandler,
	updateDeliveryDateHandler commands.UpdateDeliveryDateCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	searchOrdersHandler queries.SearchOrdersQueryHandler,
	orderSuggestionsHandler queries.OrderSuggestionsQueryHandler,
	orderStatsHandler queries.OrderStatsQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		assignFitterHandler:       assignFitterHandler,
		assignFactoryHandler:      assignFactoryHandler,
		changeStatusHandler:       changeStatusHandler,
		updatePriorityHandler:     updatePriorityHandler,
		recordDepositHandler:      recordDepositHandler,
		updateMeasurementsHandler: updateMeasurementsHandler,
		updateDeliveryDateHandler: updateDeliveryDateHandler,
		cancelOrderHandler:        cancelOrderHandler,
		searchOrdersHandler:       searchOrdersHandler,
		orderSuggestionsHandler:   orderSuggestionsHandler,
		orderStatsHandler:         orderStatsHandler,
		getOrderHandler:           getOrderHandler,
	}
}

// RegisterRoutes mounts all order routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.SearchOrders)
	api.GET("/orders/suggestions", s.OrderSuggestions)
	api.GET("/orders/stats", s.OrderStats)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/status", s.ChangeStatus)
	api.POST("/orders/:id/priority", s.ChangePriority)
	api.POST("/orders/:id/deposit", s.RecordDeposit)
	api.POST("/orders/:id/fitter", s.AssignFitter)
	api.POST("/orders/:id/factory", s.AssignFactory)
	api.POST("/orders/:id/measurements", s.UpdateMeasurements)
	api.POST("/orders/:id/delivery-date", s.UpdateDeliveryDate)
	api.POST("/orders/:id/cancel", s.CancelOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.CustomerID,
		req.CustomerName,
		req.OrderNumber,
		req.SaddleID,
		req.SeatSizeIDs,
		req.SaddleSpecifications,
		req.SpecialInstructions,
		req.EstimatedDeliveryDate,
		req.TotalAmount,
	)
	if err != nil {
		return domainError(ctx, err)
	}

	id, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: id})
}

// SearchOrders handles GET /api/v1/orders.
func (s *Server) SearchOrders(ctx echo.Context) error {
	filters, err := parseOrderFilters(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	page, err := intParam(ctx, "page")
	if err != nil {
		return badRequest(ctx, "page must be an integer")
	}
	limit, err := intParam(ctx, "limit")
	if err != nil {
		return badRequest(ctx, "limit must be an integer")
	}

	query, err := queries.NewSearchOrdersQuery(
		filters, page, limit,
		ctx.QueryParam("sortBy"), ctx.QueryParam("sortDir"),
	)
	if err != nil {
		return domainError(ctx, err)
	}

	result, err := s.searchOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	items := make([]OrderView, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, toOrderView(item))
	}

	return ctx.JSON(http.StatusOK, SearchOrdersResponse{
		Items:   items,
		Total:   result.Total,
		Page:    result.Page,
		Limit:   result.Limit,
		HasNext: result.HasNext,
		HasPrev: result.HasPrev,
	})
}

// OrderSuggestions handles GET /api/v1/orders/suggestions.
func (s *Server) OrderSuggestions(ctx echo.Context) error {
	query, err := queries.NewOrderSuggestionsQuery(
		ctx.QueryParam("field"), ctx.QueryParam("q"),
	)
	if err != nil {
		return domainError(ctx, err)
	}

	values, err := s.orderSuggestionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, values)
}

// OrderStats handles GET /api/v1/orders/stats.
func (s *Server) OrderStats(ctx echo.Context) error {
	filters, err := parseOrderFilters(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewOrderStatsQuery(filters)
	if err != nil {
		return domainError(ctx, err)
	}

	stats, err := s.orderStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatsView{
		Total:              stats.Total,
		Urgent:             stats.Urgent,
		ByStatus:           stats.ByStatus,
		AverageTotalAmount: stats.AverageTotalAmount,
	})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "id must be a positive integer")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return domainError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderView(resp))
}

// ChangeStatus handles POST /api/v1/orders/:id/status.
func (s *Server) ChangeStatus(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "id must be a positive integer")
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, req.Status)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangePriority handles POST /api/v1/orders/:id/priority.
func (s *Server) ChangePriority(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "id must be a positive integer")
	}

	var req ChangePriorityRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrderPriorityCommand(id, req.Priority)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.updatePriorityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordDeposit handles POST /api/v1/orders/:id/deposit.
func (s *Server) RecordDeposit(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "id must be a positive integer")
	}

	var req DepositRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRecordDepositPaymentCommand(id, req.Amount)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.recordDepositHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignFitter handles POST /api/v1/orders/:id/fitter.
func (s *Server) AssignFitter(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "id must be a positive integer")
	}

	var req AssignFitterRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAssignFitterCommand(id, req.FitterID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.assignFitterHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignFactory handles POST /api/v1/orders/:id/factory.
func (s *Server) AssignFactory(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "id must be a positive integer")
	}

	var req AssignFactoryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAssignFactoryCommand(id, req.FactoryID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.assignFactoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateMeasurements handles POST /api/v1/orders/:id/measurements.
func (s *Server) UpdateMeasurements(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "id must be a positive integer")
	}

	var req MeasurementsRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateMeasurementsCommand(id, req.Measurements)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.updateMeasurementsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryDate handles POST /api/v1/orders/:id/delivery-date.
func (s *Server) UpdateDeliveryDate(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "id must be a positive integer")
	}

	var req DeliveryDateRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateDeliveryDateCommand(id, req.EstimatedDeliveryDate)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.updateDeliveryDateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "id must be a positive integer")
	}

	var req CancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(id, req.Reason)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// parseOrderFilters reads the shared search/stats filter parameters.
func parseOrderFilters(ctx echo.Context) (queries.OrderFilters, error) {
	filters := queries.OrderFilters{
		CustomerName: ctx.QueryParam("customerName"),
		OrderNumber:  ctx.QueryParam("orderNumber"),
		Status:       ctx.QueryParam("status"),
		Priority:     ctx.QueryParam("priority"),
	}

	var err error
	if filters.OrderID, err = int64Param(ctx, "orderId"); err != nil {
		return queries.OrderFilters{}, errors.New("orderId must be an integer")
	}
	if filters.SeatSizeID, err = int64Param(ctx, "seatSizeId"); err != nil {
		return queries.OrderFilters{}, errors.New("seatSizeId must be an integer")
	}
	if filters.SaddleID, err = int64Param(ctx, "saddleId"); err != nil {
		return queries.OrderFilters{}, errors.New("saddleId must be an integer")
	}
	if filters.FitterID, err = int64Param(ctx, "fitterId"); err != nil {
		return queries.OrderFilters{}, errors.New("fitterId must be an integer")
	}
	if filters.FactoryID, err = int64Param(ctx, "factoryId"); err != nil {
		return queries.OrderFilters{}, errors.New("factoryId must be an integer")
	}
	if filters.CustomerID, err = int64Param(ctx, "customerId"); err != nil {
		return queries.OrderFilters{}, errors.New("customerId must be an integer")
	}

	if raw := ctx.QueryParam("isUrgent"); raw != "" {
		urgent, parseErr := strconv.ParseBool(raw)
		if parseErr != nil {
			return queries.OrderFilters{}, errors.New("isUrgent must be a boolean")
		}
		filters.IsUrgent = &urgent
	}

	if filters.CreatedFrom, err = timeParam(ctx, "createdFrom"); err != nil {
		return queries.OrderFilters{}, errors.New("createdFrom must be an RFC 3339 timestamp")
	}
	if filters.CreatedTo, err = timeParam(ctx, "createdTo"); err != nil {
		return queries.OrderFilters{}, errors.New("createdTo must be an RFC 3339 timestamp")
	}

	return filters, nil
}

func pathID(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}

func intParam(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func int64Param(ctx echo.Context, name string) (*int64, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func timeParam(ctx echo.Context, name string) (*time.Time, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	value, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps domain error types to HTTP status codes: validation
// problems become 400, missing objects 404, state conflicts 409 and
// anything else 500.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}
}
