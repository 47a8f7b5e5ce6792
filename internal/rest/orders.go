package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"saudaMarket/business/orders"
	"saudaMarket/domain"
	"saudaMarket/pkg/logger"
	"saudaMarket/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	OrdersHandler struct {
		validate      *validator.Validate
		ordersService OrdersService
		timeout       time.Duration
	}

	OrdersService interface {
		CreateOrder(ctx context.Context, userID uint, input orders.CreateOrderInput) (domain.Order, error)
		GetAllOrders(ctx context.Context, userID uint, isAdmin bool) ([]domain.Order, error)
		GetOrder(ctx context.Context, orderID uint64, userID uint, isAdmin bool) (domain.Order, error)
		UpdateOrderStatus(ctx context.Context, orderID uint64, newStatus string) (domain.Order, error)
	}

	OrderItemInput struct {
		ProductID uint64 `json:"product_id" validate:"required"`
		Quantity  int    `json:"quantity" validate:"required"`
		OrderType string `json:"order_type" validate:"omitempty,oneof=purchase rental"`
	}

	CreateOrderRequest struct {
		Items           []OrderItemInput `json:"items"`
		DeliveryAddress string           `json:"delivery_address" validate:"required"`
		Phone           string           `json:"phone" validate:"required"`
	}

	UpdateOrderStatusRequest struct {
		Status string `json:"status" validate:"required"`
	}
)

func NewOrdersHandler(ordersService OrdersService) *OrdersHandler {
	return &OrdersHandler{
		validate:      validator.New(),
		ordersService: ordersService,
		timeout:       10 * time.Second,
	}
}

func failureReason(err error) string {
	switch domain.KindOf(err) {
	case domain.ErrValidation:
		return "validation"
	case domain.ErrNotFound:
		return "not_found"
	case domain.ErrConflict:
		return "insufficient_stock"
	}
	return "internal"
}

func (h *OrdersHandler) CreateOrder(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	start := time.Now()
	defer func() {
		metrics.CheckoutLatency.Observe(time.Since(start).Seconds())
	}()

	var request CreateOrderRequest

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate order request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	items := make([]orders.OrderItemInput, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, orders.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			OrderType: item.OrderType,
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.CreateOrder(ctx, userID, orders.CreateOrderInput{
		Items:           items,
		DeliveryAddress: request.DeliveryAddress,
		Phone:           request.Phone,
	})
	if err != nil {
		logger.Error("Failed to create order", err)
		metrics.CheckoutFailures.WithLabelValues(failureReason(err)).Inc()
		return err
	}

	metrics.OrdersCreated.Inc()

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(order))
}

func (h *OrdersHandler) GetAllOrders(c echo.Context) error {
	userID := c.Get("user_id").(uint)
	isAdmin := c.Get("role") == domain.RoleAdmin

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	allOrders, err := h.ordersService.GetAllOrders(ctx, userID, isAdmin)
	if err != nil {
		logger.Error("Failed to get all orders", err)
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(allOrders))
}

func (h *OrdersHandler) GetOrderByID(c echo.Context) error {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid order id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid order id"})
	}

	userID := c.Get("user_id").(uint)
	isAdmin := c.Get("role") == domain.RoleAdmin

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.GetOrder(ctx, orderID, userID, isAdmin)
	if err != nil {
		logger.Error("Failed to get order by id", err)
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(order))
}

func (h *OrdersHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid order id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid order id"})
	}

	var request UpdateOrderStatusRequest

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate status request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.UpdateOrderStatus(ctx, orderID, request.Status)
	if err != nil {
		logger.Error("Failed to update order status", err)
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(order))
}
