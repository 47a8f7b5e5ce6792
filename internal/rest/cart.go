package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"saudaMarket/domain"
	"saudaMarket/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CartService interface {
	GetCart(ctx context.Context, userID uint) ([]domain.CartLine, error)
	AddItem(ctx context.Context, userID uint, productID uint64, quantity int, orderType string) (domain.CartItem, error)
	UpdateItem(ctx context.Context, userID uint, itemID uint64, quantity int) (domain.CartItem, error)
	RemoveItem(ctx context.Context, userID uint, itemID uint64) error
	ClearCart(ctx context.Context, userID uint) error
}

type CartHandler struct {
	cartService CartService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewCartHandler(cartService CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
		timeout:     10 * time.Second,
	}
}

type AddCartItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required"`
	OrderType string `json:"order_type" validate:"omitempty,oneof=purchase rental"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required"`
}

func (h *CartHandler) GetCart(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	lines, err := h.cartService.GetCart(ctx, userID)
	if err != nil {
		logger.Error("Failed to get cart", err)
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(lines))
}

func (h *CartHandler) AddItem(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate cart request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	item, err := h.cartService.AddItem(ctx, userID, req.ProductID, req.Quantity, req.OrderType)
	if err != nil {
		logger.Error("Failed to add cart item", err)
		return err
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(item))
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid cart item id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid cart item id"})
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate cart request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	item, err := h.cartService.UpdateItem(ctx, userID, itemID, req.Quantity)
	if err != nil {
		logger.Error("Failed to update cart item", err)
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(item))
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid cart item id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid cart item id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.cartService.RemoveItem(ctx, userID, itemID); err != nil {
		logger.Error("Failed to remove cart item", err)
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "cart item removed",
		"item_id": itemID,
	})
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.cartService.ClearCart(ctx, userID); err != nil {
		logger.Error("Failed to clear cart", err)
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "cart cleared",
	})
}
