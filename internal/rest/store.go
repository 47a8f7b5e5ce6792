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

type StoreService interface {
	GetAllStores(ctx context.Context) ([]domain.Store, error)
	GetStoreByID(ctx context.Context, id uint64) (domain.Store, error)
	CreateStore(ctx context.Context, store *domain.Store) (*domain.Store, error)
	UpdateStore(ctx context.Context, store *domain.Store) (*domain.Store, error)
	DeleteStore(ctx context.Context, id uint64) error
}

type StoreHandler struct {
	storeService StoreService
	validator    *validator.Validate
	timeout      time.Duration
}

func NewStoreHandler(storeService StoreService) *StoreHandler {
	return &StoreHandler{
		storeService: storeService,
		validator:    validator.New(),
		timeout:      10 * time.Second,
	}
}

type CreateStoreRequest struct {
	StoreName   string `json:"store_name" validate:"required"`
	OwnerID     uint   `json:"owner_id"`
	Description string `json:"description"`
}

type UpdateStoreRequest struct {
	StoreName   string `json:"store_name" validate:"required"`
	OwnerID     uint   `json:"owner_id"`
	Description string `json:"description"`
}

func (h *StoreHandler) GetAllStores(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stores, err := h.storeService.GetAllStores(ctx)
	if err != nil {
		logger.Error("Failed to find all stores", err)
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(stores))
}

func (h *StoreHandler) GetStoreByID(c echo.Context) error {
	storeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid store id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid store id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	store, err := h.storeService.GetStoreByID(ctx, storeID)
	if err != nil {
		logger.Error("Failed to find store", err)
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(store))
}

func (h *StoreHandler) CreateStore(c echo.Context) error {
	var req CreateStoreRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate store request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	newStore, err := h.storeService.CreateStore(ctx, &domain.Store{
		StoreName:   req.StoreName,
		OwnerID:     req.OwnerID,
		Description: req.Description,
	})
	if err != nil {
		logger.Error("Failed to create store", err)
		return err
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(newStore))
}

func (h *StoreHandler) UpdateStore(c echo.Context) error {
	storeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid store id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid store id"})
	}

	var req UpdateStoreRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate store request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updatedStore, err := h.storeService.UpdateStore(ctx, &domain.Store{
		ID:          storeID,
		StoreName:   req.StoreName,
		OwnerID:     req.OwnerID,
		Description: req.Description,
	})
	if err != nil {
		logger.Error("Failed to update store", err)
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(updatedStore))
}

func (h *StoreHandler) DeleteStore(c echo.Context) error {
	storeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid store id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid store id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.storeService.DeleteStore(ctx, storeID); err != nil {
		logger.Error("Failed to delete store", err)
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "store successfully deleted",
		"store_id": storeID,
	})
}
