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

type ProductService interface {
	GetAllProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	GetBestSellers(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id uint64) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uint64) error
}

type ProductHandler struct {
	productService ProductService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type CreateProductRequest struct {
	StoreID       uint64  `json:"store_id"`
	CategoryID    uint64  `json:"category_id"`
	ProductName   string  `json:"product_name" validate:"required"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"image_url"`
	PurchasePrice float64 `json:"purchase_price" validate:"required,gt=0"`
	RentalPrice   float64 `json:"rental_price" validate:"gte=0"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	IsBestSeller  bool    `json:"is_best_seller"`
}

type UpdateProductRequest struct {
	StoreID       uint64  `json:"store_id"`
	CategoryID    uint64  `json:"category_id"`
	ProductName   string  `json:"product_name" validate:"required"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"image_url"`
	PurchasePrice float64 `json:"purchase_price" validate:"required,gt=0"`
	RentalPrice   float64 `json:"rental_price" validate:"gte=0"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	IsBestSeller  bool    `json:"is_best_seller"`
}

type ProductListQuery struct {
	CategoryID  uint64 `query:"category_id"`
	StoreID     uint64 `query:"store_id"`
	BestSellers bool   `query:"best_sellers"`
}

func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	var q ProductListQuery
	if err := c.Bind(&q); err != nil {
		logger.Error("Failed to bind query", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.productService.GetAllProducts(ctx, domain.ProductFilter{
		CategoryID:  q.CategoryID,
		StoreID:     q.StoreID,
		BestSellers: q.BestSellers,
	})
	if err != nil {
		logger.Error("Failed to find all products", err)
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
}

func (h *ProductHandler) GetBestSellers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.productService.GetBestSellers(ctx)
	if err != nil {
		logger.Error("Failed to find best sellers", err)
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
}

func (h *ProductHandler) GetProductByID(c echo.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.productService.GetProductByID(ctx, productID)
	if err != nil {
		logger.Error("Failed to find product by id", err)
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(product))
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate product request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product := &domain.Product{
		StoreID:       req.StoreID,
		CategoryID:    req.CategoryID,
		ProductName:   req.ProductName,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		PurchasePrice: req.PurchasePrice,
		RentalPrice:   req.RentalPrice,
		StockQuantity: req.StockQuantity,
		IsBestSeller:  req.IsBestSeller,
	}

	newProduct, err := h.productService.CreateProduct(ctx, product)
	if err != nil {
		logger.Error("Failed to create product", err)
		return err
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(newProduct))
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product id"})
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate product request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product := &domain.Product{
		ID:            productID,
		StoreID:       req.StoreID,
		CategoryID:    req.CategoryID,
		ProductName:   req.ProductName,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		PurchasePrice: req.PurchasePrice,
		RentalPrice:   req.RentalPrice,
		StockQuantity: req.StockQuantity,
		IsBestSeller:  req.IsBestSeller,
	}

	updatedProduct, err := h.productService.UpdateProduct(ctx, product)
	if err != nil {
		logger.Error("Failed to update product", err)
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(updatedProduct))
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.productService.DeleteProduct(ctx, productID); err != nil {
		logger.Error("Failed to delete product", err)
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "product successfully deleted",
		"product_id": productID,
	})
}
