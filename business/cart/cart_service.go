package cart

import (
	"context"

	"saudaMarket/business/product"
	"saudaMarket/domain"
	"saudaMarket/pkg/logger"
)

type CartRepository interface {
	FindByUser(ctx context.Context, userID uint) ([]domain.CartItem, error)
	FindItem(ctx context.Context, userID uint, productID uint64, orderType string) (domain.CartItem, error)
	FindByID(ctx context.Context, id uint64) (domain.CartItem, error)
	Create(ctx context.Context, item *domain.CartItem) error
	UpdateQuantity(ctx context.Context, id uint64, quantity int) error
	Delete(ctx context.Context, id uint64) error
	ClearByUser(ctx context.Context, userID uint) error
}

type cartService struct {
	cartRepo    CartRepository
	productRepo product.ProductRepository
}

func NewCartService(cartRepo CartRepository, productRepo product.ProductRepository) *cartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart joins the user's pending selections with their current catalog data.
// Line totals reflect today's prices; prices are only frozen at checkout.
func (s *cartService) GetCart(ctx context.Context, userID uint) ([]domain.CartLine, error) {
	items, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to get cart items", err)
		return nil, err
	}

	lines := make([]domain.CartLine, 0, len(items))
	for _, item := range items {
		prod, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if domain.IsKind(err, domain.ErrNotFound) {
				// product removed from catalog after it was carted; drop the row
				_ = s.cartRepo.Delete(ctx, item.ID)
				continue
			}
			return nil, err
		}

		unitPrice := prod.UnitPrice(item.OrderType)
		lines = append(lines, domain.CartLine{
			CartItem:  item,
			Product:   prod,
			LineTotal: unitPrice * float64(item.Quantity),
		})
	}

	return lines, nil
}

// AddItem puts a product into the cart, or bumps the quantity if the same
// product and order type are already carted. Quantity is capped at current
// stock; checkout re-checks anyway.
func (s *cartService) AddItem(ctx context.Context, userID uint, productID uint64, quantity int, orderType string) (domain.CartItem, error) {
	if quantity <= 0 {
		return domain.CartItem{}, domain.ValidationError("quantity must be positive")
	}

	if orderType == "" {
		orderType = domain.OrderTypePurchase
	}
	if orderType != domain.OrderTypePurchase && orderType != domain.OrderTypeRental {
		return domain.CartItem{}, domain.ValidationError("unknown order type %q", orderType)
	}

	prod, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return domain.CartItem{}, err
	}

	if orderType == domain.OrderTypeRental && !prod.RentalAvailable() {
		return domain.CartItem{}, domain.ValidationError("product %d is not available for rent", productID)
	}

	existing, err := s.cartRepo.FindItem(ctx, userID, productID, orderType)
	if err == nil {
		newQuantity := existing.Quantity + quantity
		if newQuantity > prod.StockQuantity {
			newQuantity = prod.StockQuantity
		}
		if err := s.cartRepo.UpdateQuantity(ctx, existing.ID, newQuantity); err != nil {
			logger.Error("Failed to update cart item quantity", err)
			return domain.CartItem{}, err
		}
		existing.Quantity = newQuantity
		return existing, nil
	}
	if !domain.IsKind(err, domain.ErrNotFound) {
		return domain.CartItem{}, err
	}

	if quantity > prod.StockQuantity {
		quantity = prod.StockQuantity
	}
	if quantity == 0 {
		return domain.CartItem{}, domain.ConflictError("product %d is out of stock", productID)
	}

	item := domain.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		OrderType: orderType,
	}
	if err := s.cartRepo.Create(ctx, &item); err != nil {
		logger.Error("Failed to create cart item", err)
		return domain.CartItem{}, err
	}

	return item, nil
}

func (s *cartService) UpdateItem(ctx context.Context, userID uint, itemID uint64, quantity int) (domain.CartItem, error) {
	if quantity <= 0 {
		return domain.CartItem{}, domain.ValidationError("quantity must be positive")
	}

	item, err := s.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		return domain.CartItem{}, err
	}

	if item.UserID != userID {
		return domain.CartItem{}, domain.ForbiddenError("cart item %d does not belong to you", itemID)
	}

	if err := s.cartRepo.UpdateQuantity(ctx, itemID, quantity); err != nil {
		logger.Error("Failed to update cart item", err)
		return domain.CartItem{}, err
	}

	item.Quantity = quantity
	return item, nil
}

func (s *cartService) RemoveItem(ctx context.Context, userID uint, itemID uint64) error {
	item, err := s.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		return err
	}

	if item.UserID != userID {
		return domain.ForbiddenError("cart item %d does not belong to you", itemID)
	}

	if err := s.cartRepo.Delete(ctx, itemID); err != nil {
		logger.Error("Failed to remove cart item", err)
		return err
	}

	return nil
}

func (s *cartService) ClearCart(ctx context.Context, userID uint) error {
	if err := s.cartRepo.ClearByUser(ctx, userID); err != nil {
		logger.Error("Failed to clear cart", err)
		return err
	}

	return nil
}
