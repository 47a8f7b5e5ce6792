package orders

import (
	"context"

	"saudaMarket/business/product"
	"saudaMarket/domain"
	"saudaMarket/pkg/logger"

	"github.com/google/uuid"
)

type OrdersRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) (domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByUser(ctx context.Context, userID uint) ([]domain.Order, error)
	FindByID(ctx context.Context, id uint64) (domain.Order, error)
	UpdateStatus(ctx context.Context, id uint64, status string) error
}

type OrdersService struct {
	orderRepo    OrdersRepository
	productsRepo product.ProductRepository
}

func NewOrdersService(orderRepo OrdersRepository, productsRepo product.ProductRepository) *OrdersService {
	return &OrdersService{
		orderRepo:    orderRepo,
		productsRepo: productsRepo,
	}
}

type OrderItemInput struct {
	ProductID uint64
	Quantity  int
	OrderType string
}

type CreateOrderInput struct {
	Items           []OrderItemInput
	DeliveryAddress string
	Phone           string
}

// CreateOrder validates every requested item against the catalog, prices the
// lines, and hands the assembled order to the repository, which decrements
// stock and persists it in one transaction. Validation failures abort before
// any write.
func (s *OrdersService) CreateOrder(ctx context.Context, userID uint, input CreateOrderInput) (domain.Order, error) {
	if len(input.Items) == 0 {
		return domain.Order{}, domain.ValidationError("no items in order")
	}

	items := make([]domain.OrderItem, 0, len(input.Items))
	var total float64

	for _, in := range input.Items {
		orderType := in.OrderType
		if orderType == "" {
			orderType = domain.OrderTypePurchase
		}
		if orderType != domain.OrderTypePurchase && orderType != domain.OrderTypeRental {
			return domain.Order{}, domain.ValidationError("unknown order type %q", in.OrderType)
		}
		if in.Quantity <= 0 {
			return domain.Order{}, domain.ValidationError("quantity must be positive for product %d", in.ProductID)
		}

		prod, err := s.productsRepo.FindByID(ctx, in.ProductID)
		if err != nil {
			return domain.Order{}, err
		}

		if prod.StockQuantity < in.Quantity {
			return domain.Order{}, domain.ConflictError("insufficient stock for product %d", prod.ID)
		}

		unitPrice := prod.UnitPrice(orderType)
		items = append(items, domain.OrderItem{
			ProductID: prod.ID,
			Quantity:  in.Quantity,
			UnitPrice: unitPrice,
			OrderType: orderType,
			Subtotal:  unitPrice * float64(in.Quantity),
		})
		total += unitPrice * float64(in.Quantity)
	}

	order := domain.Order{
		OrderNumber:     uuid.NewString(),
		UserID:          userID,
		TotalPrice:      total,
		OrderStatus:     domain.OrderStatusPending,
		DeliveryAddress: input.DeliveryAddress,
		Phone:           input.Phone,
		Items:           items,
	}

	created, err := s.orderRepo.CreateOrder(ctx, &order)
	if err != nil {
		logger.Error("Failed to create order", err)
		return domain.Order{}, err
	}

	return created, nil
}

// GetAllOrders returns every order for admins and only the caller's own
// orders otherwise.
func (s *OrdersService) GetAllOrders(ctx context.Context, userID uint, isAdmin bool) ([]domain.Order, error) {
	if isAdmin {
		return s.orderRepo.FindAll(ctx)
	}

	return s.orderRepo.FindByUser(ctx, userID)
}

func (s *OrdersService) GetOrder(ctx context.Context, orderID uint64, userID uint, isAdmin bool) (domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}

	if !isAdmin && order.UserID != userID {
		return domain.Order{}, domain.ForbiddenError("order %d does not belong to you", orderID)
	}

	return order, nil
}

// UpdateOrderStatus moves an order along the pending -> shipped -> delivered
// chain. Any other movement is rejected.
func (s *OrdersService) UpdateOrderStatus(ctx context.Context, orderID uint64, newStatus string) (domain.Order, error) {
	if !domain.ValidOrderStatus(newStatus) {
		return domain.Order{}, domain.ValidationError("unknown order status %q", newStatus)
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}

	if !domain.ValidStatusTransition(order.OrderStatus, newStatus) {
		return domain.Order{}, domain.ValidationError(
			"invalid status transition %s -> %s", order.OrderStatus, newStatus)
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, newStatus); err != nil {
		logger.Error("Failed to update order status", err)
		return domain.Order{}, err
	}

	order.OrderStatus = newStatus
	return order, nil
}
