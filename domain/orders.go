package domain

import "time"

const (
	OrderTypePurchase = "purchase"
	OrderTypeRental   = "rental"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
)

// statusTransitions is the only legal movement for an order status. There are
// no backward or skipping transitions.
var statusTransitions = map[string]string{
	OrderStatusPending: OrderStatusShipped,
	OrderStatusShipped: OrderStatusDelivered,
}

// ValidStatusTransition reports whether an order may move from one status to
// another.
func ValidStatusTransition(from, to string) bool {
	return statusTransitions[from] == to
}

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

type Order struct {
	ID              uint64      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber     string      `gorm:"column:order_number;unique;not null" json:"order_number"`
	UserID          uint        `gorm:"column:user_id;index;not null" json:"user_id"`
	TotalPrice      float64     `gorm:"column:total_price;type:numeric;not null" json:"total_price"`
	OrderStatus     string      `gorm:"column:order_status;default:pending" json:"order_status"`
	DeliveryAddress string      `gorm:"column:delivery_address;type:text" json:"delivery_address"`
	Phone           string      `gorm:"column:phone" json:"phone"`
	Items           []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem captures one product line at the moment of checkout. Unit price
// and order type are frozen here; later catalog edits do not touch them.
type OrderItem struct {
	ID        uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint64  `gorm:"column:order_id;index;not null" json:"order_id"`
	ProductID uint64  `gorm:"column:product_id;not null" json:"product_id"`
	Quantity  int     `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice float64 `gorm:"column:unit_price;type:numeric;not null" json:"unit_price"`
	OrderType string  `gorm:"column:order_type;default:purchase" json:"order_type"`
	Subtotal  float64 `gorm:"column:subtotal;type:numeric;not null" json:"subtotal"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
