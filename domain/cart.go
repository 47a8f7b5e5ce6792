package domain

import "time"

// CartItem is a pending selection. Carts share no transaction scope with
// orders; checkout reads the catalog directly.
type CartItem struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"column:user_id;index;not null" json:"user_id"`
	ProductID uint64    `gorm:"column:product_id;not null" json:"product_id"`
	Quantity  int       `gorm:"column:quantity;not null" json:"quantity"`
	OrderType string    `gorm:"column:order_type;default:purchase" json:"order_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

// CartLine is a cart item joined with its current product data for display.
type CartLine struct {
	CartItem
	Product   Product `json:"product"`
	LineTotal float64 `json:"line_total"`
}
