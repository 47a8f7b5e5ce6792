package domain

import (
	"time"
)

// CREATE TABLE public.products (
//     id              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     store_id        BIGINT,
//     category_id     BIGINT,
//     product_name    TEXT NOT NULL,
//     description     TEXT,
//     image_url       TEXT,
//     purchase_price  NUMERIC NOT NULL,
//     rental_price    NUMERIC DEFAULT 0,
//     stock_quantity  BIGINT NOT NULL DEFAULT 0,
//     is_best_seller  BOOLEAN DEFAULT FALSE,
//     created_at      TIMESTAMPTZ DEFAULT NOW(),
//     updated_at      TIMESTAMPTZ
// );

type Product struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreID       uint64    `gorm:"column:store_id;index" json:"store_id"`
	CategoryID    uint64    `gorm:"column:category_id;index" json:"category_id"`
	ProductName   string    `gorm:"column:product_name;type:text;not null" json:"product_name"`
	Description   string    `gorm:"column:description;type:text" json:"description"`
	ImageURL      string    `gorm:"column:image_url;type:text" json:"image_url"`
	PurchasePrice float64   `gorm:"column:purchase_price;type:numeric;not null" json:"purchase_price"`
	RentalPrice   float64   `gorm:"column:rental_price;type:numeric;default:0" json:"rental_price"`
	StockQuantity int       `gorm:"column:stock_quantity;not null;default:0" json:"stock_quantity"`
	IsBestSeller  bool      `gorm:"column:is_best_seller;default:false" json:"is_best_seller"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// ProductFilter narrows catalog listings. Zero values mean no constraint.
type ProductFilter struct {
	CategoryID  uint64
	StoreID     uint64
	BestSellers bool
}

// RentalAvailable reports whether the product can be rented. A zero rental
// price means the product is sale-only.
func (p Product) RentalAvailable() bool {
	return p.RentalPrice > 0
}

// UnitPrice resolves the price charged per unit for the given order type.
func (p Product) UnitPrice(orderType string) float64 {
	if orderType == OrderTypeRental && p.RentalAvailable() {
		return p.RentalPrice
	}
	return p.PurchasePrice
}
