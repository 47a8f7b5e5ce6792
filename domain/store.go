package domain

import (
	"time"
)

// Store is a vendor storefront. Products belong to exactly one store.
type Store struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreName   string    `gorm:"column:store_name;type:text;not null" json:"store_name"`
	OwnerID     uint      `gorm:"column:owner_id;index" json:"owner_id"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Store) TableName() string {
	return "stores"
}
