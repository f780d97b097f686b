package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderModel mirrors the 'orders' table. Items and the shipping address are
// frozen snapshots stored as JSONB; they must not change when the catalog or
// the address book changes later.
type OrderModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ShopperID       uuid.UUID      `gorm:"type:uuid;not null;index:idx_orders_on_shopper"`
	Items           datatypes.JSON `gorm:"type:jsonb;not null"`
	ShippingAddress datatypes.JSON `gorm:"type:jsonb;not null"`
	Status          string         `gorm:"type:varchar(16);not null"`
	PaymentMethod   string         `gorm:"type:varchar(16);not null"`
	DeliveryOption  string         `gorm:"type:varchar(16);not null"`
	TotalAmount     int64          `gorm:"not null"`
	OrderedAt       time.Time      `gorm:"not null;index:idx_orders_on_ordered_at,sort:desc"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
