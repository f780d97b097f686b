package model

import (
	"time"

	"github.com/google/uuid"
)

// ShippingAddressModel is the GORM-specific struct for the
// 'shipping_addresses' table.
type ShippingAddressModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ShopperID     uuid.UUID `gorm:"type:uuid;not null;index:idx_shipping_addresses_on_shopper"`
	RecipientName string    `gorm:"type:varchar(100);not null"`
	PhoneNumber   string    `gorm:"type:varchar(32);not null"`
	Street        string    `gorm:"type:text;not null"`
	City          string    `gorm:"type:varchar(100)"`
	State         string    `gorm:"type:varchar(100)"`
	Zip           string    `gorm:"type:varchar(16)"`
	Category      string    `gorm:"type:varchar(16);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShippingAddressModel) TableName() string {
	return "shipping_addresses"
}
