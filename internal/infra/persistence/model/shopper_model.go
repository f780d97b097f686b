package model

import (
	"time"

	"github.com/google/uuid"
)

// ShopperModel mirrors the 'shoppers' table.
type ShopperModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	DeviceToken  string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Addresses []*ShippingAddressModel `gorm:"foreignKey:ShopperID"`
	Orders    []*OrderModel           `gorm:"foreignKey:ShopperID"`
}

// TableName explicitly sets the table name for GORM.
func (ShopperModel) TableName() string {
	return "shoppers"
}
