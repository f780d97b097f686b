package entity

import (
	"time"

	"github.com/google/uuid"
)

// AddressCategory classifies a saved address for display purposes.
type AddressCategory string

const (
	// AddressCategoryHome marks a residential delivery destination.
	AddressCategoryHome AddressCategory = "Home"
	// AddressCategoryOffice marks a workplace delivery destination.
	AddressCategoryOffice AddressCategory = "Office"
)

// Valid reports whether the category is one of the known values.
func (c AddressCategory) Valid() bool {
	return c == AddressCategoryHome || c == AddressCategoryOffice
}

// ShippingAddress is a saved delivery destination owned by one shopper.
// Recipient name, phone number and street are required; city, state and zip
// are free-form because region pickers differ across app releases.
type ShippingAddress struct {
	ID            uuid.UUID       `json:"id"`             // Server-assigned identifier.
	ShopperID     uuid.UUID       `json:"shopper_id"`     // Owner; records are scoped per shopper.
	RecipientName string          `json:"recipient_name"` // Who receives the delivery.
	PhoneNumber   string          `json:"phone_number"`   // Contact number for the courier.
	Street        string          `json:"street"`         // Street address line.
	City          string          `json:"city"`
	State         string          `json:"state"`
	Zip           string          `json:"zip"`
	Category      AddressCategory `json:"category"` // Home or Office.
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
