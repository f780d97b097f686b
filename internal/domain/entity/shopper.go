package entity

import (
	"time"

	"github.com/google/uuid"
)

// Shopper is an authenticated storefront account. The cart, address book and
// order history are all scoped to one shopper; the storefront never exposes
// another shopper's records.
type Shopper struct {
	ID           uuid.UUID `json:"id"`    // The unique identifier for the account.
	Email        string    `json:"email"` // Login identifier, unique across shoppers.
	Name         string    `json:"name"`  // Display name.
	PasswordHash string    `json:"-"`     // bcrypt hash; never serialized to clients.
	DeviceToken  string    `json:"-"`     // Optional push notification target, set at login.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
