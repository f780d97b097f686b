// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a purchasable item from the catalog. The storefront treats the
// catalog as read-only; products are written by a back-office process.
type Product struct {
	ID        uuid.UUID `json:"id"`         // The unique identifier for the product.
	Name      string    `json:"name"`       // Display name shown on catalog and detail screens.
	Price     int64     `json:"price"`      // Unit price in whole rupees, never negative.
	Image     string    `json:"image"`      // Reference to the product image asset.
	Details   string    `json:"details"`    // Free-form product description.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this product was listed.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last catalog modification.
}
