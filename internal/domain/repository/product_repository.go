// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found in the catalog.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository is the read-only contract over the product catalog.
// The storefront never writes products; the catalog is maintained elsewhere.
type ProductRepository interface {
	// FindAll retrieves every purchasable product, newest first.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a single product.
	// Returns ErrProductNotFound if the id is unknown.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}
