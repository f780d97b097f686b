// Package usecase defines the application's business interfaces consumed by
// the delivery layer and implemented under impl.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogUsecase exposes the read-only product catalog.
type CatalogUsecase interface {
	// ListProducts returns every purchasable product.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct returns a single product for the detail screen.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}
