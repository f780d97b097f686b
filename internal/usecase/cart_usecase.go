package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartView is the cart plus its derived aggregates, recomputed from current
// state on every read and never cached stale.
type CartView struct {
	Cart      *entity.Cart `json:"cart"`
	Subtotal  int64        `json:"subtotal"`
	ItemCount int          `json:"item_count"`
}

// CartUsecase is the single source of truth for what the shopper currently
// intends to buy, independent of any screen. Every mutation persists the
// full cart as a side effect; persistence failures never roll back the
// returned state.
type CartUsecase interface {
	// GetCart rehydrates and returns the shopper's cart.
	GetCart(ctx context.Context, shopperID uuid.UUID) (*CartView, error)

	// AddItem adds quantity of a product, denormalizing name, price and
	// image from the catalog at add time. Quantities accumulate across
	// repeated adds of the same product.
	AddItem(ctx context.Context, shopperID, productID uuid.UUID, quantity int) (*CartView, error)

	// UpdateQuantity sets a line's quantity exactly; zero or less removes
	// the line.
	UpdateQuantity(ctx context.Context, shopperID, productID uuid.UUID, quantity int) (*CartView, error)

	// RemoveItem deletes a line; removing an absent product is a no-op.
	RemoveItem(ctx context.Context, shopperID, productID uuid.UUID) (*CartView, error)

	// ClearCart empties the cart.
	ClearCart(ctx context.Context, shopperID uuid.UUID) error
}
