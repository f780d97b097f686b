package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrCartNotFound is returned when no cart has been stored for a shopper yet.
var ErrCartNotFound = errors.New("cart not found")

// CartStorage is the durable blob store behind the cart. It is best-effort
// durability, not a transactional ledger: the in-memory cart returned by the
// cart store stays authoritative even if a Save fails, and callers rehydrate
// through Load before accepting any mutation.
type CartStorage interface {
	// Load rehydrates a shopper's cart.
	// Returns ErrCartNotFound when nothing has been stored yet.
	Load(ctx context.Context, shopperID uuid.UUID) (*entity.Cart, error)

	// Save persists the full cart under the shopper's fixed key.
	Save(ctx context.Context, cart *entity.Cart) error

	// Clear removes the stored cart.
	Clear(ctx context.Context, shopperID uuid.UUID) error
}
