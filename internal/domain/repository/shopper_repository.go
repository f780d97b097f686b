package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for shopper persistence.
var (
	// ErrShopperNotFound is returned when a shopper account is not found.
	ErrShopperNotFound = errors.New("shopper not found")
	// ErrEmailTaken is returned when registering an email that already has
	// an account.
	ErrEmailTaken = errors.New("email already registered")
)

// ShopperRepository persists storefront accounts.
type ShopperRepository interface {
	// CreateShopper persists a new account.
	// Returns ErrEmailTaken if the email already has an account.
	CreateShopper(ctx context.Context, shopper *entity.Shopper) error

	// FindShopperByEmail retrieves an account by login email.
	// Returns ErrShopperNotFound if no account exists.
	FindShopperByEmail(ctx context.Context, email string) (*entity.Shopper, error)

	// FindShopperByID retrieves an account by id.
	// Returns ErrShopperNotFound if no account exists.
	FindShopperByID(ctx context.Context, id uuid.UUID) (*entity.Shopper, error)

	// SaveDeviceToken records the push notification target for an account.
	SaveDeviceToken(ctx context.Context, id uuid.UUID, token string) error
}
