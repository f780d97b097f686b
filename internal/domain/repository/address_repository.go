package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository is the contract over the per-shopper address collection.
// This layer imposes no minimum-count policy; deleting the last remaining
// address is refused by the checkout flow, not here.
type AddressRepository interface {
	// CreateAddress persists a new address for a shopper. The id and
	// CreatedAt assigned by the store are written back onto the entity.
	CreateAddress(ctx context.Context, address *entity.ShippingAddress) error

	// FindAddressByID retrieves an address by its unique ID.
	// Returns ErrAddressNotFound if the id is unknown.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.ShippingAddress, error)

	// FindAddressesByShopper retrieves all addresses owned by a shopper,
	// oldest first so list positions stay stable across edits.
	FindAddressesByShopper(ctx context.Context, shopperID uuid.UUID) ([]*entity.ShippingAddress, error)

	// UpdateAddress replaces the fields of an existing address record.
	UpdateAddress(ctx context.Context, address *entity.ShippingAddress) error

	// DeleteAddress removes an address by its ID.
	// Returns ErrAddressNotFound if the id is unknown.
	DeleteAddress(ctx context.Context, id uuid.UUID) error

	// CountAddressesByShopper returns how many addresses a shopper has saved.
	CountAddressesByShopper(ctx context.Context, shopperID uuid.UUID) (int64, error)
}
