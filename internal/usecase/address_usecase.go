package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput carries the address form fields. Recipient name, phone number,
// street and category are required; the rest are free-form.
type AddressInput struct {
	RecipientName string                 `json:"recipient_name"`
	PhoneNumber   string                 `json:"phone_number"`
	Street        string                 `json:"street"`
	City          string                 `json:"city"`
	State         string                 `json:"state"`
	Zip           string                 `json:"zip"`
	Category      entity.AddressCategory `json:"category"`
}

// AddressUsecase is CRUD over the shopper's saved shipping addresses. It
// imposes no minimum-count policy; calling DeleteAddress directly may empty
// the book. The checkout flow layers the "at least one must remain" guard
// on top.
type AddressUsecase interface {
	// ListAddresses returns all addresses owned by the shopper.
	ListAddresses(ctx context.Context, shopperID uuid.UUID) ([]*entity.ShippingAddress, error)

	// CreateAddress saves a new address and returns it with the assigned id
	// and creation timestamp.
	CreateAddress(ctx context.Context, shopperID uuid.UUID, input *AddressInput) (*entity.ShippingAddress, error)

	// UpdateAddress fully replaces the fields of an existing address.
	UpdateAddress(ctx context.Context, shopperID, addressID uuid.UUID, input *AddressInput) (*entity.ShippingAddress, error)

	// DeleteAddress removes an address.
	DeleteAddress(ctx context.Context, shopperID, addressID uuid.UUID) error
}
