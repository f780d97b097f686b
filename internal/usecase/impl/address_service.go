package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface. Unlike the
// checkout flow, the address book itself places no floor on the number of
// saved addresses.
type addressService struct {
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for addressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAddresses returns the shopper's addresses, oldest first.
func (srv *addressService) ListAddresses(ctx context.Context, shopperID uuid.UUID) ([]*entity.ShippingAddress, error) {
	addresses, err := srv.addressRepo.FindAddressesByShopper(ctx, shopperID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// CreateAddress validates and saves a new shipping address.
func (srv *addressService) CreateAddress(ctx context.Context, shopperID uuid.UUID, input *usecase.AddressInput) (*entity.ShippingAddress, error) {
	if err := validateAddressInput(input); err != nil {
		return nil, err
	}

	address := &entity.ShippingAddress{
		ID:            uuid.New(),
		ShopperID:     shopperID,
		RecipientName: input.RecipientName,
		PhoneNumber:   input.PhoneNumber,
		Street:        input.Street,
		City:          input.City,
		State:         input.State,
		Zip:           input.Zip,
		Category:      input.Category,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := srv.addressRepo.CreateAddress(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}

	srv.log(ctx).Info("Address created",
		slog.String("shopperID", shopperID.String()),
		slog.String("addressID", address.ID.String()),
	)

	return address, nil
}

// UpdateAddress applies the form to an existing address owned by the shopper.
func (srv *addressService) UpdateAddress(ctx context.Context, shopperID, addressID uuid.UUID, input *usecase.AddressInput) (*entity.ShippingAddress, error) {
	if err := validateAddressInput(input); err != nil {
		return nil, err
	}

	address, err := srv.addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address")
	}
	if address.ShopperID != shopperID {
		return nil, domainerrors.ErrAddressOwnershipViolation
	}

	address.RecipientName = input.RecipientName
	address.PhoneNumber = input.PhoneNumber
	address.Street = input.Street
	address.City = input.City
	address.State = input.State
	address.Zip = input.Zip
	address.Category = input.Category
	address.UpdatedAt = time.Now()
	if err := srv.addressRepo.UpdateAddress(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to update address")
	}

	return address, nil
}

// DeleteAddress removes an address owned by the shopper. Deleting the last
// address is allowed here; the checkout flow enforces its own floor.
func (srv *addressService) DeleteAddress(ctx context.Context, shopperID, addressID uuid.UUID) error {
	address, err := srv.addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}

		return errors.Wrap(err, "failed to find address")
	}
	if address.ShopperID != shopperID {
		return domainerrors.ErrAddressOwnershipViolation
	}

	if err := srv.addressRepo.DeleteAddress(ctx, addressID); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}

		return errors.Wrap(err, "failed to delete address")
	}

	return nil
}
