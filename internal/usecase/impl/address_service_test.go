package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// addressServiceFixtures holds all test dependencies for address service tests.
type addressServiceFixtures struct {
	service     usecase.AddressUsecase
	addressRepo *mockRepo.MockAddressRepository
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	service := NewAddressService(AddressServiceParams{
		AddressRepo: addressRepo,
		Logger:      testLogger(),
	})

	return addressServiceFixtures{
		service:     service,
		addressRepo: addressRepo,
	}
}

func validAddressInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		RecipientName: "Sita Sharma",
		PhoneNumber:   "9800000001",
		Street:        "12 Lazimpat Road",
		City:          "Kathmandu",
		Category:      entity.AddressCategoryHome,
	}
}

func TestAddressService_ListAddresses(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	shopperID := uuid.New()
	saved := []*entity.ShippingAddress{testAddress(shopperID), testAddress(shopperID)}

	fx.addressRepo.EXPECT().
		FindAddressesByShopper(ctx, shopperID).
		Return(saved, nil)

	addresses, err := fx.service.ListAddresses(ctx, shopperID)
	require.NoError(t, err)
	assert.Equal(t, saved, addresses)
}

func TestAddressService_CreateAddress_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	shopperID := uuid.New()

	fx.addressRepo.EXPECT().
		CreateAddress(ctx, mock.AnythingOfType("*entity.ShippingAddress")).
		Return(nil)

	address, err := fx.service.CreateAddress(ctx, shopperID, validAddressInput())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, address.ID)
	assert.Equal(t, shopperID, address.ShopperID)
	assert.Equal(t, "Sita Sharma", address.RecipientName)
	assert.Equal(t, entity.AddressCategoryHome, address.Category)
}

func TestAddressService_CreateAddress_MissingRequiredFields(t *testing.T) {
	fx := createTestAddressService(t)

	input := validAddressInput()
	input.PhoneNumber = ""
	input.Street = ""

	_, err := fx.service.CreateAddress(context.Background(), uuid.New(), input)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAddressService_CreateAddress_NilInputRejected(t *testing.T) {
	fx := createTestAddressService(t)

	_, err := fx.service.CreateAddress(context.Background(), uuid.New(), nil)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAddressService_CreateAddress_UnknownCategory(t *testing.T) {
	fx := createTestAddressService(t)

	input := validAddressInput()
	input.Category = entity.AddressCategory("Warehouse")

	_, err := fx.service.CreateAddress(context.Background(), uuid.New(), input)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAddressService_UpdateAddress_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	shopperID := uuid.New()
	existing := testAddress(shopperID)

	fx.addressRepo.EXPECT().
		FindAddressByID(ctx, existing.ID).
		Return(existing, nil)

	fx.addressRepo.EXPECT().
		UpdateAddress(ctx, mock.AnythingOfType("*entity.ShippingAddress")).
		Return(nil)

	input := validAddressInput()
	input.Street = "45 Durbar Marg"
	input.Category = entity.AddressCategoryOffice

	updated, err := fx.service.UpdateAddress(ctx, shopperID, existing.ID, input)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, updated.ID)
	assert.Equal(t, "45 Durbar Marg", updated.Street)
	assert.Equal(t, entity.AddressCategoryOffice, updated.Category)
}

func TestAddressService_UpdateAddress_OwnershipViolation(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	foreign := testAddress(uuid.New())

	fx.addressRepo.EXPECT().
		FindAddressByID(ctx, foreign.ID).
		Return(foreign, nil)

	_, err := fx.service.UpdateAddress(ctx, uuid.New(), foreign.ID, validAddressInput())
	require.ErrorIs(t, err, domainerrors.ErrAddressOwnershipViolation)
}

func TestAddressService_UpdateAddress_NotFound(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	addressID := uuid.New()

	fx.addressRepo.EXPECT().
		FindAddressByID(ctx, addressID).
		Return(nil, repository.ErrAddressNotFound)

	_, err := fx.service.UpdateAddress(ctx, uuid.New(), addressID, validAddressInput())
	require.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestAddressService_DeleteAddress_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	shopperID := uuid.New()
	address := testAddress(shopperID)

	fx.addressRepo.EXPECT().
		FindAddressByID(ctx, address.ID).
		Return(address, nil)

	fx.addressRepo.EXPECT().
		DeleteAddress(ctx, address.ID).
		Return(nil)

	// The address book itself may be emptied; only checkout enforces a floor.
	err := fx.service.DeleteAddress(ctx, shopperID, address.ID)
	require.NoError(t, err)
}

func TestAddressService_DeleteAddress_OwnershipViolation(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	foreign := testAddress(uuid.New())

	fx.addressRepo.EXPECT().
		FindAddressByID(ctx, foreign.ID).
		Return(foreign, nil)

	err := fx.service.DeleteAddress(ctx, uuid.New(), foreign.ID)
	require.ErrorIs(t, err, domainerrors.ErrAddressOwnershipViolation)
}
