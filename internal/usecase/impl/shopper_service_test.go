package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// shopperServiceFixtures holds all test dependencies for shopper service tests.
type shopperServiceFixtures struct {
	service     usecase.ShopperUsecase
	shopperRepo *mockRepo.MockShopperRepository
	hasher      *mockService.MockPasswordHasher
	tokens      *mockService.MockTokenService
}

func createTestShopperService(t *testing.T) shopperServiceFixtures {
	shopperRepo := mockRepo.NewMockShopperRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokens := mockService.NewMockTokenService(t)
	service := NewShopperService(ShopperServiceParams{
		ShopperRepo: shopperRepo,
		Hasher:      hasher,
		Tokens:      tokens,
		Logger:      testLogger(),
	})

	return shopperServiceFixtures{
		service:     service,
		shopperRepo: shopperRepo,
		hasher:      hasher,
		tokens:      tokens,
	}
}

func TestShopperService_Register_Success(t *testing.T) {
	fx := createTestShopperService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Sita Sharma",
		Email:    "sita@example.com",
		Password: "correct-horse",
	}

	fx.hasher.EXPECT().
		Hash("correct-horse").
		Return("$2a$10$hash", nil)

	fx.shopperRepo.EXPECT().
		CreateShopper(ctx, mock.AnythingOfType("*entity.Shopper")).
		Return(nil)

	fx.tokens.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID")).
		Return("access-token", "refresh-token", nil)

	output, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, input.Email, output.Shopper.Email)
	assert.Equal(t, input.Name, output.Shopper.Name)
	assert.Equal(t, "$2a$10$hash", output.Shopper.PasswordHash)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
}

func TestShopperService_Register_EmailTaken(t *testing.T) {
	fx := createTestShopperService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().
		Hash("correct-horse").
		Return("$2a$10$hash", nil)

	fx.shopperRepo.EXPECT().
		CreateShopper(ctx, mock.AnythingOfType("*entity.Shopper")).
		Return(repository.ErrEmailTaken)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Sita Sharma",
		Email:    "sita@example.com",
		Password: "correct-horse",
	})
	require.ErrorIs(t, err, domainerrors.ErrShopperAlreadyExists)
}

func TestShopperService_Register_HashFailure(t *testing.T) {
	fx := createTestShopperService(t)

	fx.hasher.EXPECT().
		Hash("correct-horse").
		Return("", errors.New("bcrypt failed"))

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Sita Sharma",
		Email:    "sita@example.com",
		Password: "correct-horse",
	})
	require.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestShopperService_Login_Success(t *testing.T) {
	fx := createTestShopperService(t)

	ctx := context.Background()
	shopper := &entity.Shopper{
		ID:           uuid.New(),
		Email:        "sita@example.com",
		PasswordHash: "$2a$10$hash",
	}

	fx.shopperRepo.EXPECT().
		FindShopperByEmail(ctx, "sita@example.com").
		Return(shopper, nil)

	fx.hasher.EXPECT().
		Check("correct-horse", "$2a$10$hash").
		Return(true)

	fx.tokens.EXPECT().
		GenerateTokens(shopper.ID).
		Return("access-token", "refresh-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "sita@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, shopper.ID, output.Shopper.ID)
	assert.Equal(t, "access-token", output.AccessToken)
}

func TestShopperService_Login_UnknownEmail(t *testing.T) {
	fx := createTestShopperService(t)

	ctx := context.Background()

	fx.shopperRepo.EXPECT().
		FindShopperByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrShopperNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestShopperService_Login_WrongPassword(t *testing.T) {
	fx := createTestShopperService(t)

	ctx := context.Background()
	shopper := &entity.Shopper{
		ID:           uuid.New(),
		Email:        "sita@example.com",
		PasswordHash: "$2a$10$hash",
	}

	fx.shopperRepo.EXPECT().
		FindShopperByEmail(ctx, "sita@example.com").
		Return(shopper, nil)

	fx.hasher.EXPECT().
		Check("wrong", "$2a$10$hash").
		Return(false)

	// Wrong password and unknown email are indistinguishable to the caller.
	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "sita@example.com",
		Password: "wrong",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestShopperService_Login_RegistersDeviceToken(t *testing.T) {
	fx := createTestShopperService(t)

	ctx := context.Background()
	shopper := &entity.Shopper{
		ID:           uuid.New(),
		Email:        "sita@example.com",
		PasswordHash: "$2a$10$hash",
		DeviceToken:  "old-token",
	}

	fx.shopperRepo.EXPECT().
		FindShopperByEmail(ctx, "sita@example.com").
		Return(shopper, nil)

	fx.hasher.EXPECT().
		Check("correct-horse", "$2a$10$hash").
		Return(true)

	fx.shopperRepo.EXPECT().
		SaveDeviceToken(ctx, shopper.ID, "new-token").
		Return(nil)

	fx.tokens.EXPECT().
		GenerateTokens(shopper.ID).
		Return("access-token", "refresh-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:       "sita@example.com",
		Password:    "correct-horse",
		DeviceToken: "new-token",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-token", output.Shopper.DeviceToken)
}

func TestShopperService_Login_DeviceTokenSaveFailureTolerated(t *testing.T) {
	fx := createTestShopperService(t)

	ctx := context.Background()
	shopper := &entity.Shopper{
		ID:           uuid.New(),
		Email:        "sita@example.com",
		PasswordHash: "$2a$10$hash",
	}

	fx.shopperRepo.EXPECT().
		FindShopperByEmail(ctx, "sita@example.com").
		Return(shopper, nil)

	fx.hasher.EXPECT().
		Check("correct-horse", "$2a$10$hash").
		Return(true)

	fx.shopperRepo.EXPECT().
		SaveDeviceToken(ctx, shopper.ID, "new-token").
		Return(errors.New("database down"))

	fx.tokens.EXPECT().
		GenerateTokens(shopper.ID).
		Return("access-token", "refresh-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:       "sita@example.com",
		Password:    "correct-horse",
		DeviceToken: "new-token",
	})
	require.NoError(t, err)
	assert.Empty(t, output.Shopper.DeviceToken)
}

func TestShopperService_Profile_Success(t *testing.T) {
	fx := createTestShopperService(t)

	ctx := context.Background()
	shopper := &entity.Shopper{ID: uuid.New(), Email: "sita@example.com", Name: "Sita Sharma"}

	fx.shopperRepo.EXPECT().
		FindShopperByID(ctx, shopper.ID).
		Return(shopper, nil)

	got, err := fx.service.Profile(ctx, shopper.ID)
	require.NoError(t, err)
	assert.Equal(t, shopper, got)
}

func TestShopperService_Profile_NotFound(t *testing.T) {
	fx := createTestShopperService(t)

	ctx := context.Background()
	shopperID := uuid.New()

	fx.shopperRepo.EXPECT().
		FindShopperByID(ctx, shopperID).
		Return(nil, repository.ErrShopperNotFound)

	_, err := fx.service.Profile(ctx, shopperID)
	require.ErrorIs(t, err, domainerrors.ErrShopperNotFound)
}
