package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// shopperService implements the ShopperUsecase interface.
type shopperService struct {
	shopperRepo repository.ShopperRepository
	hasher      service.PasswordHasher
	tokens      service.TokenService
	logger      *slog.Logger
}

// ShopperServiceParams holds dependencies for shopperService, injected by Fx.
type ShopperServiceParams struct {
	fx.In

	ShopperRepo repository.ShopperRepository
	Hasher      service.PasswordHasher
	Tokens      service.TokenService
	Logger      *slog.Logger
}

// NewShopperService is the constructor for shopperService.
func NewShopperService(params ShopperServiceParams) usecase.ShopperUsecase {
	return &shopperService{
		shopperRepo: params.ShopperRepo,
		hasher:      params.Hasher,
		tokens:      params.Tokens,
		logger:      params.Logger,
	}
}

func (srv *shopperService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new shopper account and signs it in.
func (srv *shopperService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed
	}

	shopper := &entity.Shopper{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := srv.shopperRepo.CreateShopper(ctx, shopper); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, domainerrors.ErrShopperAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create shopper")
	}

	srv.log(ctx).Info("Shopper registered",
		slog.String("shopperID", shopper.ID.String()),
	)

	return srv.issueTokens(shopper)
}

// Login verifies credentials and issues a token pair. A wrong email and a
// wrong password yield the same error.
func (srv *shopperService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	shopper, err := srv.shopperRepo.FindShopperByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrShopperNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find shopper")
	}
	if !srv.hasher.Check(input.Password, shopper.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if input.DeviceToken != "" && input.DeviceToken != shopper.DeviceToken {
		if err := srv.shopperRepo.SaveDeviceToken(ctx, shopper.ID, input.DeviceToken); err != nil {
			srv.log(ctx).Warn("Device token save failed",
				slog.String("shopperID", shopper.ID.String()),
				slog.Any("error", err),
			)
		} else {
			shopper.DeviceToken = input.DeviceToken
		}
	}

	return srv.issueTokens(shopper)
}

// Profile returns the account behind a session.
func (srv *shopperService) Profile(ctx context.Context, shopperID uuid.UUID) (*entity.Shopper, error) {
	shopper, err := srv.shopperRepo.FindShopperByID(ctx, shopperID)
	if err != nil {
		if errors.Is(err, repository.ErrShopperNotFound) {
			return nil, domainerrors.ErrShopperNotFound
		}

		return nil, errors.Wrap(err, "failed to find shopper")
	}

	return shopper, nil
}

func (srv *shopperService) issueTokens(shopper *entity.Shopper) (*usecase.AuthOutput, error) {
	access, refresh, err := srv.tokens.GenerateTokens(shopper.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{
		Shopper:      shopper,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
