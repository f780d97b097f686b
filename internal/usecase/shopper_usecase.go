package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput carries the sign-up form fields.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput carries the sign-in form fields. DeviceToken, when present,
// registers the device for order push notifications.
type LoginInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	DeviceToken string `json:"device_token"`
}

// AuthOutput is the issued session token pair plus the account.
type AuthOutput struct {
	Shopper      *entity.Shopper `json:"shopper"`
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
}

// ShopperUsecase supplies the authenticated shopper identity the rest of the
// storefront depends on.
type ShopperUsecase interface {
	// Register creates a new account and signs it in.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Profile returns the account behind a session.
	Profile(ctx context.Context, shopperID uuid.UUID) (*entity.Shopper, error)
}
