package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ShopperHandler holds dependencies for account-related handlers.
type ShopperHandler struct {
	uc     usecase.ShopperUsecase
	logger *slog.Logger
}

// NewShopperHandler is the constructor for ShopperHandler, injected by Fx.
func NewShopperHandler(uc usecase.ShopperUsecase, logger *slog.Logger) *ShopperHandler {
	return &ShopperHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the sign-up request.
func (h *ShopperHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Account registered successfully")
}

// Login handles the sign-in request.
func (h *ShopperHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Profile handles the request for the current shopper's account.
func (h *ShopperHandler) Profile(c echo.Context) error {
	id, ok := shopperID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid shopper ID in token")
	}

	shopper, err := h.uc.Profile(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shopper, "Profile retrieved successfully")
}
