package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddressHandler holds dependencies for address book handlers.
type AddressHandler struct {
	uc     usecase.AddressUsecase
	logger *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListAddresses handles the address book listing request.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	id, ok := shopperID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid shopper ID in token")
	}

	addresses, err := h.uc.ListAddresses(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses, "Addresses retrieved successfully")
}

// CreateAddress handles saving a new address.
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	id, ok := shopperID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid shopper ID in token")
	}

	var input usecase.AddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	address, err := h.uc.CreateAddress(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, address, "Address created successfully")
}

// UpdateAddress handles replacing an existing address.
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	id, ok := shopperID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid shopper ID in token")
	}

	addressID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address ID")
	}

	var input usecase.AddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	address, err := h.uc.UpdateAddress(c.Request().Context(), id, addressID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address, "Address updated successfully")
}

// DeleteAddress handles removing an address from the book.
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	id, ok := shopperID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid shopper ID in token")
	}

	addressID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address ID")
	}

	if err := h.uc.DeleteAddress(c.Request().Context(), id, addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Address deleted successfully")
}
