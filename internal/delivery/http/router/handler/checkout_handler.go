package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for checkout flow handlers.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: logger,
	}
}

// chooseAddressRequest binds a saved address to the session.
type chooseAddressRequest struct {
	AddressID uuid.UUID `json:"address_id" validate:"required"`
}

// saveAddressRequest carries the address form; AddressID selects
// create-versus-edit.
type saveAddressRequest struct {
	AddressID *uuid.UUID           `json:"address_id,omitempty"`
	Address   usecase.AddressInput `json:"address"`
}

// chooseDeliveryRequest binds a delivery tier to the session.
type chooseDeliveryRequest struct {
	Option entity.DeliveryOptionID `json:"option" validate:"required"`
}

// placeOrderRequest carries the confirmation payload. The payment method is
// optional; an empty body means cash on delivery.
type placeOrderRequest struct {
	PaymentMethod entity.PaymentMethod `json:"payment_method" validate:"omitempty,oneof=cod card esewa khalti"`
}

// Start handles opening or resuming a checkout session.
func (h *CheckoutHandler) Start(c echo.Context) error {
	id, ok := shopperID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid shopper ID in token")
	}

	view, err := h.uc.Start(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Checkout started")
}

// Session handles the current-session view request.
func (h *CheckoutHandler) Session(c echo.Context) error {
	id, ok := shopperID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid shopper ID in token")
	}

	view, err := h.uc.Session(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Checkout session retrieved")
}

// BeginAddressSelection handles opening the address picker.
func (h *CheckoutHandler) BeginAddressSelection(c echo.Context) error {
	id, ok := shopperID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid shopper ID in token")
	}

	view, err := h.uc.BeginAddressSelection(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Address selection started")
}

// ChooseAddress handles binding a saved address to the session.
func (h *CheckoutHandler) ChooseAddress(c echo.Context) error {
	id, ok := shopperID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid shopper ID in token")
	}

	var req chooseAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address selection input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.uc.ChooseAddress(c.Request().Context(), id, req.AddressID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Address selected")
}

// BeginAddressEntry handles opening the address form.
func (h *CheckoutHandler) BeginAddressEntry(c echo.Context) error {
	id, ok := shopperID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid shopper ID in token")
	}

	view, err := h.uc.BeginAddressEntry(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Address entry started")
}

// SaveAddress handles the address form submission inside checkout.
func (h *CheckoutHandler) SaveAddress(c echo.Context) error {
	id, ok := shopperID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid shopper ID in token")
	}

	var req saveAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	view, err := h.uc.SaveAddress(c.Request().Context(), id, req.AddressID, &req.Address)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Address saved")
}

// RemoveAddress handles deleting a saved address from within checkout.
func (h *CheckoutHandler) RemoveAddress(c echo.Context) error {
	id, ok := shopperID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid shopper ID in token")
	}

	addressID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address ID")
	}

	if err := h.uc.RemoveAddress(c.Request().Context(), id, addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Address removed")
}

// DeliveryOptions handles listing the delivery tiers.
func (h *CheckoutHandler) DeliveryOptions(c echo.Context) error {
	id, ok := shopperID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid shopper ID in token")
	}

	options, err := h.uc.BeginDeliverySelection(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, options, "Delivery options retrieved")
}

// ChooseDelivery handles binding a delivery tier to the session.
func (h *CheckoutHandler) ChooseDelivery(c echo.Context) error {
	id, ok := shopperID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid shopper ID in token")
	}

	var req chooseDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery option input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.uc.ChooseDelivery(c.Request().Context(), id, req.Option)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Delivery option selected")
}

// PlaceOrder handles the final confirmation.
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	id, ok := shopperID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid shopper ID in token")
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.PlaceOrder(c.Request().Context(), id, &usecase.PlaceOrderInput{
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Order placed successfully")
}
