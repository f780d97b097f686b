package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// addItemRequest is the body for adding a product to the cart.
type addItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required"`
}

// updateQuantityRequest is the body for setting a line's quantity.
type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart handles the cart view request.
func (h *CartHandler) GetCart(c echo.Context) error {
	id, ok := shopperID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid shopper ID in token")
	}

	view, err := h.uc.GetCart(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Cart retrieved successfully")
}

// AddItem handles adding a product to the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	id, ok := shopperID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid shopper ID in token")
	}

	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.uc.AddItem(c.Request().Context(), id, req.ProductID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Item added to cart")
}

// UpdateQuantity handles setting the quantity of a cart line.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	id, ok := shopperID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid shopper ID in token")
	}

	productID, err := pathUUID(c, "productID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	view, err := h.uc.UpdateQuantity(c.Request().Context(), id, productID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Quantity updated")
}

// RemoveItem handles removing a cart line.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	id, ok := shopperID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid shopper ID in token")
	}

	productID, err := pathUUID(c, "productID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	view, err := h.uc.RemoveItem(c.Request().Context(), id, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Item removed from cart")
}

// ClearCart handles emptying the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	id, ok := shopperID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid shopper ID in token")
	}

	if err := h.uc.ClearCart(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}
