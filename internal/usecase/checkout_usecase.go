package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

// CheckoutSummary is the money view of the current session: the live cart
// subtotal plus the fee of the currently bound delivery tier.
type CheckoutSummary struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"delivery_fee"`
	Total       int64 `json:"total"`
	ItemCount   int   `json:"item_count"`
}

// CheckoutView is the session with its derived summary and, when bound, the
// resolved address.
type CheckoutView struct {
	Session         *entity.CheckoutSession `json:"session"`
	Summary         *CheckoutSummary        `json:"summary"`
	SelectedAddress *entity.ShippingAddress `json:"selected_address,omitempty"`
}

// AddressSelectionView is what the address-selection step presents: the
// saved addresses and the session after the transition. With zero saved
// addresses the session lands directly in the editing state.
type AddressSelectionView struct {
	Session   *entity.CheckoutSession   `json:"session"`
	Addresses []*entity.ShippingAddress `json:"addresses"`
}

// PlaceOrderInput selects how the shopper pays at confirmation time.
type PlaceOrderInput struct {
	PaymentMethod entity.PaymentMethod `json:"payment_method"`
}

// PlaceOrderOutput is the submitted order plus, for redirect-based payment
// methods, the hosted-page handoff and its scan-to-pay QR.
type PlaceOrderOutput struct {
	Order     *entity.Order            `json:"order"`
	Payment   *service.PaymentRedirect `json:"payment,omitempty"`
	PaymentQR []byte                   `json:"payment_qr,omitempty"`
}

// CheckoutUsecase drives the shopper through address selection, delivery
// selection and order confirmation, producing exactly one order submission
// per successful run. Sessions are transient per shopper.
type CheckoutUsecase interface {
	// Start opens (or resumes) a checkout session. It refuses to proceed
	// when the cart is empty.
	Start(ctx context.Context, shopperID uuid.UUID) (*CheckoutView, error)

	// Session returns the current session and summary without mutating it.
	Session(ctx context.Context, shopperID uuid.UUID) (*CheckoutView, error)

	// BeginAddressSelection presents the saved addresses. With none saved
	// it routes straight into address entry.
	BeginAddressSelection(ctx context.Context, shopperID uuid.UUID) (*AddressSelectionView, error)

	// ChooseAddress binds a saved address and returns to the idle state.
	ChooseAddress(ctx context.Context, shopperID, addressID uuid.UUID) (*CheckoutView, error)

	// BeginAddressEntry opens the address form ("add new" or edit).
	BeginAddressEntry(ctx context.Context, shopperID uuid.UUID) (*CheckoutView, error)

	// SaveAddress validates and persists the form (create when addressID is
	// nil, full replace otherwise) and auto-selects the saved address.
	SaveAddress(ctx context.Context, shopperID uuid.UUID, addressID *uuid.UUID, input *AddressInput) (*CheckoutView, error)

	// RemoveAddress deletes a saved address but refuses to delete the last
	// remaining one.
	RemoveAddress(ctx context.Context, shopperID, addressID uuid.UUID) error

	// BeginDeliverySelection presents the fixed delivery tiers.
	BeginDeliverySelection(ctx context.Context, shopperID uuid.UUID) ([]entity.DeliveryOption, error)

	// ChooseDelivery binds a delivery tier and returns to the idle state.
	ChooseDelivery(ctx context.Context, shopperID uuid.UUID, option entity.DeliveryOptionID) (*CheckoutView, error)

	// PlaceOrder confirms the checkout: it freezes the totals, persists the
	// order snapshot, clears the cart and completes the session. On
	// submission failure the session stays in the confirming state with the
	// cart intact so the shopper may retry.
	PlaceOrder(ctx context.Context, shopperID uuid.UUID, input *PlaceOrderInput) (*PlaceOrderOutput, error)
}
