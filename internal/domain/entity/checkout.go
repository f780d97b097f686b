package entity

import (
	"errors"

	"github.com/google/uuid"
)

// CheckoutState is the explicit position of a shopper inside the checkout
// flow. Modelling the flow as a tagged state instead of a set of independent
// "modal visible" flags keeps the legal transitions checkable.
type CheckoutState string

const (
	// CheckoutIdle is the resting state on the checkout screen.
	CheckoutIdle CheckoutState = "idle"
	// CheckoutSelectingAddress presents the saved address list.
	CheckoutSelectingAddress CheckoutState = "selecting_address"
	// CheckoutEditingAddress presents the address form (new or edit).
	CheckoutEditingAddress CheckoutState = "editing_address"
	// CheckoutSelectingDelivery presents the fixed delivery tiers.
	CheckoutSelectingDelivery CheckoutState = "selecting_delivery"
	// CheckoutConfirming is entered when the shopper places the order.
	CheckoutConfirming CheckoutState = "confirming"
	// CheckoutCompleted is terminal; the submitted order is immutable.
	CheckoutCompleted CheckoutState = "completed"
)

// Checkout flow transition errors.
var (
	// ErrInvalidTransition is returned when an operation is not legal from
	// the session's current state.
	ErrInvalidTransition = errors.New("operation not allowed in current checkout state")
	// ErrNoAddressSelected is returned when confirmation is attempted
	// without a bound shipping address.
	ErrNoAddressSelected = errors.New("no shipping address selected")
	// ErrSubmissionInFlight is returned when an order submission is already
	// pending for the session.
	ErrSubmissionInFlight = errors.New("order submission already in progress")
	// ErrCheckoutCompleted is returned when a completed session is mutated.
	ErrCheckoutCompleted = errors.New("checkout already completed")
)

// CheckoutSession carries one shopper's progress through address selection,
// delivery selection and confirmation. It is transient per checkout run and
// holds no money amounts; totals are derived from the cart at confirmation.
type CheckoutSession struct {
	ShopperID         uuid.UUID        `json:"shopper_id"`
	State             CheckoutState    `json:"state"`
	SelectedAddressID uuid.UUID        `json:"selected_address_id,omitempty"`
	DeliveryOption    DeliveryOptionID `json:"delivery_option"`
	Submitting        bool             `json:"-"`
}

// NewCheckoutSession starts a fresh session in the Idle state with the
// default delivery tier bound.
func NewCheckoutSession(shopperID uuid.UUID) *CheckoutSession {
	return &CheckoutSession{
		ShopperID:      shopperID,
		State:          CheckoutIdle,
		DeliveryOption: DefaultDeliveryOption().ID,
	}
}

// HasAddress reports whether a shipping address is bound to the session.
func (s *CheckoutSession) HasAddress() bool {
	return s.SelectedAddressID != uuid.Nil
}

// BeginAddressSelection moves from Idle to the saved-address list.
func (s *CheckoutSession) BeginAddressSelection() error {
	if s.State != CheckoutIdle {
		return ErrInvalidTransition
	}
	s.State = CheckoutSelectingAddress

	return nil
}

// ChooseAddress binds an address and returns to Idle.
func (s *CheckoutSession) ChooseAddress(addressID uuid.UUID) error {
	if s.State != CheckoutSelectingAddress {
		return ErrInvalidTransition
	}
	s.SelectedAddressID = addressID
	s.State = CheckoutIdle

	return nil
}

// BeginAddressEntry opens the address form. It is reachable from the
// selection list ("add new" / "edit") and, when the shopper has no saved
// addresses at all, directly from Idle so there is always an actionable path.
func (s *CheckoutSession) BeginAddressEntry() error {
	if s.State != CheckoutSelectingAddress && s.State != CheckoutIdle {
		return ErrInvalidTransition
	}
	s.State = CheckoutEditingAddress

	return nil
}

// CompleteAddressEntry records a successful form save: the created or
// updated address is auto-selected and the session returns to Idle.
func (s *CheckoutSession) CompleteAddressEntry(addressID uuid.UUID) error {
	if s.State != CheckoutEditingAddress {
		return ErrInvalidTransition
	}
	s.SelectedAddressID = addressID
	s.State = CheckoutIdle

	return nil
}

// CancelAddressEntry abandons the form and returns to the address list.
func (s *CheckoutSession) CancelAddressEntry() error {
	if s.State != CheckoutEditingAddress {
		return ErrInvalidTransition
	}
	s.State = CheckoutSelectingAddress

	return nil
}

// BeginDeliverySelection moves from Idle to the delivery tier list.
func (s *CheckoutSession) BeginDeliverySelection() error {
	if s.State != CheckoutIdle {
		return ErrInvalidTransition
	}
	s.State = CheckoutSelectingDelivery

	return nil
}

// ChooseDelivery binds a delivery tier and returns to Idle.
func (s *CheckoutSession) ChooseDelivery(id DeliveryOptionID) error {
	if s.State != CheckoutSelectingDelivery {
		return ErrInvalidTransition
	}
	if _, ok := DeliveryOptionByID(id); !ok {
		return ErrInvalidTransition
	}
	s.DeliveryOption = id
	s.State = CheckoutIdle

	return nil
}

// BeginConfirmation enters Confirming and raises the submission busy flag.
// A shipping address must be bound; the delivery tier always has a default
// so it is never blocking. A second call while a submission is pending is
// refused rather than queued.
func (s *CheckoutSession) BeginConfirmation() error {
	if s.State == CheckoutCompleted {
		return ErrCheckoutCompleted
	}
	if s.State == CheckoutConfirming {
		if s.Submitting {
			return ErrSubmissionInFlight
		}
		// Retry after a failed submission re-raises the flag below.
	} else if s.State != CheckoutIdle {
		return ErrInvalidTransition
	}
	if !s.HasAddress() {
		return ErrNoAddressSelected
	}
	s.State = CheckoutConfirming
	s.Submitting = true

	return nil
}

// FailSubmission records an order-service failure: the session stays in
// Confirming with the cart intact so the shopper may retry or abandon.
func (s *CheckoutSession) FailSubmission() {
	if s.State == CheckoutConfirming {
		s.Submitting = false
	}
}

// CompleteSubmission records a successful submission and makes the session
// terminal.
func (s *CheckoutSession) CompleteSubmission() error {
	if s.State != CheckoutConfirming {
		return ErrInvalidTransition
	}
	s.State = CheckoutCompleted
	s.Submitting = false

	return nil
}
