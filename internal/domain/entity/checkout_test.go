package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutSession_NewSession_StartsIdleWithDefaultDelivery(t *testing.T) {
	shopperID := uuid.New()
	session := NewCheckoutSession(shopperID)

	assert.Equal(t, shopperID, session.ShopperID)
	assert.Equal(t, CheckoutIdle, session.State)
	assert.Equal(t, DeliveryStandard, session.DeliveryOption)
	assert.False(t, session.HasAddress())
	assert.False(t, session.Submitting)
}

func TestCheckoutSession_AddressSelection_RoundTrip(t *testing.T) {
	session := NewCheckoutSession(uuid.New())
	addressID := uuid.New()

	require.NoError(t, session.BeginAddressSelection())
	assert.Equal(t, CheckoutSelectingAddress, session.State)

	require.NoError(t, session.ChooseAddress(addressID))
	assert.Equal(t, CheckoutIdle, session.State)
	assert.Equal(t, addressID, session.SelectedAddressID)
	assert.True(t, session.HasAddress())
}

func TestCheckoutSession_BeginAddressSelection_NotFromNestedState(t *testing.T) {
	session := NewCheckoutSession(uuid.New())
	require.NoError(t, session.BeginDeliverySelection())

	err := session.BeginAddressSelection()
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, CheckoutSelectingDelivery, session.State)
}

func TestCheckoutSession_AddressEntry_FromSelectionAndFromIdle(t *testing.T) {
	session := NewCheckoutSession(uuid.New())
	require.NoError(t, session.BeginAddressSelection())
	require.NoError(t, session.BeginAddressEntry())
	assert.Equal(t, CheckoutEditingAddress, session.State)

	// A shopper with no saved addresses enters the form directly from Idle.
	fresh := NewCheckoutSession(uuid.New())
	require.NoError(t, fresh.BeginAddressEntry())
	assert.Equal(t, CheckoutEditingAddress, fresh.State)
}

func TestCheckoutSession_CompleteAddressEntry_AutoSelects(t *testing.T) {
	session := NewCheckoutSession(uuid.New())
	savedID := uuid.New()

	require.NoError(t, session.BeginAddressEntry())
	require.NoError(t, session.CompleteAddressEntry(savedID))

	assert.Equal(t, CheckoutIdle, session.State)
	assert.Equal(t, savedID, session.SelectedAddressID)
}

func TestCheckoutSession_CancelAddressEntry_ReturnsToSelection(t *testing.T) {
	session := NewCheckoutSession(uuid.New())
	require.NoError(t, session.BeginAddressSelection())
	require.NoError(t, session.BeginAddressEntry())

	require.NoError(t, session.CancelAddressEntry())
	assert.Equal(t, CheckoutSelectingAddress, session.State)
	assert.False(t, session.HasAddress())
}

func TestCheckoutSession_ChooseDelivery_BindsKnownTier(t *testing.T) {
	session := NewCheckoutSession(uuid.New())

	require.NoError(t, session.BeginDeliverySelection())
	require.NoError(t, session.ChooseDelivery(DeliveryExpress))

	assert.Equal(t, CheckoutIdle, session.State)
	assert.Equal(t, DeliveryExpress, session.DeliveryOption)
}

func TestCheckoutSession_ChooseDelivery_UnknownTierRefused(t *testing.T) {
	session := NewCheckoutSession(uuid.New())
	require.NoError(t, session.BeginDeliverySelection())

	err := session.ChooseDelivery(DeliveryOptionID("drone"))
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, CheckoutSelectingDelivery, session.State)
	assert.Equal(t, DeliveryStandard, session.DeliveryOption)
}

func TestCheckoutSession_BeginConfirmation_RequiresAddress(t *testing.T) {
	session := NewCheckoutSession(uuid.New())

	err := session.BeginConfirmation()
	require.ErrorIs(t, err, ErrNoAddressSelected)
	assert.Equal(t, CheckoutIdle, session.State)
}

func TestCheckoutSession_BeginConfirmation_SecondCallRefusedWhilePending(t *testing.T) {
	session := NewCheckoutSession(uuid.New())
	require.NoError(t, session.BeginAddressSelection())
	require.NoError(t, session.ChooseAddress(uuid.New()))

	require.NoError(t, session.BeginConfirmation())
	assert.True(t, session.Submitting)

	err := session.BeginConfirmation()
	require.ErrorIs(t, err, ErrSubmissionInFlight)
}

func TestCheckoutSession_FailSubmission_AllowsRetry(t *testing.T) {
	session := NewCheckoutSession(uuid.New())
	require.NoError(t, session.BeginAddressSelection())
	require.NoError(t, session.ChooseAddress(uuid.New()))
	require.NoError(t, session.BeginConfirmation())

	session.FailSubmission()
	assert.Equal(t, CheckoutConfirming, session.State)
	assert.False(t, session.Submitting)

	// The shopper retries from the confirming state.
	require.NoError(t, session.BeginConfirmation())
	assert.True(t, session.Submitting)
	require.NoError(t, session.CompleteSubmission())
	assert.Equal(t, CheckoutCompleted, session.State)
}

func TestCheckoutSession_CompletedSessionIsImmutable(t *testing.T) {
	session := NewCheckoutSession(uuid.New())
	require.NoError(t, session.BeginAddressSelection())
	require.NoError(t, session.ChooseAddress(uuid.New()))
	require.NoError(t, session.BeginConfirmation())
	require.NoError(t, session.CompleteSubmission())

	require.ErrorIs(t, session.BeginConfirmation(), ErrCheckoutCompleted)
	require.ErrorIs(t, session.BeginAddressSelection(), ErrInvalidTransition)
	require.ErrorIs(t, session.BeginDeliverySelection(), ErrInvalidTransition)
}

func TestDeliveryOptionByID_KnownAndUnknown(t *testing.T) {
	option, ok := DeliveryOptionByID(DeliveryOvernight)
	require.True(t, ok)
	assert.Equal(t, int64(250), option.Fee)

	_, ok = DeliveryOptionByID(DeliveryOptionID("teleport"))
	assert.False(t, ok)
}

func TestDefaultDeliveryOption_IsFreeStandardTier(t *testing.T) {
	option := DefaultDeliveryOption()

	assert.Equal(t, DeliveryStandard, option.ID)
	assert.Equal(t, int64(0), option.Fee)
}
