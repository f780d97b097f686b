package impl

import (
	"context"
	"log/slog"
	"sync"
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

// checkoutService implements the CheckoutUsecase interface. Sessions are
// held in memory per shopper: the flow is transient by design and a lost
// session simply restarts at Idle with the cart untouched.
type checkoutService struct {
	cart        usecase.CartUsecase
	addressRepo repository.AddressRepository
	orderRepo   repository.OrderRepository
	gateway     service.PaymentGateway
	qr          service.QRCodeService
	publisher   service.EventPublisher
	notifier    service.NotificationService
	shopperRepo repository.ShopperRepository
	logger      *slog.Logger

	// mu guards the sessions map and the state of every live session.
	mu       sync.Mutex
	sessions map[uuid.UUID]*entity.CheckoutSession
}

// CheckoutServiceParams holds dependencies for checkoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Cart        usecase.CartUsecase
	AddressRepo repository.AddressRepository
	OrderRepo   repository.OrderRepository
	ShopperRepo repository.ShopperRepository
	Gateway     service.PaymentGateway
	QRCode      service.QRCodeService
	Publisher   service.EventPublisher
	Notifier    service.NotificationService `optional:"true"`
	Logger      *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		cart:        params.Cart,
		addressRepo: params.AddressRepo,
		orderRepo:   params.OrderRepo,
		shopperRepo: params.ShopperRepo,
		gateway:     params.Gateway,
		qr:          params.QRCode,
		publisher:   params.Publisher,
		notifier:    params.Notifier,
		logger:      params.Logger,
		sessions:    make(map[uuid.UUID]*entity.CheckoutSession),
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// session returns the shopper's live session, creating an Idle one on first
// use. Completed sessions are replaced so a new checkout run can begin.
// Callers must hold srv.mu.
func (srv *checkoutService) session(shopperID uuid.UUID) *entity.CheckoutSession {
	s, ok := srv.sessions[shopperID]
	if !ok || s.State == entity.CheckoutCompleted {
		s = entity.NewCheckoutSession(shopperID)
		srv.sessions[shopperID] = s
	}

	return s
}

func (srv *checkoutService) failSubmission(s *entity.CheckoutSession) {
	srv.mu.Lock()
	s.FailSubmission()
	srv.mu.Unlock()
}

// mapTransitionErr converts entity-level transition failures to AppErrors.
func mapTransitionErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, entity.ErrNoAddressSelected):
		return domainerrors.ErrNoAddressSelected
	case errors.Is(err, entity.ErrSubmissionInFlight):
		return domainerrors.ErrSubmissionInFlight
	default:
		return domainerrors.ErrCheckoutState.WrapMessage(err.Error())
	}
}

// viewOf assembles the session with its derived money summary. Totals here
// are display values; the frozen order total is computed independently at
// confirmation. Callers must hold srv.mu.
func (srv *checkoutService) viewOf(ctx context.Context, s *entity.CheckoutSession) (*usecase.CheckoutView, error) {
	cartView, err := srv.cart.GetCart(ctx, s.ShopperID)
	if err != nil {
		return nil, err
	}

	option, _ := entity.DeliveryOptionByID(s.DeliveryOption)
	summary := &usecase.CheckoutSummary{
		Subtotal:    cartView.Subtotal,
		DeliveryFee: option.Fee,
		Total:       cartView.Subtotal + option.Fee,
		ItemCount:   cartView.ItemCount,
	}

	view := &usecase.CheckoutView{Session: s, Summary: summary}
	if s.HasAddress() {
		address, err := srv.addressRepo.FindAddressByID(ctx, s.SelectedAddressID)
		if err == nil {
			view.SelectedAddress = address
		} else if errors.Is(err, repository.ErrAddressNotFound) {
			// Selected address vanished (deleted from another device):
			// unbind and let the shopper pick again instead of trusting
			// stale state.
			s.SelectedAddressID = uuid.Nil
		} else {
			return nil, errors.Wrap(err, "failed to resolve selected address")
		}
	}

	return view, nil
}

// Start opens or resumes a checkout session. An empty cart is a terminal
// refusal: the order service is never contacted.
func (srv *checkoutService) Start(ctx context.Context, shopperID uuid.UUID) (*usecase.CheckoutView, error) {
	cartView, err := srv.cart.GetCart(ctx, shopperID)
	if err != nil {
		return nil, err
	}
	if cartView.Cart.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.viewOf(ctx, srv.session(shopperID))
}

// Session returns the current session and summary without mutating it.
func (srv *checkoutService) Session(ctx context.Context, shopperID uuid.UUID) (*usecase.CheckoutView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.viewOf(ctx, srv.session(shopperID))
}

// BeginAddressSelection presents the saved addresses. A shopper with none
// saved is routed straight into address entry so there is always an
// actionable path forward.
func (srv *checkoutService) BeginAddressSelection(ctx context.Context, shopperID uuid.UUID) (*usecase.AddressSelectionView, error) {
	addresses, err := srv.addressRepo.FindAddressesByShopper(ctx, shopperID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	s := srv.session(shopperID)
	if err := s.BeginAddressSelection(); err != nil {
		return nil, mapTransitionErr(err)
	}

	if len(addresses) == 0 {
		if err := s.BeginAddressEntry(); err != nil {
			return nil, mapTransitionErr(err)
		}
	}

	return &usecase.AddressSelectionView{Session: s, Addresses: addresses}, nil
}

// ChooseAddress binds a saved address and returns the session to Idle.
func (srv *checkoutService) ChooseAddress(ctx context.Context, shopperID, addressID uuid.UUID) (*usecase.CheckoutView, error) {
	address, err := srv.addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address")
	}
	if address.ShopperID != shopperID {
		return nil, domainerrors.ErrAddressOwnershipViolation
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	s := srv.session(shopperID)
	if err := s.ChooseAddress(addressID); err != nil {
		return nil, mapTransitionErr(err)
	}

	return srv.viewOf(ctx, s)
}

// BeginAddressEntry opens the address form for a new or existing address.
func (srv *checkoutService) BeginAddressEntry(ctx context.Context, shopperID uuid.UUID) (*usecase.CheckoutView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	s := srv.session(shopperID)
	if err := s.BeginAddressEntry(); err != nil {
		return nil, mapTransitionErr(err)
	}

	return srv.viewOf(ctx, s)
}

// validateAddressInput enforces the required form fields. City, state and
// zip stay free-form.
func validateAddressInput(input *usecase.AddressInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("address form is required")
	}

	missing := make([]string, 0, 4)
	if input.RecipientName == "" {
		missing = append(missing, "recipient_name")
	}
	if input.Street == "" {
		missing = append(missing, "street")
	}
	if input.PhoneNumber == "" {
		missing = append(missing, "phone_number")
	}
	if !input.Category.Valid() {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails("required fields: " + joinFields(missing))
	}

	return nil
}

func joinFields(fields []string) string {
	out := ""
	for i, f := range fields {
		if i > 0 {
			out += ", "
		}
		out += f
	}

	return out
}

// SaveAddress validates and persists the form, then auto-selects the saved
// address and returns the session to Idle. A validation failure keeps the
// session in the editing state with a field-level error.
func (srv *checkoutService) SaveAddress(ctx context.Context, shopperID uuid.UUID, addressID *uuid.UUID, input *usecase.AddressInput) (*usecase.CheckoutView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	s := srv.session(shopperID)
	if s.State != entity.CheckoutEditingAddress {
		return nil, domainerrors.ErrCheckoutState
	}

	if err := validateAddressInput(input); err != nil {
		// Remain in EditingAddress; the form is re-presented.
		return nil, err
	}

	var saved *entity.ShippingAddress
	if addressID == nil {
		saved = &entity.ShippingAddress{
			ID:            uuid.New(),
			ShopperID:     shopperID,
			RecipientName: input.RecipientName,
			PhoneNumber:   input.PhoneNumber,
			Street:        input.Street,
			City:          input.City,
			State:         input.State,
			Zip:           input.Zip,
			Category:      input.Category,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}
		if err := srv.addressRepo.CreateAddress(ctx, saved); err != nil {
			return nil, errors.Wrap(err, "failed to create address")
		}
	} else {
		existing, err := srv.addressRepo.FindAddressByID(ctx, *addressID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return nil, domainerrors.ErrAddressNotFound
			}

			return nil, errors.Wrap(err, "failed to find address")
		}
		if existing.ShopperID != shopperID {
			return nil, domainerrors.ErrAddressOwnershipViolation
		}

		existing.RecipientName = input.RecipientName
		existing.PhoneNumber = input.PhoneNumber
		existing.Street = input.Street
		existing.City = input.City
		existing.State = input.State
		existing.Zip = input.Zip
		existing.Category = input.Category
		existing.UpdatedAt = time.Now()
		if err := srv.addressRepo.UpdateAddress(ctx, existing); err != nil {
			return nil, errors.Wrap(err, "failed to update address")
		}
		saved = existing
	}

	if err := s.CompleteAddressEntry(saved.ID); err != nil {
		return nil, mapTransitionErr(err)
	}

	return srv.viewOf(ctx, s)
}

// RemoveAddress deletes a saved address, refusing to delete the last
// remaining one. The Address Book itself allows emptying the book; this
// guard belongs to the checkout flow.
func (srv *checkoutService) RemoveAddress(ctx context.Context, shopperID, addressID uuid.UUID) error {
	address, err := srv.addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}

		return errors.Wrap(err, "failed to find address")
	}
	if address.ShopperID != shopperID {
		return domainerrors.ErrAddressOwnershipViolation
	}

	count, err := srv.addressRepo.CountAddressesByShopper(ctx, shopperID)
	if err != nil {
		return errors.Wrap(err, "failed to count addresses")
	}
	if count <= 1 {
		return domainerrors.ErrLastAddress
	}

	if err := srv.addressRepo.DeleteAddress(ctx, addressID); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}

		return errors.Wrap(err, "failed to delete address")
	}

	srv.mu.Lock()
	if s, ok := srv.sessions[shopperID]; ok && s.SelectedAddressID == addressID {
		s.SelectedAddressID = uuid.Nil
	}
	srv.mu.Unlock()

	return nil
}

// BeginDeliverySelection presents the fixed delivery tiers.
func (srv *checkoutService) BeginDeliverySelection(ctx context.Context, shopperID uuid.UUID) ([]entity.DeliveryOption, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	s := srv.session(shopperID)
	if err := s.BeginDeliverySelection(); err != nil {
		return nil, mapTransitionErr(err)
	}

	return entity.DeliveryOptions(), nil
}

// ChooseDelivery binds a delivery tier and returns the session to Idle.
func (srv *checkoutService) ChooseDelivery(ctx context.Context, shopperID uuid.UUID, option entity.DeliveryOptionID) (*usecase.CheckoutView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	s := srv.session(shopperID)
	if err := s.ChooseDelivery(option); err != nil {
		return nil, mapTransitionErr(err)
	}

	return srv.viewOf(ctx, s)
}

// PlaceOrder confirms the checkout. The order snapshot copies the cart
// lines and the selected address by value, and the total is frozen as
// subtotal plus delivery fee at this moment. On success the cart is cleared
// and the session completes; on failure the session stays in Confirming
// with the cart intact.
func (srv *checkoutService) PlaceOrder(ctx context.Context, shopperID uuid.UUID, input *usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
	// A missing body or method means cash on delivery.
	method := entity.PaymentCOD
	if input != nil && input.PaymentMethod != "" {
		method = input.PaymentMethod
	}
	if !method.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown payment method")
	}

	cartView, err := srv.cart.GetCart(ctx, shopperID)
	if err != nil {
		return nil, err
	}
	if cartView.Cart.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty
	}

	srv.mu.Lock()
	s := srv.session(shopperID)
	err = s.BeginConfirmation()
	selectedAddressID := s.SelectedAddressID
	deliveryID := s.DeliveryOption
	srv.mu.Unlock()
	if err != nil {
		return nil, mapTransitionErr(err)
	}

	address, err := srv.addressRepo.FindAddressByID(ctx, selectedAddressID)
	if err != nil {
		srv.failSubmission(s)
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve shipping address")
	}

	option, _ := entity.DeliveryOptionByID(deliveryID)
	order := &entity.Order{
		ID:              uuid.New(),
		ShopperID:       shopperID,
		Items:           cartView.Cart.Snapshot(),
		ShippingAddress: *address,
		Status:          entity.OrderStatusPending,
		PaymentMethod:   method,
		DeliveryOption:  option.ID,
		TotalAmount:     cartView.Subtotal + option.Fee,
		OrderedAt:       time.Now(),
	}

	if err := srv.orderRepo.CreateOrder(ctx, order); err != nil {
		// Remain in Confirming, cart untouched; the shopper may retry.
		srv.failSubmission(s)
		srv.log(ctx).Error("Order submission failed",
			slog.String("shopperID", shopperID.String()),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrOrderSubmissionFailed
	}

	if err := srv.cart.ClearCart(ctx, shopperID); err != nil {
		// The order is already persisted; a stale cart blob is recoverable.
		srv.log(ctx).Warn("Cart clear after order failed",
			slog.String("orderID", order.ID.String()),
			slog.Any("error", err),
		)
	}

	srv.mu.Lock()
	err = s.CompleteSubmission()
	srv.mu.Unlock()
	if err != nil {
		return nil, mapTransitionErr(err)
	}

	output := &usecase.PlaceOrderOutput{Order: order}
	if method == entity.PaymentEsewa {
		redirect, err := srv.gateway.BuildRedirect(ctx, order.TotalAmount)
		if err != nil {
			// The order stands; the shopper can re-request the handoff.
			srv.log(ctx).Error("Payment redirect generation failed",
				slog.String("orderID", order.ID.String()),
				slog.Any("error", err),
			)
		} else {
			output.Payment = redirect
			if png, qrErr := srv.qr.GeneratePaymentQR(redirect.TransactionID, order.TotalAmount); qrErr == nil {
				output.PaymentQR = png
			}
		}
	}

	srv.afterSubmission(ctx, order)

	return output, nil
}

// afterSubmission emits the order event and, when a device token is
// registered, a confirmation push. Both are fire-and-forget with respect to
// the submission result.
func (srv *checkoutService) afterSubmission(ctx context.Context, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:       order.ID.String(),
		ShopperID:     order.ShopperID.String(),
		Status:        string(order.Status),
		PaymentMethod: string(order.PaymentMethod),
		TotalAmount:   order.TotalAmount,
		ItemCount:     len(order.Items),
	}
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Order event publish failed",
			slog.String("orderID", order.ID.String()),
			slog.Any("error", err),
		)
	}

	if srv.notifier == nil {
		return
	}
	shopper, err := srv.shopperRepo.FindShopperByID(ctx, order.ShopperID)
	if err != nil || shopper.DeviceToken == "" {
		return
	}
	if err := srv.notifier.SendSingleNotification(ctx, shopper.DeviceToken,
		"Order placed",
		"Your order has been received and is pending confirmation.",
		map[string]string{"order_id": order.ID.String()},
	); err != nil {
		srv.log(ctx).Warn("Order push notification failed",
			slog.String("orderID", order.ID.String()),
			slog.Any("error", err),
		)
	}
}
