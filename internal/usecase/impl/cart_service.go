// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface. The pure state
// transitions live on entity.Cart; this service layers rehydration,
// catalog denormalization and best-effort persistence on top.
type cartService struct {
	storage     repository.CartStorage
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	Storage     repository.CartStorage
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		storage:     params.Storage,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// load rehydrates the shopper's cart before any mutation is accepted.
// A missing blob means a fresh, empty cart.
func (srv *cartService) load(ctx context.Context, shopperID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.storage.Load(ctx, shopperID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return entity.NewCart(shopperID), nil
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}

// save persists the mutated cart. Storage is best-effort durability: a
// failed write is logged and the in-memory state stays authoritative.
func (srv *cartService) save(ctx context.Context, cart *entity.Cart) {
	if err := srv.storage.Save(ctx, cart); err != nil {
		srv.log(ctx).Warn("Cart persistence failed, in-memory state kept",
			slog.String("shopperID", cart.ShopperID.String()),
			slog.Any("error", err),
		)
	}
}

func view(cart *entity.Cart) *usecase.CartView {
	return &usecase.CartView{
		Cart:      cart,
		Subtotal:  cart.Subtotal(),
		ItemCount: cart.ItemCount(),
	}
}

// GetCart rehydrates and returns the shopper's cart.
func (srv *cartService) GetCart(ctx context.Context, shopperID uuid.UUID) (*usecase.CartView, error) {
	cart, err := srv.load(ctx, shopperID)
	if err != nil {
		return nil, err
	}

	return view(cart), nil
}

// AddItem adds quantity of a product to the cart, capturing the product's
// display data at add time. Quantities accumulate across repeated adds.
func (srv *cartService) AddItem(ctx context.Context, shopperID, productID uuid.UUID, quantity int) (*usecase.CartView, error) {
	if quantity <= 0 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to look up product")
	}

	cart, err := srv.load(ctx, shopperID)
	if err != nil {
		return nil, err
	}

	line := entity.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Image:     product.Image,
		Quantity:  quantity,
	}
	if err := cart.AddItem(line); err != nil {
		return nil, domainerrors.ErrInvalidQuantity
	}

	srv.save(ctx, cart)

	return view(cart), nil
}

// UpdateQuantity sets a line's quantity exactly; zero or less removes the
// line instead of storing a non-positive value.
func (srv *cartService) UpdateQuantity(ctx context.Context, shopperID, productID uuid.UUID, quantity int) (*usecase.CartView, error) {
	cart, err := srv.load(ctx, shopperID)
	if err != nil {
		return nil, err
	}

	cart.UpdateQuantity(productID, quantity)
	srv.save(ctx, cart)

	return view(cart), nil
}

// RemoveItem deletes a line; removing an absent product is a no-op.
func (srv *cartService) RemoveItem(ctx context.Context, shopperID, productID uuid.UUID) (*usecase.CartView, error) {
	cart, err := srv.load(ctx, shopperID)
	if err != nil {
		return nil, err
	}

	cart.RemoveItem(productID)
	srv.save(ctx, cart)

	return view(cart), nil
}

// ClearCart empties the cart and clears the stored blob.
func (srv *cartService) ClearCart(ctx context.Context, shopperID uuid.UUID) error {
	if err := srv.storage.Clear(ctx, shopperID); err != nil {
		srv.log(ctx).Warn("Cart storage clear failed",
			slog.String("shopperID", shopperID.String()),
			slog.Any("error", err),
		)
	}

	return nil
}
