package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	storage     *mockRepo.MockCartStorage
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	storage := mockRepo.NewMockCartStorage(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(CartServiceParams{
		Storage:     storage,
		ProductRepo: productRepo,
		Logger:      testLogger(),
	})

	return cartServiceFixtures{
		service:     service,
		storage:     storage,
		productRepo: productRepo,
	}
}

func testProduct(price int64) *entity.Product {
	return &entity.Product{
		ID:    uuid.New(),
		Name:  "Wireless Mouse",
		Price: price,
		Image: "https://cdn.example.com/mouse.png",
	}
}

func TestCartService_GetCart_MissingBlobMeansEmptyCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	shopperID := uuid.New()

	fx.storage.EXPECT().
		Load(ctx, shopperID).
		Return(nil, repository.ErrCartNotFound)

	view, err := fx.service.GetCart(ctx, shopperID)
	require.NoError(t, err)
	assert.True(t, view.Cart.IsEmpty())
	assert.Equal(t, int64(0), view.Subtotal)
	assert.Equal(t, 0, view.ItemCount)
}

func TestCartService_AddItem_DenormalizesProductData(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	shopperID := uuid.New()
	product := testProduct(500)

	fx.productRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)

	fx.storage.EXPECT().
		Load(ctx, shopperID).
		Return(nil, repository.ErrCartNotFound)

	fx.storage.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Cart")).
		Return(nil)

	view, err := fx.service.AddItem(ctx, shopperID, product.ID, 2)
	require.NoError(t, err)
	require.Len(t, view.Cart.Lines, 1)
	assert.Equal(t, product.Name, view.Cart.Lines[0].Name)
	assert.Equal(t, product.Price, view.Cart.Lines[0].UnitPrice)
	assert.Equal(t, product.Image, view.Cart.Lines[0].Image)
	assert.Equal(t, int64(1000), view.Subtotal)
	assert.Equal(t, 2, view.ItemCount)
}

func TestCartService_AddItem_AccumulatesAcrossCalls(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	shopperID := uuid.New()
	product := testProduct(500)
	existing := entity.NewCart(shopperID)
	require.NoError(t, existing.AddItem(entity.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  1,
	}))

	fx.productRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)

	fx.storage.EXPECT().
		Load(ctx, shopperID).
		Return(existing, nil)

	fx.storage.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Cart")).
		Return(nil)

	view, err := fx.service.AddItem(ctx, shopperID, product.ID, 3)
	require.NoError(t, err)
	require.Len(t, view.Cart.Lines, 1)
	assert.Equal(t, 4, view.Cart.Lines[0].Quantity)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.AddItem(ctx, uuid.New(), productID, 1)
	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_AddItem_NonPositiveQuantity(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.AddItem(context.Background(), uuid.New(), uuid.New(), 0)
	require.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestCartService_AddItem_SaveFailureKeepsState(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	shopperID := uuid.New()
	product := testProduct(500)

	fx.productRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)

	fx.storage.EXPECT().
		Load(ctx, shopperID).
		Return(nil, repository.ErrCartNotFound)

	fx.storage.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Cart")).
		Return(errors.New("redis down"))

	view, err := fx.service.AddItem(ctx, shopperID, product.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, view.ItemCount)
}

func TestCartService_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	shopperID := uuid.New()
	productID := uuid.New()
	cart := entity.NewCart(shopperID)
	require.NoError(t, cart.AddItem(entity.CartLine{ProductID: productID, UnitPrice: 500, Quantity: 2}))

	fx.storage.EXPECT().
		Load(ctx, shopperID).
		Return(cart, nil)

	fx.storage.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Cart")).
		Return(nil)

	view, err := fx.service.UpdateQuantity(ctx, shopperID, productID, 0)
	require.NoError(t, err)
	assert.True(t, view.Cart.IsEmpty())
}

func TestCartService_RemoveItem_AbsentProductIsNoOp(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	shopperID := uuid.New()
	productID := uuid.New()
	cart := entity.NewCart(shopperID)
	require.NoError(t, cart.AddItem(entity.CartLine{ProductID: productID, UnitPrice: 500, Quantity: 1}))

	fx.storage.EXPECT().
		Load(ctx, shopperID).
		Return(cart, nil)

	fx.storage.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Cart")).
		Return(nil)

	view, err := fx.service.RemoveItem(ctx, shopperID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 1, view.ItemCount)
}

func TestCartService_ClearCart_StorageFailureTolerated(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	shopperID := uuid.New()

	fx.storage.EXPECT().
		Clear(ctx, shopperID).
		Return(errors.New("redis down"))

	err := fx.service.ClearCart(ctx, shopperID)
	require.NoError(t, err)
}
