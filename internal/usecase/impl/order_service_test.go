package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewOrderService(OrderServiceParams{
		OrderRepo: orderRepo,
		Logger:    testLogger(),
	})

	return orderServiceFixtures{
		service:   service,
		orderRepo: orderRepo,
	}
}

func testOrder(shopperID uuid.UUID) *entity.Order {
	return &entity.Order{
		ID:        uuid.New(),
		ShopperID: shopperID,
		Items: []entity.CartLine{
			{ProductID: uuid.New(), Name: "Wireless Mouse", UnitPrice: 500, Quantity: 2},
		},
		Status:         entity.OrderStatusPending,
		PaymentMethod:  entity.PaymentCOD,
		DeliveryOption: entity.DeliveryStandard,
		TotalAmount:    1000,
		OrderedAt:      time.Now(),
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	shopperID := uuid.New()
	history := []*entity.Order{testOrder(shopperID), testOrder(shopperID)}

	fx.orderRepo.EXPECT().
		FindOrdersByShopper(ctx, shopperID).
		Return(history, nil)

	orders, err := fx.service.ListOrders(ctx, shopperID)
	require.NoError(t, err)
	assert.Equal(t, history, orders)
}

func TestOrderService_GetOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	shopperID := uuid.New()
	order := testOrder(shopperID)

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	got, err := fx.service.GetOrder(ctx, shopperID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order, got)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.GetOrder(ctx, uuid.New(), orderID)
	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_GetOrder_CrossShopperAccessHidden(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := testOrder(uuid.New())

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	// Another shopper's order looks identical to a missing one.
	_, err := fx.service.GetOrder(ctx, uuid.New(), order.ID)
	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
