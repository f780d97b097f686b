package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		Logger:      testLogger(),
	})

	return catalogServiceFixtures{
		service:     service,
		productRepo: productRepo,
	}
}

func TestCatalogService_ListProducts(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	catalog := []*entity.Product{testProduct(500), testProduct(1200)}

	fx.productRepo.EXPECT().
		FindAll(ctx).
		Return(catalog, nil)

	products, err := fx.service.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog, products)
}

func TestCatalogService_ListProducts_RepositoryFailure(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindAll(ctx).
		Return(nil, errors.New("database down"))

	_, err := fx.service.ListProducts(ctx)
	require.Error(t, err)
}

func TestCatalogService_GetProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	product := testProduct(500)

	fx.productRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)

	got, err := fx.service.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product, got)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, productID)
	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
