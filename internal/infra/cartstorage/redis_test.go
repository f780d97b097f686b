package cartstorage

import (
	"context"
	"encoding/json"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStorage creates a miniredis server backing a cart storage instance.
func setupTestStorage(t *testing.T) (repository.CartStorage, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return NewRedisCartStorage(client), mr
}

func TestRedisCartStorage_Load_Success(t *testing.T) {
	storage, mr := setupTestStorage(t)

	ctx := context.Background()
	shopperID := uuid.New()
	cart := entity.NewCart(shopperID)
	require.NoError(t, cart.AddItem(entity.CartLine{
		ProductID: uuid.New(),
		Name:      "Wireless Mouse",
		UnitPrice: 500,
		Quantity:  2,
	}))

	data, err := json.Marshal(cart)
	require.NoError(t, err)
	require.NoError(t, mr.Set(cartKey(shopperID), string(data)))

	loaded, err := storage.Load(ctx, shopperID)
	require.NoError(t, err)
	assert.Equal(t, shopperID, loaded.ShopperID)
	require.Len(t, loaded.Lines, 1)
	assert.Equal(t, "Wireless Mouse", loaded.Lines[0].Name)
	assert.Equal(t, int64(1000), loaded.Subtotal())
}

func TestRedisCartStorage_Load_Missing(t *testing.T) {
	storage, _ := setupTestStorage(t)

	_, err := storage.Load(context.Background(), uuid.New())
	require.ErrorIs(t, err, repository.ErrCartNotFound)
}

func TestRedisCartStorage_Load_CorruptBlob(t *testing.T) {
	storage, mr := setupTestStorage(t)

	shopperID := uuid.New()
	require.NoError(t, mr.Set(cartKey(shopperID), "not-json"))

	_, err := storage.Load(context.Background(), shopperID)
	require.Error(t, err)
}

func TestRedisCartStorage_Save_RoundTrip(t *testing.T) {
	storage, mr := setupTestStorage(t)

	ctx := context.Background()
	shopperID := uuid.New()
	cart := entity.NewCart(shopperID)
	require.NoError(t, cart.AddItem(entity.CartLine{
		ProductID: uuid.New(),
		Name:      "Keyboard",
		UnitPrice: 1200,
		Quantity:  1,
	}))

	require.NoError(t, storage.Save(ctx, cart))

	// The snapshot lives under the shopper's fixed key with no expiry.
	assert.True(t, mr.Exists(cartKey(shopperID)))
	assert.Equal(t, int64(0), int64(mr.TTL(cartKey(shopperID))))

	loaded, err := storage.Load(ctx, shopperID)
	require.NoError(t, err)
	assert.Equal(t, cart.Lines, loaded.Lines)
}

func TestRedisCartStorage_Save_OverwritesPrevious(t *testing.T) {
	storage, _ := setupTestStorage(t)

	ctx := context.Background()
	shopperID := uuid.New()
	cart := entity.NewCart(shopperID)
	require.NoError(t, cart.AddItem(entity.CartLine{ProductID: uuid.New(), UnitPrice: 500, Quantity: 1}))
	require.NoError(t, storage.Save(ctx, cart))

	cart.Clear()
	require.NoError(t, cart.AddItem(entity.CartLine{ProductID: uuid.New(), UnitPrice: 1200, Quantity: 3}))
	require.NoError(t, storage.Save(ctx, cart))

	loaded, err := storage.Load(ctx, shopperID)
	require.NoError(t, err)
	require.Len(t, loaded.Lines, 1)
	assert.Equal(t, 3, loaded.Lines[0].Quantity)
}

func TestRedisCartStorage_Clear(t *testing.T) {
	storage, mr := setupTestStorage(t)

	ctx := context.Background()
	shopperID := uuid.New()
	cart := entity.NewCart(shopperID)
	require.NoError(t, cart.AddItem(entity.CartLine{ProductID: uuid.New(), UnitPrice: 500, Quantity: 1}))
	require.NoError(t, storage.Save(ctx, cart))

	require.NoError(t, storage.Clear(ctx, shopperID))
	assert.False(t, mr.Exists(cartKey(shopperID)))

	// Clearing an absent cart is not an error.
	require.NoError(t, storage.Clear(ctx, shopperID))
}

func TestRedisCartStorage_KeysAreScopedPerShopper(t *testing.T) {
	storage, _ := setupTestStorage(t)

	ctx := context.Background()
	first := entity.NewCart(uuid.New())
	require.NoError(t, first.AddItem(entity.CartLine{ProductID: uuid.New(), UnitPrice: 500, Quantity: 1}))
	second := entity.NewCart(uuid.New())
	require.NoError(t, second.AddItem(entity.CartLine{ProductID: uuid.New(), UnitPrice: 1200, Quantity: 2}))

	require.NoError(t, storage.Save(ctx, first))
	require.NoError(t, storage.Save(ctx, second))

	loaded, err := storage.Load(ctx, first.ShopperID)
	require.NoError(t, err)
	assert.Equal(t, first.Lines, loaded.Lines)

	loaded, err = storage.Load(ctx, second.ShopperID)
	require.NoError(t, err)
	assert.Equal(t, second.Lines, loaded.Lines)
}
