// Package cartstorage persists cart snapshots in Redis so a shopper's cart
// survives restarts and moves across devices with the account.
package cartstorage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the Redis client with Fx lifecycle management.
func NewClient(params Params) (*redis.Client, error) {
	if params.Config.Redis == nil {
		return nil, errors.New("redis config is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// redisCartStorage implements the repository.CartStorage interface. Carts
// are stored without expiry; an abandoned cart is still the shopper's cart.
type redisCartStorage struct {
	client *redis.Client
}

// NewRedisCartStorage is the constructor for redisCartStorage.
func NewRedisCartStorage(client *redis.Client) repository.CartStorage {
	return &redisCartStorage{client: client}
}

// Load returns the stored cart, or repository.ErrCartNotFound when the
// shopper has never saved one.
func (s *redisCartStorage) Load(ctx context.Context, shopperID uuid.UUID) (*entity.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(shopperID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrCartNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	var cart entity.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, errors.Wrap(err, "failed to decode cart")
	}

	return &cart, nil
}

// Save overwrites the stored cart snapshot.
func (s *redisCartStorage) Save(ctx context.Context, cart *entity.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return errors.Wrap(err, "failed to encode cart")
	}

	if err := s.client.Set(ctx, cartKey(cart.ShopperID), data, 0).Err(); err != nil {
		return errors.Wrap(err, "failed to save cart")
	}

	return nil
}

// Clear removes the stored cart snapshot.
func (s *redisCartStorage) Clear(ctx context.Context, shopperID uuid.UUID) error {
	if err := s.client.Del(ctx, cartKey(shopperID)).Err(); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

func cartKey(shopperID uuid.UUID) string {
	return fmt.Sprintf("cart:%s", shopperID)
}
