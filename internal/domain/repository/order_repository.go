package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists submitted orders. Orders are written exactly once
// at checkout confirmation and never mutated by the storefront afterwards.
type OrderRepository interface {
	// CreateOrder persists a new order snapshot and writes the assigned id
	// back onto the entity.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrdersByShopper retrieves a shopper's order history, newest first.
	FindOrdersByShopper(ctx context.Context, shopperID uuid.UUID) ([]*entity.Order, error)

	// FindOrderByID retrieves a single order.
	// Returns ErrOrderNotFound if the id is unknown.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
}
