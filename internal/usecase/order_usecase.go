package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase exposes the shopper's order history. Orders are created by
// the checkout flow only; this interface never mutates them.
type OrderUsecase interface {
	// ListOrders returns the shopper's submitted orders, newest first.
	ListOrders(ctx context.Context, shopperID uuid.UUID) ([]*entity.Order, error)

	// GetOrder returns one order, refusing access to other shoppers' records.
	GetOrder(ctx context.Context, shopperID, orderID uuid.UUID) (*entity.Order, error)
}
