package service

import (
	"context"
)

// OrderEvent is emitted after an order is successfully persisted so
// downstream consumers (fulfilment, analytics) can react asynchronously.
type OrderEvent struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing
	OrderID       string `json:"order_id"`
	ShopperID     string `json:"shopper_id"`
	Status        string `json:"status"`
	PaymentMethod string `json:"payment_method"`
	TotalAmount   int64  `json:"total_amount"`
	ItemCount     int    `json:"item_count"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
