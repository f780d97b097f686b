package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus tracks an order through fulfilment. The storefront only ever
// writes the initial pending value; later transitions belong to a back-office
// process.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the known values.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}

	return false
}

// PaymentMethod is the shopper's selected way to pay. Only cod and the
// esewa hosted redirect are fully wired; card and khalti are advisory.
type PaymentMethod string

const (
	PaymentCOD    PaymentMethod = "cod"
	PaymentCard   PaymentMethod = "card"
	PaymentEsewa  PaymentMethod = "esewa"
	PaymentKhalti PaymentMethod = "khalti"
)

// Valid reports whether the payment method is one of the known values.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCOD, PaymentCard, PaymentEsewa, PaymentKhalti:
		return true
	}

	return false
}

// Order is an immutable snapshot created at checkout confirmation. Items and
// the shipping address are copied by value, and TotalAmount is frozen at
// submission time, never recomputed from a possibly-changed cart.
type Order struct {
	ID              uuid.UUID        `json:"id"`               // Server-assigned identifier.
	ShopperID       uuid.UUID        `json:"shopper_id"`       // Owner; orders are scoped per shopper.
	Items           []CartLine       `json:"items"`            // Cart lines at submission time.
	ShippingAddress ShippingAddress  `json:"shipping_address"` // Copy of the selected address.
	Status          OrderStatus      `json:"status"`           // Initially pending.
	PaymentMethod   PaymentMethod    `json:"payment_method"`
	DeliveryOption  DeliveryOptionID `json:"delivery_option"` // Tier selected at submission time.
	TotalAmount     int64            `json:"total_amount"`    // Subtotal plus delivery fee, frozen.
	OrderedAt       time.Time        `json:"ordered_at"`      // Submission timestamp.
}
