package entity

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidQuantity is returned when a cart mutation is given a non-positive quantity.
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// CartLine is one product the shopper intends to buy. Name, price and image
// are denormalized from the catalog at add time so the cart stays renderable
// even if the catalog entry changes afterwards.
type CartLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unit_price"`
	Image     string    `json:"image"`
	Quantity  int       `json:"quantity"`
}

// Cart is the set of lines the shopper currently intends to purchase.
// It holds at most one line per product and preserves insertion order.
// All methods are pure state transitions; persistence is layered on top.
type Cart struct {
	ShopperID uuid.UUID  `json:"shopper_id"`
	Lines     []CartLine `json:"lines"`
}

// NewCart returns an empty cart owned by the given shopper.
func NewCart(shopperID uuid.UUID) *Cart {
	return &Cart{ShopperID: shopperID}
}

// AddItem adds quantity of the product to the cart. If a line for the product
// already exists its quantity accumulates; otherwise a new line is appended.
func (c *Cart) AddItem(line CartLine) error {
	if line.Quantity <= 0 {
		return ErrInvalidQuantity
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID == line.ProductID {
			c.Lines[i].Quantity += line.Quantity

			return nil
		}
	}

	c.Lines = append(c.Lines, line)

	return nil
}

// RemoveItem deletes the line for the product. Removing an absent product is
// a no-op, not an error.
func (c *Cart) RemoveItem(productID uuid.UUID) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)

			return
		}
	}
}

// UpdateQuantity sets the line's quantity to exactly quantity (not additive).
// A quantity of zero or less removes the line instead of storing a
// non-positive value.
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)

		return
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = quantity

			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = nil
}

// Subtotal is the sum of unit price times quantity over all lines,
// recomputed from current state on every call.
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.UnitPrice * int64(line.Quantity)
	}

	return total
}

// ItemCount is the sum of quantities over all lines.
func (c *Cart) ItemCount() int {
	var count int
	for _, line := range c.Lines {
		count += line.Quantity
	}

	return count
}

// Contains reports whether the cart holds a line for the product.
func (c *Cart) Contains(productID uuid.UUID) bool {
	for _, line := range c.Lines {
		if line.ProductID == productID {
			return true
		}
	}

	return false
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Snapshot returns a deep copy of the current lines, safe to freeze into an
// order while the live cart keeps mutating.
func (c *Cart) Snapshot() []CartLine {
	snapshot := make([]CartLine, len(c.Lines))
	copy(snapshot, c.Lines)

	return snapshot
}
