package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLine(quantity int) CartLine {
	return CartLine{
		ProductID: uuid.New(),
		Name:      "Wireless Mouse",
		UnitPrice: 500,
		Image:     "https://cdn.example.com/mouse.png",
		Quantity:  quantity,
	}
}

func TestCart_AddItem_AccumulatesQuantity(t *testing.T) {
	cart := NewCart(uuid.New())
	line := testLine(2)

	require.NoError(t, cart.AddItem(line))
	require.NoError(t, cart.AddItem(CartLine{ProductID: line.ProductID, Name: line.Name, UnitPrice: line.UnitPrice, Quantity: 3}))

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
	assert.Equal(t, 5, cart.ItemCount())
}

func TestCart_AddItem_RejectsNonPositiveQuantity(t *testing.T) {
	cart := NewCart(uuid.New())

	err := cart.AddItem(testLine(0))
	require.ErrorIs(t, err, ErrInvalidQuantity)

	err = cart.AddItem(testLine(-1))
	require.ErrorIs(t, err, ErrInvalidQuantity)
	assert.True(t, cart.IsEmpty())
}

func TestCart_AddItem_PreservesInsertionOrder(t *testing.T) {
	cart := NewCart(uuid.New())
	first := testLine(1)
	second := testLine(1)
	third := testLine(1)

	require.NoError(t, cart.AddItem(first))
	require.NoError(t, cart.AddItem(second))
	require.NoError(t, cart.AddItem(third))

	// Re-adding an existing product must not move its line.
	require.NoError(t, cart.AddItem(CartLine{ProductID: second.ProductID, Quantity: 4}))

	require.Len(t, cart.Lines, 3)
	assert.Equal(t, first.ProductID, cart.Lines[0].ProductID)
	assert.Equal(t, second.ProductID, cart.Lines[1].ProductID)
	assert.Equal(t, third.ProductID, cart.Lines[2].ProductID)
	assert.Equal(t, 5, cart.Lines[1].Quantity)
}

func TestCart_UpdateQuantity_SetsExactValue(t *testing.T) {
	cart := NewCart(uuid.New())
	line := testLine(2)
	require.NoError(t, cart.AddItem(line))

	cart.UpdateQuantity(line.ProductID, 7)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 7, cart.Lines[0].Quantity)
}

func TestCart_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	cart := NewCart(uuid.New())
	line := testLine(2)
	require.NoError(t, cart.AddItem(line))

	cart.UpdateQuantity(line.ProductID, 0)
	assert.False(t, cart.Contains(line.ProductID))
	assert.True(t, cart.IsEmpty())

	require.NoError(t, cart.AddItem(line))
	cart.UpdateQuantity(line.ProductID, -3)
	assert.True(t, cart.IsEmpty())
}

func TestCart_RemoveItem_AbsentProductIsNoOp(t *testing.T) {
	cart := NewCart(uuid.New())
	line := testLine(1)
	require.NoError(t, cart.AddItem(line))

	cart.RemoveItem(uuid.New())

	require.Len(t, cart.Lines, 1)
	assert.True(t, cart.Contains(line.ProductID))
}

func TestCart_Subtotal_RecomputedFromLines(t *testing.T) {
	cart := NewCart(uuid.New())
	mouse := CartLine{ProductID: uuid.New(), Name: "Wireless Mouse", UnitPrice: 500, Quantity: 2}
	keyboard := CartLine{ProductID: uuid.New(), Name: "Keyboard", UnitPrice: 1200, Quantity: 1}

	require.NoError(t, cart.AddItem(mouse))
	require.NoError(t, cart.AddItem(keyboard))

	assert.Equal(t, int64(2200), cart.Subtotal())
	assert.Equal(t, 3, cart.ItemCount())

	cart.UpdateQuantity(mouse.ProductID, 1)
	assert.Equal(t, int64(1700), cart.Subtotal())
}

func TestCart_Clear_EmptiesCart(t *testing.T) {
	cart := NewCart(uuid.New())
	require.NoError(t, cart.AddItem(testLine(3)))

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, int64(0), cart.Subtotal())
	assert.Equal(t, 0, cart.ItemCount())
}

func TestCart_Snapshot_IsIndependentCopy(t *testing.T) {
	cart := NewCart(uuid.New())
	line := testLine(2)
	require.NoError(t, cart.AddItem(line))

	snapshot := cart.Snapshot()
	cart.UpdateQuantity(line.ProductID, 9)
	cart.Clear()

	require.Len(t, snapshot, 1)
	assert.Equal(t, 2, snapshot[0].Quantity)
	assert.Equal(t, line.ProductID, snapshot[0].ProductID)
}
