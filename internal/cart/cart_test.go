package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_shop/internal/catalog"
	"github.com/fjod/go_shop/internal/domain"
)

func setupCart(t *testing.T) *Cart {
	t.Helper()
	store := catalog.New([]domain.Product{
		{Name: "Iphone 11", Price: decimal.RequireFromString("2100.99")},
		{Name: "Galaxy S21", Price: decimal.RequireFromString("1800.00")},
	})
	return New(store)
}

func TestCart_AddItem(t *testing.T) {
	c := setupCart(t)

	require.NoError(t, c.AddItem("Iphone 11", 2))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, domain.CartItem{Name: "Iphone 11", Quantity: 2}, items[0])
}

func TestCart_AddItem_Accumulates(t *testing.T) {
	c := setupCart(t)

	require.NoError(t, c.AddItem("Iphone 11", 3))
	require.NoError(t, c.AddItem("iphone 11", 4))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)

	// Two adds equal a single add of the summed quantity.
	single := setupCart(t)
	require.NoError(t, single.AddItem("Iphone 11", 7))
	assert.Equal(t, single.Items(), items)
}

func TestCart_AddItem_UnknownProduct(t *testing.T) {
	c := setupCart(t)

	err := c.AddItem("Nokia 3310", 1)
	assert.ErrorIs(t, err, ErrUnknownProduct)
	assert.True(t, c.IsEmpty())
}

func TestCart_AddItem_InvalidQuantity(t *testing.T) {
	c := setupCart(t)

	assert.ErrorIs(t, c.AddItem("Iphone 11", 0), ErrInvalidQuantity)
	assert.ErrorIs(t, c.AddItem("Iphone 11", -3), ErrInvalidQuantity)
	assert.True(t, c.IsEmpty())
}

func TestCart_UpdateQuantity(t *testing.T) {
	c := setupCart(t)
	require.NoError(t, c.AddItem("Iphone 11", 2))

	require.NoError(t, c.UpdateQuantity("iphone 11", 5))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestCart_UpdateQuantity_ZeroRemoves(t *testing.T) {
	c := setupCart(t)
	require.NoError(t, c.AddItem("Iphone 11", 2))
	require.NoError(t, c.AddItem("Galaxy S21", 1))

	require.NoError(t, c.UpdateQuantity("Iphone 11", 0))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Galaxy S21", items[0].Name)
}

func TestCart_UpdateQuantity_NotInCart(t *testing.T) {
	c := setupCart(t)

	assert.ErrorIs(t, c.UpdateQuantity("Iphone 11", 2), ErrNotInCart)
}

func TestCart_UpdateQuantity_Negative(t *testing.T) {
	c := setupCart(t)
	require.NoError(t, c.AddItem("Iphone 11", 2))

	assert.ErrorIs(t, c.UpdateQuantity("Iphone 11", -1), ErrInvalidQuantity)

	// Entry is untouched.
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCart_ItemsInsertionOrder(t *testing.T) {
	c := setupCart(t)
	require.NoError(t, c.AddItem("Galaxy S21", 1))
	require.NoError(t, c.AddItem("Iphone 11", 2))

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Galaxy S21", items[0].Name)
	assert.Equal(t, "Iphone 11", items[1].Name)
}

func TestCart_Clear(t *testing.T) {
	c := setupCart(t)
	require.NoError(t, c.AddItem("Iphone 11", 2))

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.Items())

	// Cart stays usable after checkout.
	require.NoError(t, c.AddItem("Galaxy S21", 1))
	assert.Len(t, c.Items(), 1)
}
