package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafeteria/internal/models"
	"cafeteria/internal/services"
	"cafeteria/internal/storage"
)

func newCart(t *testing.T) *services.CartService {
	t.Helper()
	return services.NewCartService(storage.NewMemory())
}

func foodItem(id string, price float64) models.FoodItem {
	return models.FoodItem{ID: id, Name: "Item " + id, Price: price, Category: "lunch"}
}

func TestCartService_AddIncrementsQuantity(t *testing.T) {
	cart := newCart(t)
	item := foodItem("a", 10.0)

	// Adding the same item n times must leave one entry with quantity n.
	for i := 0; i < 3; i++ {
		require.NoError(t, cart.Add(item))
	}

	entries, err := cart.Items()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].Item.ID)
	assert.Equal(t, 3, entries[0].Quantity)
}

func TestCartService_AddDistinctItems(t *testing.T) {
	cart := newCart(t)

	require.NoError(t, cart.Add(foodItem("a", 10.0)))
	require.NoError(t, cart.Add(foodItem("b", 5.0)))

	entries, err := cart.Items()
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	count, err := cart.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCartService_SetQuantityClampsToOne(t *testing.T) {
	cart := newCart(t)
	require.NoError(t, cart.Add(foodItem("a", 10.0)))

	for _, n := range []int{0, -1, -100} {
		require.NoError(t, cart.SetQuantity("a", n))
		entries, err := cart.Items()
		require.NoError(t, err)
		assert.Equal(t, 1, entries[0].Quantity, "quantity %d must clamp to 1", n)
	}

	require.NoError(t, cart.SetQuantity("a", 4))
	entries, err := cart.Items()
	require.NoError(t, err)
	assert.Equal(t, 4, entries[0].Quantity)
}

func TestCartService_SetQuantityMissingItemIsNoOp(t *testing.T) {
	cart := newCart(t)
	require.NoError(t, cart.SetQuantity("ghost", 5))

	entries, err := cart.Items()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCartService_Remove(t *testing.T) {
	cart := newCart(t)
	require.NoError(t, cart.Add(foodItem("a", 10.0)))
	require.NoError(t, cart.Add(foodItem("b", 5.0)))

	require.NoError(t, cart.Remove("a"))
	entries, err := cart.Items()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "b", entries[0].Item.ID)

	// Removing something absent is a no-op, not an error.
	require.NoError(t, cart.Remove("ghost"))
}

func TestCartService_Total(t *testing.T) {
	cart := newCart(t)

	require.NoError(t, cart.Add(foodItem("a", 10.0)))
	require.NoError(t, cart.Add(foodItem("a", 10.0)))
	require.NoError(t, cart.Add(foodItem("b", 5.0)))

	total, err := cart.Total()
	require.NoError(t, err)
	assert.Equal(t, 25.0, total)
}

func TestCartService_TotalIndependentOfInsertionOrder(t *testing.T) {
	first := newCart(t)
	require.NoError(t, first.Add(foodItem("a", 3.33)))
	require.NoError(t, first.Add(foodItem("b", 6.67)))

	second := newCart(t)
	require.NoError(t, second.Add(foodItem("b", 6.67)))
	require.NoError(t, second.Add(foodItem("a", 3.33)))

	firstTotal, err := first.Total()
	require.NoError(t, err)
	secondTotal, err := second.Total()
	require.NoError(t, err)
	assert.Equal(t, firstTotal, secondTotal)
	assert.Equal(t, 10.0, firstTotal)
}

func TestCartService_TotalRoundsToTwoDecimals(t *testing.T) {
	cart := newCart(t)
	require.NoError(t, cart.Add(foodItem("a", 0.1)))
	require.NoError(t, cart.Add(foodItem("b", 0.2)))

	total, err := cart.Total()
	require.NoError(t, err)
	assert.Equal(t, 0.3, total)
}

func TestCartService_Clear(t *testing.T) {
	cart := newCart(t)
	require.NoError(t, cart.Add(foodItem("a", 10.0)))

	require.NoError(t, cart.Clear())
	entries, err := cart.Items()
	require.NoError(t, err)
	assert.Empty(t, entries)

	total, err := cart.Total()
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCartService_PersistsAcrossInstances(t *testing.T) {
	store := storage.NewMemory()
	cart := services.NewCartService(store)
	require.NoError(t, cart.Add(foodItem("a", 10.0)))

	// A fresh service over the same store sees the persisted cart.
	reopened := services.NewCartService(store)
	entries, err := reopened.Items()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].Item.ID)
}

func TestCartService_SnapshotForPayment(t *testing.T) {
	store := storage.NewMemory()
	cart := services.NewCartService(store)
	require.NoError(t, cart.Add(foodItem("a", 10.0)))
	require.NoError(t, cart.SnapshotForPayment())

	raw, ok, err := store.Get(storage.KeyCartForPayment)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(raw), `"a"`)
}
