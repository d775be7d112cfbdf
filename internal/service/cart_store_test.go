package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studentshop/cart-service/internal/domain/model"
)

// TestCartStore_AddItem tests adds, including the merge-by-product rule.
func TestCartStore_AddItem(t *testing.T) {
	t.Run("adds new line with generated line ID", func(t *testing.T) {
		store := NewCartStore("cart-1", nil)

		cart := store.AddItem(model.CartLine{ProductID: "p1", Name: "Mouse", UnitPrice: d("24.99"), Quantity: 2})

		require.Len(t, cart.Lines, 1)
		assert.NotEmpty(t, cart.Lines[0].LineID)
		assert.Equal(t, 2, cart.ItemCount)
		assert.True(t, cart.Subtotal.Equal(d("49.98")))
	})

	t.Run("repeated add merges into existing line", func(t *testing.T) {
		store := NewCartStore("cart-1", nil)

		first := store.AddItem(model.CartLine{ProductID: "p1", Name: "Mouse", UnitPrice: d("24.99"), Quantity: 1})
		originalLineID := first.Lines[0].LineID

		cart := store.AddItem(model.CartLine{ProductID: "p1", Name: "Mouse", UnitPrice: d("24.99"), Quantity: 3})

		require.Len(t, cart.Lines, 1)
		assert.Equal(t, originalLineID, cart.Lines[0].LineID, "merged line keeps its identity")
		assert.Equal(t, 4, cart.Lines[0].Quantity)
	})

	t.Run("merge keeps line position", func(t *testing.T) {
		store := NewCartStore("cart-1", nil)
		store.AddItem(model.CartLine{ProductID: "p1", UnitPrice: d("10"), Quantity: 1})
		store.AddItem(model.CartLine{ProductID: "p2", UnitPrice: d("20"), Quantity: 1})

		cart := store.AddItem(model.CartLine{ProductID: "p1", UnitPrice: d("10"), Quantity: 1})

		require.Len(t, cart.Lines, 2)
		assert.Equal(t, "p1", cart.Lines[0].ProductID, "merged line stays first")
		assert.Equal(t, 2, cart.Lines[0].Quantity)
		assert.Equal(t, "p2", cart.Lines[1].ProductID)
	})

	t.Run("merge keeps the original unit price", func(t *testing.T) {
		store := NewCartStore("cart-1", nil)
		store.AddItem(model.CartLine{ProductID: "p1", UnitPrice: d("10"), Quantity: 1})

		cart := store.AddItem(model.CartLine{ProductID: "p1", UnitPrice: d("99"), Quantity: 1})

		require.Len(t, cart.Lines, 1)
		assert.True(t, cart.Lines[0].UnitPrice.Equal(d("10")))
		assert.True(t, cart.Subtotal.Equal(d("20")))
	})

	t.Run("quantity below 1 is a no-op", func(t *testing.T) {
		store := NewCartStore("cart-1", nil)

		cart := store.AddItem(model.CartLine{ProductID: "p1", UnitPrice: d("10"), Quantity: 0})

		assert.Empty(t, cart.Lines)
		assert.Equal(t, 0, cart.ItemCount)
	})

	t.Run("caller-provided line ID is preserved", func(t *testing.T) {
		store := NewCartStore("cart-1", nil)

		cart := store.AddItem(model.CartLine{LineID: "line-abc", ProductID: "p1", UnitPrice: d("10"), Quantity: 1})

		require.Len(t, cart.Lines, 1)
		assert.Equal(t, "line-abc", cart.Lines[0].LineID)
	})
}

// TestCartStore_RemoveItem tests removal by line ID.
func TestCartStore_RemoveItem(t *testing.T) {
	t.Run("removes existing line", func(t *testing.T) {
		store := NewCartStore("cart-1", nil)
		first := store.AddItem(model.CartLine{ProductID: "p1", UnitPrice: d("10"), Quantity: 1})
		store.AddItem(model.CartLine{ProductID: "p2", UnitPrice: d("20"), Quantity: 1})

		cart := store.RemoveItem(first.Lines[0].LineID)

		require.Len(t, cart.Lines, 1)
		assert.Equal(t, "p2", cart.Lines[0].ProductID)
		assert.True(t, cart.Subtotal.Equal(d("20")))
	})

	t.Run("unknown line ID is a no-op", func(t *testing.T) {
		store := NewCartStore("cart-1", nil)
		store.AddItem(model.CartLine{ProductID: "p1", UnitPrice: d("10"), Quantity: 1})

		cart := store.RemoveItem("does-not-exist")

		assert.Len(t, cart.Lines, 1)
	})

	t.Run("removing twice is idempotent", func(t *testing.T) {
		store := NewCartStore("cart-1", nil)
		first := store.AddItem(model.CartLine{ProductID: "p1", UnitPrice: d("10"), Quantity: 1})

		store.RemoveItem(first.Lines[0].LineID)
		cart := store.RemoveItem(first.Lines[0].LineID)

		assert.Empty(t, cart.Lines)
	})
}

// TestCartStore_UpdateQuantity tests quantity updates, including the
// below-1-removes rule.
func TestCartStore_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name          string
		quantity      int
		expectLines   int
		expectedCount int
	}{
		{name: "sets a new quantity", quantity: 5, expectLines: 1, expectedCount: 5},
		{name: "quantity of 1 keeps the line", quantity: 1, expectLines: 1, expectedCount: 1},
		{name: "quantity of 0 removes the line", quantity: 0, expectLines: 0, expectedCount: 0},
		{name: "negative quantity removes the line", quantity: -3, expectLines: 0, expectedCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewCartStore("cart-1", nil)
			added := store.AddItem(model.CartLine{ProductID: "p1", UnitPrice: d("10"), Quantity: 2})

			cart := store.UpdateQuantity(added.Lines[0].LineID, tt.quantity)

			assert.Len(t, cart.Lines, tt.expectLines)
			assert.Equal(t, tt.expectedCount, cart.ItemCount)
		})
	}

	t.Run("unknown line ID is a no-op", func(t *testing.T) {
		store := NewCartStore("cart-1", nil)
		store.AddItem(model.CartLine{ProductID: "p1", UnitPrice: d("10"), Quantity: 2})

		cart := store.UpdateQuantity("does-not-exist", 7)

		require.Len(t, cart.Lines, 1)
		assert.Equal(t, 2, cart.Lines[0].Quantity)
	})
}

// TestCartStore_Clear tests full cart reset.
func TestCartStore_Clear(t *testing.T) {
	store := NewCartStore("cart-1", nil)
	store.AddItem(model.CartLine{ProductID: "p1", UnitPrice: d("10"), Quantity: 2})
	store.AddItem(model.CartLine{ProductID: "p2", UnitPrice: d("20"), Quantity: 1})

	cart := store.Clear()

	assert.Empty(t, cart.Lines)
	assert.Equal(t, 0, cart.ItemCount)
	assert.True(t, cart.Subtotal.Equal(d("0")))
	assert.True(t, cart.IsEmpty())
}

// TestCartStore_Lookups tests presence and quantity queries.
func TestCartStore_Lookups(t *testing.T) {
	store := NewCartStore("cart-1", nil)
	store.AddItem(model.CartLine{ProductID: "p1", UnitPrice: d("10"), Quantity: 3})

	assert.True(t, store.IsInCart("p1"))
	assert.False(t, store.IsInCart("p2"))
	assert.Equal(t, 3, store.ItemQuantity("p1"))
	assert.Equal(t, 0, store.ItemQuantity("p2"))
}

// TestCartStore_DerivedAggregates verifies item count and subtotal always
// track the lines.
func TestCartStore_DerivedAggregates(t *testing.T) {
	store := NewCartStore("cart-1", nil)

	cart := store.AddItem(model.CartLine{ProductID: "p1", UnitPrice: d("24.99"), Quantity: 2})
	assert.Equal(t, 2, cart.ItemCount)
	assert.True(t, cart.Subtotal.Equal(d("49.98")))

	added := store.AddItem(model.CartLine{ProductID: "p2", UnitPrice: d("15"), Quantity: 1, IsDigital: true})
	assert.Equal(t, 3, added.ItemCount)
	assert.True(t, added.Subtotal.Equal(d("64.98")))

	updated := store.UpdateQuantity(added.Lines[0].LineID, 1)
	assert.Equal(t, 2, updated.ItemCount)
	assert.True(t, updated.Subtotal.Equal(d("39.99")))

	cleared := store.Clear()
	assert.Equal(t, 0, cleared.ItemCount)
	assert.True(t, cleared.Subtotal.Equal(d("0")))
}

// TestCartStore_Hydration verifies hydrated lines are copied, not aliased.
func TestCartStore_Hydration(t *testing.T) {
	lines := []model.CartLine{
		{LineID: "l1", ProductID: "p1", UnitPrice: d("10"), Quantity: 2},
	}
	store := NewCartStore("cart-1", lines)

	lines[0].Quantity = 99

	cart := store.Snapshot()
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, "cart-1", store.Key())
}

// TestCartStore_ConcurrentMutations exercises the store under parallel
// mutation to catch races with the -race detector.
func TestCartStore_ConcurrentMutations(t *testing.T) {
	store := NewCartStore("cart-1", nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.AddItem(model.CartLine{ProductID: "p1", UnitPrice: d("2.50"), Quantity: 1})
		}()
	}
	wg.Wait()

	cart := store.Snapshot()
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 50, cart.ItemCount)
	assert.True(t, cart.Subtotal.Equal(d("125")))
}
