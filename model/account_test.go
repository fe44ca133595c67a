package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	r, err := ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleOperator, r)

	r, err = ParseRole("  USER ")
	require.NoError(t, err)
	assert.Equal(t, RoleShopper, r)

	_, err = ParseRole("superuser")
	assert.ErrorIs(t, err, ErrInvalidRole)
	_, err = ParseRole("")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestCartOperations(t *testing.T) {
	a := NewAccount("alice", "secret", RoleShopper)
	assert.Empty(t, a.Cart)
	assert.Empty(t, a.History)

	tea := Item{Name: "tea", Price: 3.5, Quantity: 1}
	jam := Item{Name: "jam", Price: 2.0, Quantity: 4}
	a.AddToCart(tea)
	a.AddToCart(jam)
	assert.Equal(t, []Item{tea, jam}, a.Cart)
	assert.InDelta(t, 5.5, a.CartTotal(), 1e-9)

	a.ClearCart()
	assert.Empty(t, a.Cart)
	assert.Zero(t, a.CartTotal())
}

func TestHistoryIsAppendOnlyAndOrdered(t *testing.T) {
	a := NewAccount("alice", "secret", RoleShopper)
	first := []Item{{Name: "tea", Price: 3.5}, {Name: "jam", Price: 2.0}}
	second := []Item{{Name: "rye", Price: 1.25}}

	a.AddToHistory(first)
	a.AddToHistory(second)

	require.Len(t, a.History, 3)
	assert.Equal(t, "tea", a.History[0].Name)
	assert.Equal(t, "jam", a.History[1].Name)
	assert.Equal(t, "rye", a.History[2].Name)
}

func TestSortedCartDoesNotMutateStoredOrder(t *testing.T) {
	a := NewAccount("alice", "secret", RoleShopper)
	a.AddToCart(Item{Name: "b", Price: 2})
	a.AddToCart(Item{Name: "a", Price: 2})
	a.AddToCart(Item{Name: "c", Price: 1})

	sorted := a.SortedCart(SortPriceAsc)
	assert.Equal(t, []string{"c", "b", "a"}, names(sorted))
	assert.Equal(t, []string{"b", "a", "c"}, names(a.Cart))
}

func names(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}
