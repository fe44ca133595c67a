package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sample() []Item {
	return []Item{
		{Name: "b", Price: 2, Quantity: 5},
		{Name: "a", Price: 2, Quantity: 1},
		{Name: "C", Price: 1, Quantity: 3},
	}
}

func TestSortItemsStableOnEqualKeys(t *testing.T) {
	got := SortItems(sample(), SortPriceAsc)
	// "b" and "a" share a price; they must keep their original relative order.
	assert.Equal(t, []string{"C", "b", "a"}, names(got))
}

func TestSortItemsByEachKey(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{SortPriceAsc, []string{"C", "b", "a"}},
		{SortPriceDesc, []string{"b", "a", "C"}},
		{SortQuantityAsc, []string{"a", "C", "b"}},
		{SortQuantityDesc, []string{"b", "C", "a"}},
		{SortNameAsc, []string{"a", "b", "C"}},
		{SortNameDesc, []string{"C", "b", "a"}},
		{"unknown", []string{"b", "a", "C"}},
		{"", []string{"b", "a", "C"}},
	}
	for _, tc := range tests {
		got := SortItems(sample(), tc.key)
		assert.Equal(t, tc.want, names(got), "key %q", tc.key)
	}
}

func TestSortItemsLeavesInputUntouched(t *testing.T) {
	in := sample()
	_ = SortItems(in, SortNameDesc)
	assert.Equal(t, []string{"b", "a", "C"}, names(in))
}
