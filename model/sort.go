package models

import (
	"sort"
	"strings"
)

// Sort keys recognized by catalog and cart listings. Anything else leaves
// the stored order as-is.
const (
	SortPriceAsc     = "price"
	SortPriceDesc    = "price_desc"
	SortQuantityAsc  = "quantity"
	SortQuantityDesc = "quantity_desc"
	SortNameAsc      = "name"
	SortNameDesc     = "name_desc"
)

// SortItems returns a sorted copy of items. The input is never mutated and
// the sort is stable: equal keys keep their original relative order. Name
// comparison is case-insensitive.
func SortItems(items []Item, key string) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	switch key {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortQuantityAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Quantity < out[j].Quantity })
	case SortQuantityDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Quantity > out[j].Quantity })
	case SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case SortNameDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) > strings.ToLower(out[j].Name)
		})
	}
	return out
}
