package store

import (
	"errors"
	"fmt"
	"strconv"

	models "shop-management/model"
)

// CatalogStore owns the ordered sequence of sellable items and is the sole
// mutator of stock quantities. State lives in memory; every mutation is
// followed by a wholesale save through the backend.
type CatalogStore struct {
	backend Backend
	items   []models.Item
}

func NewCatalogStore(b Backend) *CatalogStore {
	return &CatalogStore{backend: b, items: []models.Item{}}
}

// Load replaces the in-memory catalog with the persisted snapshot. On
// failure the previous in-memory state stays authoritative.
func (c *CatalogStore) Load() error {
	items, err := c.backend.LoadCatalog()
	if err != nil {
		return err
	}
	c.items = items
	return nil
}

// Save rewrites the persisted catalog from the in-memory state.
func (c *CatalogStore) Save() error {
	return c.backend.SaveCatalog(c.items)
}

// Add validates, appends, and persists a new catalog item.
func (c *CatalogStore) Add(name string, price float64, quantity int) error {
	it, err := models.NewItem(name, price, quantity)
	if err != nil {
		return err
	}
	c.items = append(c.items, it)
	return c.Save()
}

// Delete removes every item whose name matches exactly and reports how many
// were removed. Zero matches is a no-op, not an error.
func (c *CatalogStore) Delete(name string) (int, error) {
	kept := make([]models.Item, 0, len(c.items))
	for _, it := range c.items {
		if it.Name != name {
			kept = append(kept, it)
		}
	}
	removed := len(c.items) - len(kept)
	c.items = kept
	return removed, c.Save()
}

// Edit updates the item at index. Each optional field is parsed and
// validated independently: a field that fails keeps its old value and is
// reported, while the other valid fields still apply. The catalog is saved
// whether or not anything changed.
//
// Indexes address the current listing and can go stale after a delete in the
// same session; that is documented behavior, not guarded against.
func (c *CatalogStore) Edit(index int, newName, newPrice, newQuantity string) error {
	if index < 0 || index >= len(c.items) {
		return ErrInvalidIndex
	}
	it := &c.items[index]

	var errs []error
	if newName != "" {
		it.Name = newName
	}
	if newPrice != "" {
		p, err := strconv.ParseFloat(newPrice, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("price %q: %w", newPrice, ErrBadNumberFormat))
		} else if err := it.SetPrice(p); err != nil {
			errs = append(errs, err)
		}
	}
	if newQuantity != "" {
		q, err := strconv.Atoi(newQuantity)
		if err != nil {
			errs = append(errs, fmt.Errorf("quantity %q: %w", newQuantity, ErrBadNumberFormat))
		} else if err := it.SetQuantity(q); err != nil {
			errs = append(errs, err)
		}
	}
	if err := c.Save(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Items returns the stored order.
func (c *CatalogStore) Items() []models.Item {
	return c.items
}

// Sorted returns a derived ordering for display; the stored order is never
// altered by a sort request.
func (c *CatalogStore) Sorted(key string) []models.Item {
	return models.SortItems(c.items, key)
}

// Get returns a copy of the item at index in the current listing.
func (c *CatalogStore) Get(index int) (models.Item, error) {
	if index < 0 || index >= len(c.items) {
		return models.Item{}, ErrInvalidIndex
	}
	return c.items[index], nil
}

func (c *CatalogStore) Len() int {
	return len(c.items)
}

// Reserve takes one unit of stock for the item at index and persists the
// decrement. This is the reservation-on-add write: stock leaves the catalog
// the moment an item enters a cart, not at checkout. The returned copy
// reflects the decremented quantity.
func (c *CatalogStore) Reserve(index int) (models.Item, error) {
	if index < 0 || index >= len(c.items) {
		return models.Item{}, ErrInvalidIndex
	}
	if err := c.items[index].DecreaseQuantity(1); err != nil {
		return models.Item{}, err
	}
	return c.items[index], c.Save()
}
