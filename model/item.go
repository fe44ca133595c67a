package models

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidPrice is returned when a price is zero or negative.
	ErrInvalidPrice = errors.New("price must be greater than 0")
	// ErrInvalidQuantity is returned when a quantity is negative.
	ErrInvalidQuantity = errors.New("quantity cannot be negative")
	// ErrInsufficientStock is returned when a decrement would drive stock below zero.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Item is a catalog entry. Once an item enters a cart or a purchase history
// it travels as a value copy, decoupled from the catalog entry it came from:
// later catalog edits never reach copies already handed out.
type Item struct {
	Name         string     `json:"name"`
	Price        float64    `json:"price"`
	Quantity     int        `json:"quantity"`
	PurchaseDate *time.Time `json:"purchase_date"`
}

// NewItem constructs a catalog item, applying the same field guards as the
// setters. PurchaseDate starts unset; only a checkout stamps it.
func NewItem(name string, price float64, quantity int) (Item, error) {
	if price <= 0 {
		return Item{}, ErrInvalidPrice
	}
	if quantity < 0 {
		return Item{}, ErrInvalidQuantity
	}
	return Item{Name: name, Price: price, Quantity: quantity}, nil
}

// SetPrice rejects non-positive values and leaves the item untouched.
func (i *Item) SetPrice(v float64) error {
	if v <= 0 {
		return ErrInvalidPrice
	}
	i.Price = v
	return nil
}

// SetQuantity rejects negative values and leaves the item untouched.
func (i *Item) SetQuantity(v int) error {
	if v < 0 {
		return ErrInvalidQuantity
	}
	i.Quantity = v
	return nil
}

// DecreaseQuantity removes n units of stock. The decrement happens only when
// n is positive and fully covered by the current quantity; stock never goes
// negative.
func (i *Item) DecreaseQuantity(n int) error {
	if n <= 0 || i.Quantity < n {
		return ErrInsufficientStock
	}
	i.Quantity -= n
	return nil
}

// StampPurchase records the moment the item was bought. Unconditional; the
// checkout protocol calls it exactly once per history entry.
func (i *Item) StampPurchase(t time.Time) {
	i.PurchaseDate = &t
}

func (i Item) String() string {
	return fmt.Sprintf("Item(name=%q, price=%.2f, quantity=%d)", i.Name, i.Price, i.Quantity)
}
