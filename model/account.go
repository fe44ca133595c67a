package models

import (
	"errors"
	"fmt"
	"strings"
)

// Role tags an account variant. Operators manage the catalog and the account
// base; shoppers browse, cart, and check out. The on-disk spelling matches
// the persisted files ("admin"/"user").
type Role string

const (
	RoleOperator Role = "admin"
	RoleShopper  Role = "user"
)

// ErrInvalidRole is returned for any role outside the two recognized values.
var ErrInvalidRole = errors.New("invalid role")

// ParseRole maps user-supplied text to a Role, case-insensitively.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleOperator:
		return RoleOperator, nil
	case RoleShopper:
		return RoleShopper, nil
	}
	return "", ErrInvalidRole
}

// Valid reports whether r is one of the two recognized roles.
func (r Role) Valid() bool {
	return r == RoleOperator || r == RoleShopper
}

// Account is a registered identity. Username is the unique key across the
// account store. Cart and History are owned value copies: items in them are
// decoupled from the catalog entries they came from. History is append-only.
type Account struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	Cart     []Item `json:"cart"`
	History  []Item `json:"history"`
}

func NewAccount(username, password string, role Role) *Account {
	return &Account{
		Username: username,
		Password: password,
		Role:     role,
		Cart:     []Item{},
		History:  []Item{},
	}
}

func (a *Account) IsOperator() bool {
	return a.Role == RoleOperator
}

// AddToCart appends an item copy to the cart. Stock gating and the
// reservation decrement are the caller's responsibility; by the time an item
// lands here its stock has already been taken from the catalog.
func (a *Account) AddToCart(it Item) {
	a.Cart = append(a.Cart, it)
}

// ClearCart empties the cart unconditionally.
func (a *Account) ClearCart() {
	a.Cart = []Item{}
}

// AddToHistory appends the given items in order. Nothing is ever removed or
// reordered afterwards.
func (a *Account) AddToHistory(items []Item) {
	a.History = append(a.History, items...)
}

// CartTotal sums the prices of everything currently in the cart.
func (a *Account) CartTotal() float64 {
	var total float64
	for _, it := range a.Cart {
		total += it.Price
	}
	return total
}

// SortedCart returns a derived ordering of the cart for display. The stored
// cart order is never altered.
func (a *Account) SortedCart(key string) []Item {
	return SortItems(a.Cart, key)
}

func (a *Account) String() string {
	return fmt.Sprintf("Account(username=%q, role=%q)", a.Username, a.Role)
}
