package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	models "shop-management/model"
	"shop-management/store"
)

var (
	// ErrOutOfStock is returned when a shopper tries to cart an item whose
	// stock is exhausted. Nothing is mutated.
	ErrOutOfStock = errors.New("out of stock")
	// ErrNotShopper is returned when checkout is attempted by an operator.
	ErrNotShopper = errors.New("only shoppers can check out")
)

// Service coordinates the catalog and account stores. Cross-store effects
// (reservation-on-add, checkout) are two sequential persisted writes with no
// shared transaction; single-session use makes the window between them
// acceptable.
type Service struct {
	catalog  *store.CatalogStore
	accounts *store.AccountStore
}

func NewService(catalog *store.CatalogStore, accounts *store.AccountStore) *Service {
	return &Service{catalog: catalog, accounts: accounts}
}

// --- accounts ---

func (s *Service) Register(username, password, role string) error {
	if username == "" {
		return errors.New("username required")
	}
	r, err := models.ParseRole(role)
	if err != nil {
		return err
	}
	return s.accounts.Register(username, password, r)
}

func (s *Service) Login(username, password string) (*models.Account, error) {
	return s.accounts.Login(username, password)
}

func (s *Service) DeleteAccount(username string) error {
	return s.accounts.Delete(username)
}

func (s *Service) ChangeRole(username, newRole string) error {
	r, err := models.ParseRole(newRole)
	if err != nil {
		return err
	}
	return s.accounts.ChangeRole(username, r)
}

func (s *Service) ChangePassword(username, newPassword string) error {
	return s.accounts.ChangePassword(username, newPassword)
}

func (s *Service) Accounts() []store.AccountInfo {
	return s.accounts.List()
}

func (s *Service) Statistics() (store.Statistics, bool) {
	return s.accounts.Statistics()
}

// --- catalog ---

func (s *Service) AddProduct(name string, price float64, quantity int) error {
	if name == "" {
		return errors.New("name required")
	}
	return s.catalog.Add(name, price, quantity)
}

func (s *Service) DeleteProduct(name string) (int, error) {
	return s.catalog.Delete(name)
}

func (s *Service) EditProduct(index int, newName, newPrice, newQuantity string) error {
	return s.catalog.Edit(index, newName, newPrice, newQuantity)
}

func (s *Service) Products(sortKey string) []models.Item {
	return s.catalog.Sorted(sortKey)
}

// --- cart and checkout ---

// AddToCart puts a value copy of the catalog item at index into the
// account's cart. For shoppers this reserves stock: the catalog decrement is
// persisted first, then the cart append — two separate writes. Operators
// cart without reserving.
func (s *Service) AddToCart(username string, index int) error {
	a, ok := s.accounts.Get(username)
	if !ok {
		return store.ErrAccountNotFound
	}
	if a.IsOperator() {
		it, err := s.catalog.Get(index)
		if err != nil {
			return err
		}
		a.AddToCart(it)
		return s.accounts.Save()
	}

	it, err := s.catalog.Get(index)
	if err != nil {
		return err
	}
	if it.Quantity <= 0 {
		return ErrOutOfStock
	}
	reserved, err := s.catalog.Reserve(index)
	if err != nil {
		return err
	}
	a.AddToCart(reserved)
	return s.accounts.Save()
}

// Cart returns a derived ordering of the cart plus its total cost. The
// stored cart order is never mutated.
func (s *Service) Cart(username, sortKey string) ([]models.Item, float64, error) {
	a, ok := s.accounts.Get(username)
	if !ok {
		return nil, 0, store.ErrAccountNotFound
	}
	return a.SortedCart(sortKey), a.CartTotal(), nil
}

// CheckoutResult reports the outcome of a checkout. Committed is false for a
// cancellation, which is a valid terminal outcome, not an error.
type CheckoutResult struct {
	ReceiptID   string
	Committed   bool
	Items       []models.Item
	Total       float64
	CompletedAt time.Time
}

// Checkout runs the confirm/cancel protocol over the account's current cart.
// The decision arrives already made (the shell collects it), so the protocol
// itself needs no terminal. On cancel the cart is untouched and no history
// entry is created. On confirm every cart item is stamped with the current
// time, appended to history in cart order, and the cart is cleared; a
// repeated confirm on the now-empty cart commits nothing.
func (s *Service) Checkout(username string, confirm bool) (CheckoutResult, error) {
	a, ok := s.accounts.Get(username)
	if !ok {
		return CheckoutResult{}, store.ErrAccountNotFound
	}
	if a.IsOperator() {
		return CheckoutResult{}, ErrNotShopper
	}
	if !confirm {
		return CheckoutResult{}, nil
	}

	now := time.Now()
	total := a.CartTotal()
	purchased := make([]models.Item, len(a.Cart))
	copy(purchased, a.Cart)
	for i := range purchased {
		purchased[i].StampPurchase(now)
	}
	a.AddToHistory(purchased)
	a.ClearCart()
	if err := s.accounts.Save(); err != nil {
		return CheckoutResult{}, err
	}
	return CheckoutResult{
		ReceiptID:   uuid.NewString(),
		Committed:   true,
		Items:       purchased,
		Total:       total,
		CompletedAt: now,
	}, nil
}

// History returns the account's purchase history in stored (append) order.
func (s *Service) History(username string) ([]models.Item, error) {
	a, ok := s.accounts.Get(username)
	if !ok {
		return nil, store.ErrAccountNotFound
	}
	return a.History, nil
}

var _ ServiceInterface = (*Service)(nil)
