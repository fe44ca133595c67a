package service

import (
	models "shop-management/model"
	"shop-management/store"
)

// ServiceInterface is what shells (the menu loop) program against.
type ServiceInterface interface {
	Register(username, password, role string) error
	Login(username, password string) (*models.Account, error)
	DeleteAccount(username string) error
	ChangeRole(username, newRole string) error
	ChangePassword(username, newPassword string) error
	Accounts() []store.AccountInfo
	Statistics() (store.Statistics, bool)

	AddProduct(name string, price float64, quantity int) error
	DeleteProduct(name string) (int, error)
	EditProduct(index int, newName, newPrice, newQuantity string) error
	Products(sortKey string) []models.Item

	AddToCart(username string, index int) error
	Cart(username, sortKey string) ([]models.Item, float64, error)
	Checkout(username string, confirm bool) (CheckoutResult, error)
	History(username string) ([]models.Item, error)
}
