package store

import (
	"errors"

	models "shop-management/model"
)

// Backend persists store snapshots. Implementations read a store in full and
// rewrite it in full; there is no incremental persistence. The accounts and
// catalog snapshots are independent resources with no cross-store
// transaction between them.
type Backend interface {
	LoadCatalog() ([]models.Item, error)
	SaveCatalog(items []models.Item) error
	LoadAccounts() (map[string]*models.Account, error)
	SaveAccounts(accounts map[string]*models.Account) error
}

var (
	// ErrDuplicateUsername is returned when registering a name that is taken.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrAccountNotFound is returned for operations on an unknown username.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords; callers are not told which one failed.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidIndex is returned when a positional reference into the
	// catalog listing is out of range.
	ErrInvalidIndex = errors.New("no item at that position")
	// ErrBadNumberFormat is returned when optional numeric edit input does
	// not parse.
	ErrBadNumberFormat = errors.New("not a valid number")
)
