package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	models "shop-management/model"
)

// FileBackend persists each store as an indented UTF-8 JSON file so the data
// stays diffable and hand-editable. Files are read whole and rewritten whole.
type FileBackend struct {
	CatalogPath  string
	AccountsPath string
}

// NewFileBackend stores the catalog in products.json and the accounts in
// users.json under dir.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{
		CatalogPath:  filepath.Join(dir, "products.json"),
		AccountsPath: filepath.Join(dir, "users.json"),
	}
}

func (f *FileBackend) LoadCatalog() ([]models.Item, error) {
	var items []models.Item
	ok, err := f.read(f.CatalogPath, &items)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Missing or corrupt file: start empty and write a fresh snapshot.
		items = []models.Item{}
		if err := f.SaveCatalog(items); err != nil {
			return nil, err
		}
	}
	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}

func (f *FileBackend) SaveCatalog(items []models.Item) error {
	return f.save(f.CatalogPath, items)
}

func (f *FileBackend) LoadAccounts() (map[string]*models.Account, error) {
	accounts := map[string]*models.Account{}
	ok, err := f.read(f.AccountsPath, &accounts)
	if err != nil {
		return nil, err
	}
	if !ok {
		accounts = map[string]*models.Account{}
		if err := f.SaveAccounts(accounts); err != nil {
			return nil, err
		}
	}
	for name, a := range accounts {
		if a == nil {
			delete(accounts, name)
			continue
		}
		if a.Cart == nil {
			a.Cart = []models.Item{}
		}
		if a.History == nil {
			a.History = []models.Item{}
		}
	}
	return accounts, nil
}

func (f *FileBackend) SaveAccounts(accounts map[string]*models.Account) error {
	return f.save(f.AccountsPath, accounts)
}

// read decodes path into v. ok is false when the file is absent or not
// parseable; both self-heal to an empty store at the caller and anything a
// failed decode left in v must be discarded. Any other I/O failure is
// returned as-is so the caller keeps its last consistent state.
func (f *FileBackend) read(path string, v interface{}) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, nil
	}
	return true, nil
}

func (f *FileBackend) save(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
