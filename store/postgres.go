package store

import (
	"database/sql"
	"encoding/json"
	"sort"

	_ "github.com/lib/pq"

	models "shop-management/model"
)

// PostgresBackend keeps the same wholesale load/save contract as the file
// backend: every save rewrites the store's tables inside one transaction, so
// a snapshot on disk is always a complete store. Stored order is preserved
// through the position column.
type PostgresBackend struct {
	DB *sql.DB
}

func NewPostgresBackend(dsn string) (*PostgresBackend, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return &PostgresBackend{DB: db}, nil
}

func (p *PostgresBackend) Close() error { return p.DB.Close() }

func (p *PostgresBackend) LoadCatalog() ([]models.Item, error) {
	rows, err := p.DB.Query(`SELECT name, price, quantity, purchase_date FROM items ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var it models.Item
		var purchased sql.NullTime
		if err := rows.Scan(&it.Name, &it.Price, &it.Quantity, &purchased); err != nil {
			return nil, err
		}
		if purchased.Valid {
			t := purchased.Time
			it.PurchaseDate = &t
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (p *PostgresBackend) SaveCatalog(items []models.Item) error {
	tx, err := p.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM items`); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO items (position, name, price, quantity, purchase_date) VALUES ($1,$2,$3,$4,$5)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, it := range items {
		var purchased interface{}
		if it.PurchaseDate != nil {
			purchased = *it.PurchaseDate
		}
		if _, err := stmt.Exec(i, it.Name, it.Price, it.Quantity, purchased); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (p *PostgresBackend) LoadAccounts() (map[string]*models.Account, error) {
	rows, err := p.DB.Query(`SELECT username, password, role, cart, history FROM accounts`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := map[string]*models.Account{}
	for rows.Next() {
		var a models.Account
		var role string
		var cart, history []byte
		if err := rows.Scan(&a.Username, &a.Password, &role, &cart, &history); err != nil {
			return nil, err
		}
		a.Role = models.Role(role)
		if err := json.Unmarshal(cart, &a.Cart); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(history, &a.History); err != nil {
			return nil, err
		}
		if a.Cart == nil {
			a.Cart = []models.Item{}
		}
		if a.History == nil {
			a.History = []models.Item{}
		}
		accounts[a.Username] = &a
	}
	return accounts, rows.Err()
}

func (p *PostgresBackend) SaveAccounts(accounts map[string]*models.Account) error {
	// Deterministic write order keeps snapshots reproducible.
	names := make([]string, 0, len(accounts))
	for name := range accounts {
		names = append(names, name)
	}
	sort.Strings(names)

	tx, err := p.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM accounts`); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO accounts (username, password, role, cart, history) VALUES ($1,$2,$3,$4,$5)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, name := range names {
		a := accounts[name]
		cart, err := json.Marshal(a.Cart)
		if err != nil {
			return err
		}
		history, err := json.Marshal(a.History)
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(a.Username, a.Password, string(a.Role), cart, history); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// compile-time interface checks
var (
	_ Backend = (*PostgresBackend)(nil)
	_ Backend = (*FileBackend)(nil)
)
