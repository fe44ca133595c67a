package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	models "shop-management/model"
)

var errDeleteFailed = errors.New("delete failed")

func TestPostgresLoadCatalog(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()
	p := &PostgresBackend{DB: db}

	bought := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"name", "price", "quantity", "purchase_date"}).
		AddRow("tea", 3.5, 10, nil).
		AddRow("jam", 2.0, 0, bought)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT name, price, quantity, purchase_date FROM items ORDER BY position`)).
		WillReturnRows(rows)

	items, err := p.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if len(items) != 2 || items[0].Name != "tea" || items[0].Quantity != 10 {
		t.Fatalf("unexpected items: %+v", items)
	}
	if items[0].PurchaseDate != nil {
		t.Fatalf("catalog item should have no purchase date: %+v", items[0])
	}
	if items[1].PurchaseDate == nil || !items[1].PurchaseDate.Equal(bought) {
		t.Fatalf("unexpected purchase date: %+v", items[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresSaveCatalogRewritesWholesale(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	p := &PostgresBackend{DB: db}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM items`)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectPrepare(regexp.QuoteMeta(`INSERT INTO items (position, name, price, quantity, purchase_date) VALUES ($1,$2,$3,$4,$5)`))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO items (position, name, price, quantity, purchase_date) VALUES ($1,$2,$3,$4,$5)`)).
		WithArgs(0, "tea", 3.5, 10, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO items (position, name, price, quantity, purchase_date) VALUES ($1,$2,$3,$4,$5)`)).
		WithArgs(1, "jam", 2.0, 1, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	items := []models.Item{
		{Name: "tea", Price: 3.5, Quantity: 10},
		{Name: "jam", Price: 2.0, Quantity: 1},
	}
	if err := p.SaveCatalog(items); err != nil {
		t.Fatalf("SaveCatalog failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresLoadAccounts(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	p := &PostgresBackend{DB: db}

	rows := sqlmock.NewRows([]string{"username", "password", "role", "cart", "history"}).
		AddRow("alice", "secret", "user", []byte(`[{"name":"tea","price":3.5,"quantity":9,"purchase_date":null}]`), []byte(`[]`)).
		AddRow("bob", "hunter2", "admin", []byte(`[]`), []byte(`[]`))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT username, password, role, cart, history FROM accounts`)).
		WillReturnRows(rows)

	accounts, err := p.LoadAccounts()
	if err != nil {
		t.Fatalf("LoadAccounts failed: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	alice := accounts["alice"]
	if alice == nil || alice.Role != models.RoleShopper || len(alice.Cart) != 1 {
		t.Fatalf("unexpected alice: %+v", alice)
	}
	if alice.Cart[0].Name != "tea" || alice.Cart[0].Price != 3.5 {
		t.Fatalf("unexpected cart: %+v", alice.Cart)
	}
	bob := accounts["bob"]
	if bob == nil || !bob.IsOperator() || bob.Cart == nil || bob.History == nil {
		t.Fatalf("unexpected bob: %+v", bob)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresSaveAccountsWritesSortedAndWholesale(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	p := &PostgresBackend{DB: db}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM accounts`)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectPrepare(regexp.QuoteMeta(`INSERT INTO accounts (username, password, role, cart, history) VALUES ($1,$2,$3,$4,$5)`))
	// usernames are written in sorted order regardless of map iteration
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO accounts (username, password, role, cart, history) VALUES ($1,$2,$3,$4,$5)`)).
		WithArgs("alice", "secret", "user", []byte(`[]`), []byte(`[]`)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO accounts (username, password, role, cart, history) VALUES ($1,$2,$3,$4,$5)`)).
		WithArgs("bob", "hunter2", "admin", []byte(`[]`), []byte(`[]`)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	accounts := map[string]*models.Account{
		"bob":   models.NewAccount("bob", "hunter2", models.RoleOperator),
		"alice": models.NewAccount("alice", "secret", models.RoleShopper),
	}
	if err := p.SaveAccounts(accounts); err != nil {
		t.Fatalf("SaveAccounts failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresSaveCatalogRollsBackOnFailure(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	p := &PostgresBackend{DB: db}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM items`)).
		WillReturnError(errDeleteFailed)
	mock.ExpectRollback()

	err := p.SaveCatalog([]models.Item{{Name: "tea", Price: 3.5, Quantity: 1}})
	if err == nil {
		t.Fatalf("expected error from failed delete")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
