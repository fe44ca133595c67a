package main

// Single-session shop management: accounts, catalog, carts, checkout.
// State is loaded once at start and saved after every mutation, either to
// JSON files (default) or to Postgres when -dsn is set.

import (
	_ "embed"
	"flag"
	"log"
	"os"

	"shop-management/cli"
	"shop-management/service"
	"shop-management/store"
)

//go:embed migrations.sql
var migrationSQL string

func main() {
	dataDir := flag.String("data", ".", "directory holding products.json and users.json")
	dsn := flag.String("dsn", "", "Postgres DSN; when set, state lives in Postgres instead of JSON files")
	flag.Parse()

	var backend store.Backend
	if *dsn != "" {
		pg, err := store.NewPostgresBackend(*dsn)
		if err != nil {
			log.Fatalf("DB connection failed: %v", err)
		}
		defer pg.Close()

		if _, err := pg.DB.Exec(migrationSQL); err != nil {
			log.Fatalf("Failed running migrations: %v", err)
		}
		backend = pg
	} else {
		backend = store.NewFileBackend(*dataDir)
	}

	catalog := store.NewCatalogStore(backend)
	accounts := store.NewAccountStore(backend)

	// Load failures are reported, not fatal: the stores keep their last
	// consistent (initially empty) state and the session continues.
	if err := catalog.Load(); err != nil {
		log.Printf("loading catalog: %v", err)
	}
	if err := accounts.Load(); err != nil {
		log.Printf("loading accounts: %v", err)
	}

	svc := service.NewService(catalog, accounts)
	var serviceInterface service.ServiceInterface = svc

	m := cli.NewMenu(serviceInterface, os.Stdin, os.Stdout)
	m.Run()
}
