package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// migrator applies migrations/<service> to that service's database:
//
//	migrator -storage-path user:pwd@localhost:5432/orders?sslmode=disable -migrations-path ./migrations/order
func main() {
	var storagePath, migrationsPath string
	var down bool

	flag.StringVar(&storagePath, "storage-path", "", "path to storage")
	flag.StringVar(&migrationsPath, "migrations-path", "", "path to migrations")
	flag.BoolVar(&down, "down", false, "roll back every migration")
	flag.Parse()

	if storagePath == "" {
		storagePath = os.Getenv("STORAGE_PATH")
		if storagePath == "" {
			panic("empty storage path")
		}
	}
	if migrationsPath == "" {
		migrationsPath = os.Getenv("MIGRATIONS_PATH")
		if migrationsPath == "" {
			panic("empty migrations path")
		}
	}

	m, err := migrate.New(
		"file://"+migrationsPath,
		fmt.Sprintf("postgres://%s", storagePath),
	)
	if err != nil {
		panic(err)
	}
	defer m.Close()

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		panic(err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		panic(err)
	}

	fmt.Printf("migrations applied: version=%d dirty=%t\n", version, dirty)
}
