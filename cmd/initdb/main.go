package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/yourusername/blogr/config"
)

// initdb clears the existing data and creates fresh tables from the
// migration files. Intended for initialization and testing only.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	if err := reset(cfg.PostgresDSN(), cfg.MigrationsDir); err != nil {
		log.Fatalf("initdb failed: %v", err)
	}
	fmt.Println("Initialized the database.")
}

func reset(dsn, migrationsDir string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	m, err := newMigrator(db, migrationsDir)
	if err != nil {
		return err
	}
	if err := m.Drop(); err != nil {
		return err
	}

	// Drop removes the migration bookkeeping table too, so start over with a
	// fresh instance before applying the schema.
	m, err = newMigrator(db, migrationsDir)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func newMigrator(db *sql.DB, migrationsDir string) (*migrate.Migrate, error) {
	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{})
	if err != nil {
		return nil, err
	}
	return migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsDir), "postgres", driver)
}
