package db

import (
	"database/sql"
	"errors"
	"log"

	_ "github.com/mattn/go-sqlite3"
)

const dbDriver = "sqlite3"

// ErrNotFound is returned when a queried row does not exist.
var ErrNotFound = errors.New("record not found")

// DB is the global database connection pool.
var DB *sql.DB

// Init opens the SQLite database and creates tables if they don't exist.
func Init(dataSource string) error {
	var err error
	DB, err = sql.Open(dbDriver, dataSource)
	if err != nil {
		return err
	}

	// SQLite serializes writes anyway; a single connection also keeps
	// in-memory databases on one shared handle.
	DB.SetMaxOpenConns(1)

	// createTables is defined in migrate.go
	return createTables()
}

// MustInit is Init for main: any failure here is fatal.
func MustInit(dataSource string) {
	if err := Init(dataSource); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
}
