package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	// Importa el driver SQLite puro Go
	_ "modernc.org/sqlite"
)

const defaultDBPath = "db/semilleros.db"

// Store is the storage handle the repositories operate on. It owns the
// underlying connection pool for a single SQLite database file.
type Store struct {
	db *sql.DB
}

// InitDB initializes the database named by the SEMILLEROS_DB
// environment variable (db/semilleros.db when unset).
func InitDB() (*Store, error) {
	path := os.Getenv("SEMILLEROS_DB")
	if path == "" {
		path = defaultDBPath
	}
	return Open(path)
}

// Open opens (creating it if needed) the SQLite database at path and
// makes sure the schema is in place.
func Open(path string) (*Store, error) {
	log.Print("initializing sqlite database connection...")

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// Las claves foráneas se activan para cada conexión vía DSN
	dsn := "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	// Single-operator tool: one writer connection is all we need.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createStructure(); err != nil {
		db.Close()
		return nil, err
	}
	s.verifyStructure()

	log.Printf("SQLite database ready at %s", path)
	return s, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
