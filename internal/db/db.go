// internal/db/db.go
package db

import (
    "database/sql"
    "errors"
    "log"
    "os"

    "github.com/lib/pq"
    "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

// Per-driver DDL for the single customers table. Created idempotently at
// startup; email uniqueness lives here so concurrent writers race on the
// constraint, not on an application-level existence check.
const schemaSQLite = `
    CREATE TABLE IF NOT EXISTS customers (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        name TEXT NOT NULL,
        email TEXT NOT NULL UNIQUE,
        phone TEXT,
        status TEXT NOT NULL DEFAULT 'active',
        notes TEXT
    )
`

const schemaPostgres = `
    CREATE TABLE IF NOT EXISTS customers (
        id SERIAL PRIMARY KEY,
        name VARCHAR(200) NOT NULL,
        email VARCHAR(320) NOT NULL UNIQUE,
        phone VARCHAR(50),
        status VARCHAR(50) NOT NULL DEFAULT 'active',
        notes VARCHAR(500)
    )
`

// Init picks the storage engine from the environment and opens the shared
// connection pool. DATABASE_URL selects PostgreSQL; otherwise DB_PATH (default
// data.db) selects a SQLite file.
func Init() {
    driver, dsn := driverFromEnv()

    log.Println("DB driver:", driver)

    var err error
    DB, err = Open(driver, dsn)
    if err != nil {
        log.Fatalf("failed to open DB: %v", err)
    }

    log.Println("✅ Connected to database")
}

func driverFromEnv() (driver, dsn string) {
    if url := os.Getenv("DATABASE_URL"); url != "" {
        return "postgres", url
    }
    path := os.Getenv("DB_PATH")
    if path == "" {
        path = "data.db"
    }
    return "sqlite3", path
}

// Open connects, pings, and ensures the customers table exists.
func Open(driver, dsn string) (*sql.DB, error) {
    conn, err := sql.Open(driver, dsn)
    if err != nil {
        return nil, err
    }
    if err := conn.Ping(); err != nil {
        conn.Close()
        return nil, err
    }

    schema := schemaSQLite
    if driver == "postgres" {
        schema = schemaPostgres
    }
    if _, err := conn.Exec(schema); err != nil {
        conn.Close()
        return nil, err
    }
    return conn, nil
}

// IsUniqueViolation reports whether err is a unique-constraint violation from
// either supported driver (pq SQLSTATE 23505, sqlite extended code 2067).
func IsUniqueViolation(err error) bool {
    var pqErr *pq.Error
    if errors.As(err, &pqErr) {
        return pqErr.Code == "23505"
    }
    var sqErr sqlite3.Error
    if errors.As(err, &sqErr) {
        return sqErr.ExtendedCode == sqlite3.ErrConstraintUnique
    }
    return false
}
