package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/xxxsen/namesplit/internal/config"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

var (
	defaultDB     *sql.DB
	defaultDriver string
)

const (
	createTableSQLite = `
CREATE TABLE IF NOT EXISTS name_record_tab (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	raw_name VARCHAR(256) NOT NULL,
	academic_title VARCHAR(64) NOT NULL DEFAULT '',
	leading_initial VARCHAR(16) NOT NULL DEFAULT '',
	first_name VARCHAR(128) NOT NULL DEFAULT '',
	middle_name VARCHAR(128) NOT NULL DEFAULT '',
	nickname VARCHAR(128) NOT NULL DEFAULT '',
	last_name VARCHAR(128) NOT NULL DEFAULT '',
	suffix VARCHAR(64) NOT NULL DEFAULT '',
	sort_key VARCHAR(256) NOT NULL DEFAULT '',
	parse_state VARCHAR(16) NOT NULL DEFAULT 'pending',
	parse_error VARCHAR(512) NOT NULL DEFAULT '',
	create_time BIGINT NOT NULL,
	update_time BIGINT NOT NULL
);`

	createTablePostgres = `
CREATE TABLE IF NOT EXISTS name_record_tab (
	id BIGSERIAL PRIMARY KEY,
	raw_name VARCHAR(256) NOT NULL,
	academic_title VARCHAR(64) NOT NULL DEFAULT '',
	leading_initial VARCHAR(16) NOT NULL DEFAULT '',
	first_name VARCHAR(128) NOT NULL DEFAULT '',
	middle_name VARCHAR(128) NOT NULL DEFAULT '',
	nickname VARCHAR(128) NOT NULL DEFAULT '',
	last_name VARCHAR(128) NOT NULL DEFAULT '',
	suffix VARCHAR(64) NOT NULL DEFAULT '',
	sort_key VARCHAR(256) NOT NULL DEFAULT '',
	parse_state VARCHAR(16) NOT NULL DEFAULT 'pending',
	parse_error VARCHAR(512) NOT NULL DEFAULT '',
	create_time BIGINT NOT NULL,
	update_time BIGINT NOT NULL
);`

	createIndexSQL = `
CREATE UNIQUE INDEX IF NOT EXISTS idx_name_record_tab_raw
ON name_record_tab(raw_name);`
)

// Open connects to the configured SQL backend and verifies the connection.
func Open(cfg config.DBConfig) (*sql.DB, error) {
	handle, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", cfg.Driver, err)
	}
	if err := handle.Ping(); err != nil {
		handle.Close()
		return nil, fmt.Errorf("ping database %s: %w", cfg.Driver, err)
	}
	return handle, nil
}

// SetDefault assigns the global database instance and its driver name.
func SetDefault(handle *sql.DB, driver string) {
	defaultDB = handle
	defaultDriver = driver
}

// Default returns the configured global database instance.
func Default() *sql.DB {
	return defaultDB
}

// Driver returns the driver name of the global database instance.
func Driver() string {
	return defaultDriver
}

// EnsureSchema initialises required tables and indexes.
func EnsureSchema(ctx context.Context, handle *sql.DB, driver string) error {
	createTable := createTableSQLite
	if driver == "postgres" {
		createTable = createTablePostgres
	}
	if _, err := handle.ExecContext(ctx, createTable); err != nil {
		return err
	}
	if _, err := handle.ExecContext(ctx, createIndexSQL); err != nil {
		return err
	}
	return nil
}

// rebind converts ?-style placeholders to the $n form postgres expects. The
// sqlite driver takes ? as-is.
func rebind(driver, query string) string {
	if driver != "postgres" {
		return query
	}
	var sb strings.Builder
	sb.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			fmt.Fprintf(&sb, "$%d", n)
			continue
		}
		sb.WriteByte(query[i])
	}
	return sb.String()
}
