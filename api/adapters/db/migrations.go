package db

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed migrations/postgres/01_create_time_entry.up.sql
var createTimeEntryPostgres string

//go:embed migrations/sqlite/01_create_time_entry.up.sql
var createTimeEntrySQLite string

// Migrate creates the time_entry table and its index if they are missing.
func (db *DB) Migrate() error {
	db.log.Debug("running time_entry migrations", "dialect", db.dialect)

	ddl := createTimeEntryPostgres
	if db.dialect == dialectSQLite {
		ddl = createTimeEntrySQLite
	}

	for _, stmt := range strings.Split(ddl, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.conn.Exec(stmt); err != nil {
			return fmt.Errorf("apply time_entry migration: %w", err)
		}
	}

	db.log.Debug("time_entry migrations finished")
	return nil
}
