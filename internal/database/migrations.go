package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration is one versioned schema step
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Schema migrations, applied in order. Append only; never edit an applied
// migration.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_hubs",
		SQL: `
			CREATE TABLE IF NOT EXISTS hubs (
				id INTEGER PRIMARY KEY,
				name TEXT NOT NULL,
				province_name TEXT NOT NULL DEFAULT '',
				address TEXT NOT NULL DEFAULT '',
				lat REAL NOT NULL,
				lng REAL NOT NULL
			)`,
	},
	{
		Version: 2,
		Name:    "create_destinations",
		SQL: `
			CREATE TABLE IF NOT EXISTS destinations (
				id INTEGER PRIMARY KEY,
				hub_id INTEGER NOT NULL REFERENCES hubs(id),
				name TEXT NOT NULL DEFAULT '',
				address TEXT NOT NULL DEFAULT '',
				province_name TEXT NOT NULL DEFAULT '',
				district_name TEXT NOT NULL DEFAULT '',
				ward_name TEXT NOT NULL DEFAULT '',
				carrier_type TEXT NOT NULL DEFAULT '',
				orders_per_month INTEGER NOT NULL DEFAULT 0,
				lat REAL,
				lng REAL
			);
			CREATE INDEX IF NOT EXISTS idx_destinations_hub ON destinations(hub_id)`,
	},
	{
		Version: 3,
		Name:    "create_datasets",
		SQL: `
			CREATE TABLE IF NOT EXISTS datasets (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				row_count INTEGER NOT NULL DEFAULT 0,
				month TEXT NOT NULL DEFAULT 'Unknown',
				created_at TEXT NOT NULL DEFAULT (datetime('now'))
			)`,
	},
	{
		Version: 4,
		Name:    "create_order_records",
		SQL: `
			CREATE TABLE IF NOT EXISTS order_records (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				dataset_id TEXT NOT NULL REFERENCES datasets(id) ON DELETE CASCADE,
				fc_code TEXT NOT NULL,
				customer_id INTEGER,
				total_packages INTEGER NOT NULL DEFAULT 0,
				delivery_amount REAL NOT NULL DEFAULT 0,
				province_name TEXT NOT NULL DEFAULT '',
				district_name TEXT NOT NULL DEFAULT '',
				ward_name TEXT NOT NULL DEFAULT '',
				no_bins REAL,
				order_created_ts TEXT NOT NULL DEFAULT '',
				carrier_delivered_ts TEXT NOT NULL DEFAULT ''
			);
			CREATE INDEX IF NOT EXISTS idx_order_records_dataset ON order_records(dataset_id)`,
	},
}

// Migrate applies pending migrations, tracking progress in a migrations
// table
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied := map[int]bool{}
	rows, err := db.Query("SELECT version FROM migrations")
	if err != nil {
		return fmt.Errorf("failed to query migrations: %w", err)
	}
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[v] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate migrations: %w", err)
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
		}
		if _, err := tx.Exec(m.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}

		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}
