package repository

import (
	"database/sql"
	"fmt"

	"github.com/kaidroger/logistics-analytics-go/internal/models"
)

// HubRepository handles database operations for hubs
type HubRepository struct {
	db *sql.DB
}

// NewHubRepository creates a new hub repository
func NewHubRepository(db *sql.DB) *HubRepository {
	return &HubRepository{db: db}
}

// GetHubs retrieves all hubs ordered by ID
func (r *HubRepository) GetHubs() ([]models.Hub, error) {
	rows, err := r.db.Query(`SELECT id, name, province_name, address, lat, lng FROM hubs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query hubs: %w", err)
	}
	defer rows.Close()

	var hubs []models.Hub
	for rows.Next() {
		var h models.Hub
		if err := rows.Scan(&h.ID, &h.Name, &h.ProvinceName, &h.Address,
			&h.Location.Latitude, &h.Location.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan hub: %w", err)
		}
		hubs = append(hubs, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate hubs: %w", err)
	}

	return hubs, nil
}

// GetHubByID retrieves a single hub by ID. Returns nil when not found.
func (r *HubRepository) GetHubByID(id int64) (*models.Hub, error) {
	var h models.Hub
	err := r.db.QueryRow(`SELECT id, name, province_name, address, lat, lng FROM hubs WHERE id = ?`, id).
		Scan(&h.ID, &h.Name, &h.ProvinceName, &h.Address,
			&h.Location.Latitude, &h.Location.Longitude)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hub: %w", err)
	}

	return &h, nil
}

// Count returns the number of stored hubs
func (r *HubRepository) Count() (int64, error) {
	var n int64
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM hubs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count hubs: %w", err)
	}
	return n, nil
}

// Seed inserts hubs inside one transaction. Used at startup when the hubs
// table is empty.
func (r *HubRepository) Seed(hubs []models.Hub) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin hub seed: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO hubs (id, name, province_name, address, lat, lng) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare hub insert: %w", err)
	}
	defer stmt.Close()

	for _, h := range hubs {
		if _, err := stmt.Exec(h.ID, h.Name, h.ProvinceName, h.Address,
			h.Location.Latitude, h.Location.Longitude); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert hub %d: %w", h.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit hub seed: %w", err)
	}
	return nil
}
