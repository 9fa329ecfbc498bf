package repository

import (
	"database/sql"
	"fmt"

	"github.com/kaidroger/logistics-analytics-go/internal/models"
)

// DestinationRepository handles database operations for destinations
type DestinationRepository struct {
	db *sql.DB
}

// NewDestinationRepository creates a new destination repository
func NewDestinationRepository(db *sql.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

const destinationColumns = `id, hub_id, name, address, province_name, district_name, ward_name,
	carrier_type, orders_per_month, lat, lng`

// GetByHub retrieves all destinations served by one hub, ordered by ID
func (r *DestinationRepository) GetByHub(hubID int64) ([]models.Destination, error) {
	query := fmt.Sprintf(`SELECT %s FROM destinations WHERE hub_id = ? ORDER BY id`, destinationColumns)
	rows, err := r.db.Query(query, hubID)
	if err != nil {
		return nil, fmt.Errorf("failed to query destinations: %w", err)
	}
	defer rows.Close()

	var dests []models.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, err
		}
		dests = append(dests, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate destinations: %w", err)
	}

	return dests, nil
}

// Count returns the number of stored destinations
func (r *DestinationRepository) Count() (int64, error) {
	var n int64
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM destinations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count destinations: %w", err)
	}
	return n, nil
}

// Seed inserts destinations inside one transaction. Used at startup when
// the destinations table is empty.
func (r *DestinationRepository) Seed(dests []models.Destination) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin destination seed: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO destinations
		(id, hub_id, name, address, province_name, district_name, ward_name, carrier_type, orders_per_month, lat, lng)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare destination insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range dests {
		var lat, lng interface{}
		if d.Location != nil {
			lat, lng = d.Location.Latitude, d.Location.Longitude
		}
		if _, err := stmt.Exec(d.ID, d.HubID, d.Name, d.Address,
			d.ProvinceName, d.DistrictName, d.WardName,
			string(d.CarrierType), d.OrdersPerMonth, lat, lng); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert destination %d: %w", d.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit destination seed: %w", err)
	}
	return nil
}

// scanDestination reads one destination row, mapping NULL coordinates to a
// nil Location
func scanDestination(rows *sql.Rows) (models.Destination, error) {
	var d models.Destination
	var carrier string
	var lat, lng sql.NullFloat64

	if err := rows.Scan(&d.ID, &d.HubID, &d.Name, &d.Address,
		&d.ProvinceName, &d.DistrictName, &d.WardName,
		&carrier, &d.OrdersPerMonth, &lat, &lng); err != nil {
		return models.Destination{}, fmt.Errorf("failed to scan destination: %w", err)
	}

	d.CarrierType = models.CarrierType(carrier)
	if lat.Valid && lng.Valid {
		d.Location = &models.GeoPoint{Latitude: lat.Float64, Longitude: lng.Float64}
	}

	return d, nil
}
