package repository

import (
	"database/sql"
	"fmt"

	"github.com/kaidroger/logistics-analytics-go/internal/models"
)

// DatasetRepository handles database operations for datasets and their
// order rows
type DatasetRepository struct {
	db *sql.DB
}

// NewDatasetRepository creates a new dataset repository
func NewDatasetRepository(db *sql.DB) *DatasetRepository {
	return &DatasetRepository{db: db}
}

// CreateDataset stores a dataset header and its order rows inside one
// transaction. A failed row insert rolls back the whole ingest.
func (r *DatasetRepository) CreateDataset(ds models.Dataset, rows []models.OrderRecord) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin dataset ingest: %w", err)
	}

	if _, err := tx.Exec(`INSERT INTO datasets (id, name, row_count, month) VALUES (?, ?, ?, ?)`,
		ds.ID, ds.Name, ds.RowCount, ds.Month); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to insert dataset: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO order_records
		(dataset_id, fc_code, customer_id, total_packages, delivery_amount,
		 province_name, district_name, ward_name, no_bins, order_created_ts, carrier_delivered_ts)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare order insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		if _, err := stmt.Exec(ds.ID, row.FCCode, row.CustomerID,
			row.TotalPackages, row.DeliveryAmount,
			row.ProvinceName, row.DistrictName, row.WardName,
			row.NoBins, row.OrderCreatedTS, row.CarrierDeliveredTS); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert order row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dataset ingest: %w", err)
	}
	return nil
}

// ListDatasets retrieves all dataset headers, newest first
func (r *DatasetRepository) ListDatasets() ([]models.Dataset, error) {
	rows, err := r.db.Query(`SELECT id, name, row_count, month, created_at FROM datasets ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query datasets: %w", err)
	}
	defer rows.Close()

	var out []models.Dataset
	for rows.Next() {
		var ds models.Dataset
		if err := rows.Scan(&ds.ID, &ds.Name, &ds.RowCount, &ds.Month, &ds.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan dataset: %w", err)
		}
		out = append(out, ds)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate datasets: %w", err)
	}

	return out, nil
}

// GetDataset retrieves one dataset header. Returns nil when not found.
func (r *DatasetRepository) GetDataset(id string) (*models.Dataset, error) {
	var ds models.Dataset
	err := r.db.QueryRow(`SELECT id, name, row_count, month, created_at FROM datasets WHERE id = ?`, id).
		Scan(&ds.ID, &ds.Name, &ds.RowCount, &ds.Month, &ds.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dataset: %w", err)
	}

	return &ds, nil
}

// DeleteDataset removes a dataset; its order rows follow via ON DELETE
// CASCADE. Reports whether a dataset was actually deleted.
func (r *DatasetRepository) DeleteDataset(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM datasets WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete dataset: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return n > 0, nil
}

// GetOrderRows retrieves every order row of a dataset in insertion order
func (r *DatasetRepository) GetOrderRows(datasetID string) ([]models.OrderRecord, error) {
	rows, err := r.db.Query(`SELECT fc_code, customer_id, total_packages, delivery_amount,
		province_name, district_name, ward_name, no_bins, order_created_ts, carrier_delivered_ts
		FROM order_records WHERE dataset_id = ? ORDER BY id`, datasetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order rows: %w", err)
	}
	defer rows.Close()

	var out []models.OrderRecord
	for rows.Next() {
		var rec models.OrderRecord
		var customerID sql.NullInt64
		var noBins sql.NullFloat64

		if err := rows.Scan(&rec.FCCode, &customerID, &rec.TotalPackages, &rec.DeliveryAmount,
			&rec.ProvinceName, &rec.DistrictName, &rec.WardName,
			&noBins, &rec.OrderCreatedTS, &rec.CarrierDeliveredTS); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}

		if customerID.Valid {
			rec.CustomerID = &customerID.Int64
		}
		if noBins.Valid {
			rec.NoBins = &noBins.Float64
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order rows: %w", err)
	}

	return out, nil
}
