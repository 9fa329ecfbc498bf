package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"

	"github.com/kaidroger/logistics-analytics-go/internal/aggregate"
	"github.com/kaidroger/logistics-analytics-go/internal/metrics"
	"github.com/kaidroger/logistics-analytics-go/internal/models"
	"github.com/kaidroger/logistics-analytics-go/internal/repository"
	"github.com/kaidroger/logistics-analytics-go/pkg/events"
)

// DatasetService handles the dataset lifecycle: ingest, list, delete
type DatasetService struct {
	repo *repository.DatasetRepository
	bus  *events.Bus
}

// NewDatasetService creates a new dataset service
func NewDatasetService(repo *repository.DatasetRepository, bus *events.Bus) *DatasetService {
	return &DatasetService{repo: repo, bus: bus}
}

// Ingest stores a named dataset of order rows. The month label is detected
// from the rows' timestamps. Publishes a DatasetLoaded event on success.
func (s *DatasetService) Ingest(name string, rows []models.OrderRecord) (*models.Dataset, error) {
	id, err := newDatasetID()
	if err != nil {
		return nil, err
	}

	ds := models.Dataset{
		ID:       id,
		Name:     name,
		RowCount: len(rows),
		Month:    aggregate.DetectMonth(rows),
	}

	if err := s.repo.CreateDataset(ds, rows); err != nil {
		return nil, err
	}

	metrics.DatasetsIngestedTotal.Inc()
	s.bus.Publish(events.TopicDatasetLoaded, events.DatasetLoaded{
		DatasetID: ds.ID,
		RowCount:  ds.RowCount,
	})
	log.Printf("Ingested dataset %s (%s): %d rows, month %s", ds.ID, ds.Name, ds.RowCount, ds.Month)

	return &ds, nil
}

// ListDatasets retrieves all dataset headers
func (s *DatasetService) ListDatasets() ([]models.Dataset, error) {
	return s.repo.ListDatasets()
}

// GetDataset retrieves one dataset header
func (s *DatasetService) GetDataset(id string) (*models.Dataset, error) {
	return s.repo.GetDataset(id)
}

// DeleteDataset removes a dataset and its rows
func (s *DatasetService) DeleteDataset(id string) (bool, error) {
	return s.repo.DeleteDataset(id)
}

func newDatasetID() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate dataset ID: %w", err)
	}
	return "ds_" + hex.EncodeToString(buf), nil
}
