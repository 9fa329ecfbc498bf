package service

import (
	"time"

	"github.com/kaidroger/logistics-analytics-go/internal/aggregate"
	"github.com/kaidroger/logistics-analytics-go/internal/metrics"
	"github.com/kaidroger/logistics-analytics-go/internal/models"
	"github.com/kaidroger/logistics-analytics-go/internal/repository"
)

// AnalyticsService computes order analytics over a stored dataset. Reports
// are derived from scratch on every call; nothing is cached or mutated.
type AnalyticsService struct {
	repo *repository.DatasetRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(repo *repository.DatasetRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// Report computes the full order report for one dataset. Returns nil when
// the dataset does not exist.
func (s *AnalyticsService) Report(datasetID string) (*models.OrderReport, error) {
	rows, ok, err := s.loadRows(datasetID)
	if err != nil || !ok {
		return nil, err
	}

	start := time.Now()
	report := aggregate.ProcessOrders(rows)
	metrics.AggregationDurationMs.Observe(float64(time.Since(start).Milliseconds()))

	return report, nil
}

// RepeatCustomers computes the per-(FC, province) repeat-customer stats for
// one dataset. Returns nil when the dataset does not exist.
func (s *AnalyticsService) RepeatCustomers(datasetID string) ([]models.RepeatCustomerStat, error) {
	rows, ok, err := s.loadRows(datasetID)
	if err != nil || !ok {
		return nil, err
	}
	return aggregate.RepeatCustomerRates(rows), nil
}

func (s *AnalyticsService) loadRows(datasetID string) ([]models.OrderRecord, bool, error) {
	ds, err := s.repo.GetDataset(datasetID)
	if err != nil {
		return nil, false, err
	}
	if ds == nil {
		return nil, false, nil
	}

	rows, err := s.repo.GetOrderRows(datasetID)
	if err != nil {
		return nil, false, err
	}
	return rows, true, nil
}
