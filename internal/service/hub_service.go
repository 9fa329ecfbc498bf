package service

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/kaidroger/logistics-analytics-go/internal/models"
	"github.com/kaidroger/logistics-analytics-go/internal/repository"
)

// HubService handles business logic for hubs and their destinations
type HubService struct {
	hubs  *repository.HubRepository
	dests *repository.DestinationRepository
}

// NewHubService creates a new hub service
func NewHubService(hubs *repository.HubRepository, dests *repository.DestinationRepository) *HubService {
	return &HubService{hubs: hubs, dests: dests}
}

// GetHubs retrieves all hubs
func (s *HubService) GetHubs() ([]models.Hub, error) {
	return s.hubs.GetHubs()
}

// GetHubByID retrieves a single hub by ID
func (s *HubService) GetHubByID(id int64) (*models.Hub, error) {
	return s.hubs.GetHubByID(id)
}

// GetDestinations retrieves all destinations of one hub
func (s *HubService) GetDestinations(hubID int64) ([]models.Destination, error) {
	return s.dests.GetByHub(hubID)
}

// Seed-file row shapes. The seed files carry flat lat/lng columns; a
// destination row without both coordinates is stored with NULL location.
type seedHub struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	ProvinceName string  `json:"province_name"`
	Address      string  `json:"address"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
}

type seedDestination struct {
	ID             int64    `json:"id"`
	HubID          int64    `json:"hub_id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	ProvinceName   string   `json:"province_name"`
	DistrictName   string   `json:"district_name"`
	WardName       string   `json:"ward_name"`
	CarrierType    string   `json:"carrier_type"`
	OrdersPerMonth int      `json:"orders_per_month"`
	Lat            *float64 `json:"lat"`
	Lng            *float64 `json:"lng"`
}

// SeedFromFiles loads hubs and destinations from the configured JSON seed
// files when the tables are empty. A missing seed file is not an error; the
// server just starts with no hubs.
func (s *HubService) SeedFromFiles(hubsPath, destinationsPath string) error {
	n, err := s.hubs.Count()
	if err != nil {
		return err
	}
	if n == 0 {
		if err := s.seedHubs(hubsPath); err != nil {
			return err
		}
	}

	n, err = s.dests.Count()
	if err != nil {
		return err
	}
	if n == 0 {
		if err := s.seedDestinations(destinationsPath); err != nil {
			return err
		}
	}

	return nil
}

func (s *HubService) seedHubs(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Printf("Hub seed file %s not found, skipping", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read hub seed file: %w", err)
	}

	var raw []seedHub
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse hub seed file: %w", err)
	}

	hubs := make([]models.Hub, 0, len(raw))
	for _, h := range raw {
		hubs = append(hubs, models.Hub{
			ID:           h.ID,
			Name:         h.Name,
			ProvinceName: h.ProvinceName,
			Address:      h.Address,
			Location:     models.GeoPoint{Latitude: h.Lat, Longitude: h.Lng},
		})
	}

	if err := s.hubs.Seed(hubs); err != nil {
		return err
	}
	log.Printf("Seeded %d hubs from %s", len(hubs), path)
	return nil
}

func (s *HubService) seedDestinations(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Printf("Destination seed file %s not found, skipping", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read destination seed file: %w", err)
	}

	var raw []seedDestination
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse destination seed file: %w", err)
	}

	dests := make([]models.Destination, 0, len(raw))
	for _, d := range raw {
		dest := models.Destination{
			ID:             d.ID,
			HubID:          d.HubID,
			Name:           d.Name,
			Address:        d.Address,
			ProvinceName:   d.ProvinceName,
			DistrictName:   d.DistrictName,
			WardName:       d.WardName,
			CarrierType:    models.CarrierType(d.CarrierType),
			OrdersPerMonth: d.OrdersPerMonth,
		}
		if d.Lat != nil && d.Lng != nil {
			dest.Location = &models.GeoPoint{Latitude: *d.Lat, Longitude: *d.Lng}
		}
		dests = append(dests, dest)
	}

	if err := s.dests.Seed(dests); err != nil {
		return err
	}
	log.Printf("Seeded %d destinations from %s", len(dests), path)
	return nil
}
