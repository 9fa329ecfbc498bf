package service

import (
	"log"

	"github.com/kaidroger/logistics-analytics-go/internal/aggregate"
	"github.com/kaidroger/logistics-analytics-go/internal/boundary"
	"github.com/kaidroger/logistics-analytics-go/internal/distfilter"
	"github.com/kaidroger/logistics-analytics-go/internal/geomath"
	"github.com/kaidroger/logistics-analytics-go/internal/metrics"
	"github.com/kaidroger/logistics-analytics-go/internal/models"
	"github.com/kaidroger/logistics-analytics-go/internal/repository"
	"github.com/kaidroger/logistics-analytics-go/pkg/events"
)

// TerritoryService derives the territory view and destination filtering for
// a hub. Boundary features are loaded once at startup and shared read-only
// across requests.
type TerritoryService struct {
	hubs     *repository.HubRepository
	dests    *repository.DestinationRepository
	features []boundary.DistrictFeature
	bus      *events.Bus
}

// NewTerritoryService creates a new territory service
func NewTerritoryService(hubs *repository.HubRepository, dests *repository.DestinationRepository,
	features []boundary.DistrictFeature, bus *events.Bus) *TerritoryService {
	return &TerritoryService{hubs: hubs, dests: dests, features: features, bus: bus}
}

// ComputeTerritory builds the full territory view for one hub: per-district
// coverage, matched boundary polygons, a circle fallback when no boundary
// matches, and the compass-sector breakdown of destinations around the hub.
// Returns nil when the hub does not exist.
func (s *TerritoryService) ComputeTerritory(hubID int64) (*models.Territory, error) {
	hub, err := s.hubs.GetHubByID(hubID)
	if err != nil {
		return nil, err
	}
	if hub == nil {
		return nil, nil
	}

	dests, err := s.dests.GetByHub(hubID)
	if err != nil {
		return nil, err
	}

	coverage := aggregate.CoverageByDistrict(dests)
	matched, unmatched := boundary.MatchDistricts(s.features, coverage)
	if len(unmatched) > 0 {
		metrics.UnmatchedDistrictsTotal.Add(float64(len(unmatched)))
		log.Printf("Territory for hub %d: %d districts without boundary match", hubID, len(unmatched))
	}

	territory := &models.Territory{
		Hub:                *hub,
		Districts:          matched,
		UnmatchedDistricts: unmatched,
		Sectors:            sectorBreakdown(hub.Location, dests),
		Coverage:           coverage,
	}

	// No matched boundary polygon: fall back to a circle sized by how far
	// the hub's located destinations spread
	if len(matched) == 0 {
		if radius := spreadRadiusKm(hub.Location, dests); radius > 0 {
			ring, area := boundary.FallbackTerritory(hub.Location, radius)
			territory.FallbackRing = ring
			territory.FallbackAreaKm2 = area
			territory.FallbackRadiusKm = radius
		}
	}

	s.bus.Publish(events.TopicHubSelected, events.HubSelected{HubID: hubID})

	return territory, nil
}

// FilterDestinations returns the hub's destinations that pass the filter,
// each annotated with its distance from the hub. Returns nil destinations
// and found=false when the hub does not exist.
func (s *TerritoryService) FilterDestinations(hubID int64, filter models.DestinationFilter) ([]distfilter.AnnotatedDestination, bool, error) {
	hub, err := s.hubs.GetHubByID(hubID)
	if err != nil {
		return nil, false, err
	}
	if hub == nil {
		return nil, false, nil
	}

	dests, err := s.dests.GetByHub(hubID)
	if err != nil {
		return nil, false, err
	}

	return distfilter.Apply(hub.Location, dests, filter), true, nil
}

// FilterSummary explains, for one hub and filter, how many destinations
// match and why the rest were excluded
func (s *TerritoryService) FilterSummary(hubID int64, opts distfilter.Options) (*distfilter.Summary, error) {
	hub, err := s.hubs.GetHubByID(hubID)
	if err != nil {
		return nil, err
	}
	if hub == nil {
		return nil, nil
	}

	dests, err := s.dests.GetByHub(hubID)
	if err != nil {
		return nil, err
	}

	summary := distfilter.Summarize(hub.Location, dests, opts)
	return &summary, nil
}

// sectorBreakdown buckets the hub's located destinations into the eight
// compass sectors, keeping every sector in the output in clockwise order
func sectorBreakdown(origin models.GeoPoint, dests []models.Destination) []models.SectorCount {
	names := geomath.SectorNames()
	index := make(map[string]int, len(names))
	sectors := make([]models.SectorCount, len(names))
	for i, name := range names {
		index[name] = i
		sectors[i] = models.SectorCount{Sector: name}
	}

	for _, d := range dests {
		if !d.HasLocation() {
			continue
		}
		sector := geomath.CompassSector(geomath.Bearing(origin, *d.Location))
		i := index[sector]
		sectors[i].Count++
		sectors[i].TotalOrders += d.OrdersPerMonth
	}

	return sectors
}

// spreadRadiusKm is the fallback circle radius: the farthest located
// destination from the hub. 0 when no destination has coordinates.
func spreadRadiusKm(origin models.GeoPoint, dests []models.Destination) float64 {
	points := make([]models.GeoPoint, 0, len(dests))
	for _, d := range dests {
		if d.HasLocation() {
			points = append(points, *d.Location)
		}
	}
	return geomath.MaxDistanceKm(origin, points)
}
