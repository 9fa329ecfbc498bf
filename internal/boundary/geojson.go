// Package boundary loads district boundary polygons from GeoJSON and
// reconciles them with the district names parsed out of destination
// addresses.
package boundary

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kaidroger/logistics-analytics-go/internal/models"
)

// DistrictFeature is one boundary-file feature reduced to what the
// matcher needs: the district label and the outer ring. Ring is nil for
// non-polygon geometries; such features still participate in name matching
// but report area 0.
type DistrictFeature struct {
	Name string
	Ring []models.GeoPoint
}

// Wire shapes of the boundary file. The district label lives in the NAME_2
// property (GADM level-2 convention).
type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Properties struct {
		Name2 string `json:"NAME_2"`
	} `json:"properties"`
	Geometry geometry `json:"geometry"`
}

type geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// ParseFeatureCollection decodes a GeoJSON FeatureCollection of district
// boundaries. Unnamed features are dropped; features with unsupported
// geometry kinds are kept with a nil ring so the caller still sees their
// names.
func ParseFeatureCollection(data []byte) ([]DistrictFeature, error) {
	var fc featureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to decode boundary file: %w", err)
	}

	features := make([]DistrictFeature, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f.Properties.Name2 == "" {
			continue
		}
		features = append(features, DistrictFeature{
			Name: f.Properties.Name2,
			Ring: outerRing(f.Geometry),
		})
	}

	return features, nil
}

// LoadFile reads and parses a boundary file from disk
func LoadFile(path string) ([]DistrictFeature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read boundary file: %w", err)
	}
	return ParseFeatureCollection(data)
}

// outerRing extracts the exterior ring of a Polygon, or of the first
// polygon of a MultiPolygon. GeoJSON positions are [lng, lat].
func outerRing(g geometry) []models.GeoPoint {
	switch g.Type {
	case "Polygon":
		var rings [][][]float64
		if err := json.Unmarshal(g.Coordinates, &rings); err != nil || len(rings) == 0 {
			return nil
		}
		return ringPoints(rings[0])
	case "MultiPolygon":
		var polys [][][][]float64
		if err := json.Unmarshal(g.Coordinates, &polys); err != nil || len(polys) == 0 || len(polys[0]) == 0 {
			return nil
		}
		return ringPoints(polys[0][0])
	default:
		return nil
	}
}

func ringPoints(positions [][]float64) []models.GeoPoint {
	ring := make([]models.GeoPoint, 0, len(positions))
	for _, pos := range positions {
		if len(pos) < 2 {
			continue
		}
		ring = append(ring, models.GeoPoint{Longitude: pos[0], Latitude: pos[1]})
	}
	return ring
}
