package models

// SectorCount is one bucket of the 8-way compass breakdown of a hub's
// destinations (N, NE, E, SE, S, SW, W, NW)
type SectorCount struct {
	Sector      string `json:"sector"`
	Count       int    `json:"count"`
	TotalOrders int    `json:"total_orders"`
}

// MatchedDistrict is a boundary feature matched to one of the hub's
// districts, annotated with coverage stats and a stable display color
type MatchedDistrict struct {
	DistrictName string     `json:"district_name"`
	BoundaryName string     `json:"boundary_name"`
	Ring         []GeoPoint `json:"ring"`
	AreaKm2      float64    `json:"area_km2"`
	Color        string     `json:"color"`
	Count        int        `json:"count"`
	TotalOrders  int        `json:"total_orders"`
}

// Territory is the derived territory view for one hub: matched district
// boundaries where the boundary file has them, a circle fallback where it
// does not, plus coverage diagnostics.
type Territory struct {
	Hub                Hub               `json:"hub"`
	Districts          []MatchedDistrict `json:"districts"`
	UnmatchedDistricts []string          `json:"unmatched_districts"`
	FallbackRing       []GeoPoint        `json:"fallback_ring,omitempty"`
	FallbackAreaKm2    float64           `json:"fallback_area_km2,omitempty"`
	FallbackRadiusKm   float64           `json:"fallback_radius_km,omitempty"`
	Sectors            []SectorCount     `json:"sectors"`
	Coverage           CoverageReport    `json:"coverage"`
}
