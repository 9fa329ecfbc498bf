package models

// GeoPoint represents a WGS84 coordinate pair
type GeoPoint struct {
	Latitude  float64 `json:"lat" db:"lat"`
	Longitude float64 `json:"lng" db:"lng"`
}

// InBounds reports whether the point lies inside the valid WGS84 range
func (p GeoPoint) InBounds() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

// Hub represents a logistics hub (warehouse) loaded at startup.
// Identity is ID; records are never mutated after load.
type Hub struct {
	ID           int64    `json:"id" db:"id"`
	Name         string   `json:"name" db:"name"`
	ProvinceName string   `json:"province_name" db:"province_name"`
	Location     GeoPoint `json:"location"`
	Address      string   `json:"address,omitempty" db:"address"`
}

// CarrierType is the delivery-provider category of a destination
type CarrierType string

const (
	Carrier1PL CarrierType = "1PL"
	Carrier2PL CarrierType = "2PL"
	Carrier3PL CarrierType = "3PL"
)

// Destination represents a delivery destination served by a hub.
// Location is nil when the source row had no usable coordinates; such
// destinations stay in non-geo aggregates but are excluded from any
// distance computation.
type Destination struct {
	ID             int64       `json:"id" db:"id"`
	HubID          int64       `json:"hub_id" db:"hub_id"`
	Name           string      `json:"name" db:"name"`
	Address        string      `json:"address" db:"address"`
	ProvinceName   string      `json:"province_name" db:"province_name"`
	DistrictName   string      `json:"district_name" db:"district_name"`
	WardName       string      `json:"ward_name" db:"ward_name"`
	CarrierType    CarrierType `json:"carrier_type" db:"carrier_type"`
	OrdersPerMonth int         `json:"orders_per_month" db:"orders_per_month"`
	Location       *GeoPoint   `json:"location,omitempty"`
}

// HasLocation reports whether the destination carries usable coordinates.
// The check is explicit nil + range, not zero-value coercion: a legitimate
// equatorial or prime-meridian coordinate must not read as missing.
func (d *Destination) HasLocation() bool {
	return d.Location != nil && d.Location.InBounds()
}

// DistrictBoundary is an administrative district polygon sourced from a
// GeoJSON boundary file. The ring is closed (first point repeated last).
type DistrictBoundary struct {
	Name string     `json:"name"`
	Ring []GeoPoint `json:"ring"`
}
