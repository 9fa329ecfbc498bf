// Package distfilter classifies destinations against a hub-centric
// carrier/distance filter and explains exclusions. Stateless: every call is
// a pure function over immutable inputs, re-run whenever a filter changes.
package distfilter

import (
	"strings"

	"github.com/kaidroger/logistics-analytics-go/internal/geomath"
	"github.com/kaidroger/logistics-analytics-go/internal/models"
)

// Options are the classification criteria. Zero values mean "not set":
// an unset carrier matches every carrier, an unset distance bound matches
// every destination including those without coordinates.
type Options struct {
	CarrierType   models.CarrierType
	MaxDistanceKm float64
}

// Classification is the per-destination verdict. DistanceKm is nil when the
// destination has no usable coordinates; such a destination cannot satisfy
// a distance bound.
type Classification struct {
	DistanceKm      *float64 `json:"distance_km"`
	MatchesCarrier  bool     `json:"matches_carrier"`
	MatchesDistance bool     `json:"matches_distance"`
	MatchesFilter   bool     `json:"matches_filter"`
}

// Classify evaluates one destination against the filter
func Classify(origin models.GeoPoint, d models.Destination, opts Options) Classification {
	c := Classification{
		MatchesCarrier: opts.CarrierType == "" || d.CarrierType == opts.CarrierType,
	}

	if d.HasLocation() {
		dist := geomath.DistanceKm(origin, *d.Location)
		c.DistanceKm = &dist
	}

	switch {
	case opts.MaxDistanceKm <= 0:
		c.MatchesDistance = true
	case c.DistanceKm == nil:
		c.MatchesDistance = false
	default:
		c.MatchesDistance = *c.DistanceKm <= opts.MaxDistanceKm
	}

	c.MatchesFilter = c.MatchesCarrier && c.MatchesDistance
	return c
}

// Summary is the four-way exclusion breakdown shown to the end user. The
// exclusion buckets are mutually exclusive and sum with MatchingCount to
// TotalCount.
type Summary struct {
	TotalCount             int `json:"total_count"`
	MatchingCount          int `json:"matching_count"`
	ExcludedByCarrierOnly  int `json:"excluded_by_carrier_only"`
	ExcludedByDistanceOnly int `json:"excluded_by_distance_only"`
	ExcludedByBoth         int `json:"excluded_by_both"`
}

// Summarize classifies every candidate and tallies why non-matching ones
// were excluded
func Summarize(origin models.GeoPoint, candidates []models.Destination, opts Options) Summary {
	s := Summary{TotalCount: len(candidates)}

	for _, d := range candidates {
		c := Classify(origin, d, opts)
		switch {
		case c.MatchesFilter:
			s.MatchingCount++
		case !c.MatchesCarrier && !c.MatchesDistance:
			s.ExcludedByBoth++
		case !c.MatchesCarrier:
			s.ExcludedByCarrierOnly++
		default:
			s.ExcludedByDistanceOnly++
		}
	}

	return s
}

// AnnotatedDestination pairs a destination with its classification for the
// rendering layer
type AnnotatedDestination struct {
	models.Destination
	Classification Classification `json:"classification"`
}

// Apply runs the full destination filter: the name substring predicates and
// order-volume bounds from the sidebar plus the carrier/distance
// classification. Only destinations passing every set predicate are
// returned, each annotated with its distance from the origin.
func Apply(origin models.GeoPoint, candidates []models.Destination, filter models.DestinationFilter) []AnnotatedDestination {
	opts := Options{CarrierType: filter.CarrierType, MaxDistanceKm: filter.MaxDistanceKm}

	out := make([]AnnotatedDestination, 0, len(candidates))
	for _, d := range candidates {
		if !matchesName(d.ProvinceName, filter.Province) ||
			!matchesName(d.DistrictName, filter.District) ||
			!matchesName(d.WardName, filter.Ward) {
			continue
		}
		if filter.MinOrders != nil && d.OrdersPerMonth < *filter.MinOrders {
			continue
		}
		if filter.MaxOrders != nil && d.OrdersPerMonth > *filter.MaxOrders {
			continue
		}

		c := Classify(origin, d, opts)
		if !c.MatchesFilter {
			continue
		}

		out = append(out, AnnotatedDestination{Destination: d, Classification: c})
	}

	return out
}

// matchesName is the case-insensitive substring predicate the sidebar
// filters use; an empty query matches everything
func matchesName(value, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(query))
}
