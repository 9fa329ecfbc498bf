// Package colors assigns stable display colors to district and commune
// names so a region keeps its color across recomputations and sessions.
package colors

import "fmt"

// HSL is a hue/saturation/lightness color as consumed by the map layer
type HSL struct {
	Hue        int `json:"hue"`
	Saturation int `json:"saturation"`
	Lightness  int `json:"lightness"`
}

// String renders the CSS hsl() form
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.Hue, c.Saturation, c.Lightness)
}

// District palette: slightly muted colors that read well over map tiles
const (
	saturation = 65
	lightness  = 55
)

// ForName derives a deterministic color from a name. The hash accumulates
// hash = code + ((hash << 5) - hash) over the name's character codes and
// the absolute value mod 360 picks the hue; saturation and lightness are
// fixed. No random seed, so the same name yields the same color in every
// session.
func ForName(name string) HSL {
	var hash int32
	for _, r := range name {
		hash = int32(r) + ((hash << 5) - hash)
	}

	hue := int(hash) % 360
	if hue < 0 {
		hue = -hue
	}

	return HSL{Hue: hue, Saturation: saturation, Lightness: lightness}
}
