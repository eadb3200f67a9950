package combo

import (
	"fmt"
	"math"
)

// Thresholds are the inclusive lower bounds a pair must meet.
type Thresholds struct {
	// MinBgContrast is the minimum contrast ratio between the two backgrounds.
	MinBgContrast float64 `json:"min_bg_contrast"`
	// MinHueDistance is the minimum circular hue distance in degrees (0-180).
	MinHueDistance float64 `json:"min_hue_distance"`
	// MinSatDistance is the minimum saturation difference (0-100).
	MinSatDistance float64 `json:"min_sat_distance"`
	// MinLumDistance is the minimum lightness difference (0-100).
	MinLumDistance float64 `json:"min_lum_distance"`
	// MinTotalDistance is the minimum distance between any two accepted
	// combinations. Zero disables the diversity filter.
	MinTotalDistance float64 `json:"min_total_distance"`
}

// DefaultThresholds returns the starting thresholds: backgrounds must differ
// by at least 1.4:1 and nothing else is constrained.
func DefaultThresholds() Thresholds {
	return Thresholds{MinBgContrast: 1.4}
}

// Normalise clamps every threshold into its declared range. NaN and negative
// values become zero and background contrast is at least 1.
func (t Thresholds) Normalise() Thresholds {
	return Thresholds{
		MinBgContrast:    math.Max(1, clamp(t.MinBgContrast, 0, math.MaxFloat64)),
		MinHueDistance:   clamp(t.MinHueDistance, 0, 180),
		MinSatDistance:   clamp(t.MinSatDistance, 0, 100),
		MinLumDistance:   clamp(t.MinLumDistance, 0, 100),
		MinTotalDistance: clamp(t.MinTotalDistance, 0, math.MaxFloat64),
	}
}

// Validate reports thresholds outside their declared ranges. The pipeline
// itself never fails and clamps instead; Validate is for front ends that
// prefer to reject bad input.
func (t Thresholds) Validate() error {
	switch {
	case math.IsNaN(t.MinBgContrast) || t.MinBgContrast < 1 || t.MinBgContrast > 21:
		return fmt.Errorf("min background contrast must be between 1 and 21, got %v", t.MinBgContrast)
	case math.IsNaN(t.MinHueDistance) || t.MinHueDistance < 0 || t.MinHueDistance > 180:
		return fmt.Errorf("min hue distance must be between 0 and 180, got %v", t.MinHueDistance)
	case math.IsNaN(t.MinSatDistance) || t.MinSatDistance < 0 || t.MinSatDistance > 100:
		return fmt.Errorf("min saturation distance must be between 0 and 100, got %v", t.MinSatDistance)
	case math.IsNaN(t.MinLumDistance) || t.MinLumDistance < 0 || t.MinLumDistance > 100:
		return fmt.Errorf("min lightness distance must be between 0 and 100, got %v", t.MinLumDistance)
	case math.IsNaN(t.MinTotalDistance) || t.MinTotalDistance < 0:
		return fmt.Errorf("min total distance must not be negative, got %v", t.MinTotalDistance)
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
