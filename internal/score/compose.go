package score

import (
	"fmt"
	"math"

	"github.com/ppiankov/docent/internal/model"
)

// Compose is the single shared aggregation law: every module's composite
// is round(Σ score_i × weight_i × 10), clamped to [0,100]. No module may
// aggregate drivers any other way, which keeps composites comparable
// across modules.
func Compose(drivers []model.WeightedDriver) int {
	sum := 0.0
	for _, d := range drivers {
		sum += d.Score * d.Weight
	}
	return Clamp(int(math.Round(sum*10)), 0, 100)
}

// ValidateWeights checks the per-module invariant that driver weights
// sum to 1.0 within tolerance.
func ValidateWeights(drivers []model.WeightedDriver) error {
	sum := 0.0
	for _, d := range drivers {
		if d.Weight <= 0 || d.Weight > 1 {
			return fmt.Errorf("driver %q: weight %v outside (0,1]", d.Name, d.Weight)
		}
		sum += d.Weight
	}
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("driver weights sum to %v, want 1.0", sum)
	}
	return nil
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampF bounds v to [lo, hi]
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RatioScore maps two opposing term-family counts onto a 1-10 driver
// score. Equal counts on both sides (including zero activity) score the
// midpoint 5; otherwise the score scales with a's share of the total.
func RatioScore(a, b int) float64 {
	if a == b {
		return 5
	}
	return math.Round((1+9*float64(a)/float64(a+b))*10) / 10
}

// DensityScore maps a hit count per perWords words onto a 1-10 driver
// score. Zero hits score 1; saturation at one hit per perWords/10 words.
func DensityScore(hits, words int, perWords float64) float64 {
	if words == 0 || hits == 0 {
		return 1
	}
	density := float64(hits) / float64(words) * perWords
	return ClampF(math.Round((1+density)*10)/10, 1, 10)
}

// PresenceScore maps a raw count onto a 1-10 score saturating at max hits
func PresenceScore(hits, max int) float64 {
	if hits <= 0 {
		return 1
	}
	if hits >= max {
		return 10
	}
	return math.Round((1+9*float64(hits)/float64(max))*10) / 10
}
