package classify

import "github.com/ppiankov/docent/internal/score"

// band maps a minimum composite onto a classification label
type band struct {
	min   int
	label string
}

// bandSet is an ordered list of bands, highest threshold first
type bandSet []band

func (b bandSet) classify(composite int) string {
	for _, band := range b {
		if composite >= band.min {
			return band.label
		}
	}
	return b[len(b)-1].label
}

// confidence rewards decisive signal: it grows with distance from the
// ambiguous midpoint 50 and is clamped to a module-specific floor and
// ceiling so it never reaches 0% or 100%.
func confidence(composite, floor, ceil int) int {
	dist := composite - 50
	if dist < 0 {
		dist = -dist
	}
	return score.Clamp(floor+dist, floor, ceil)
}
