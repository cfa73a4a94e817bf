package score

import (
	"math"

	"github.com/ppiankov/docent/internal/model"
)

// Trust component weights for the heuristic-only path. They sum to 1.0.
const (
	wProviderConsumer = 0.15
	wRarity           = 0.10
	wManipulation     = 0.15
	wFluff            = 0.10
	wReadiness        = 0.15
	wObsolescence     = 0.10
	wHype             = 0.10
	wSafety           = 0.10
	wBias             = 0.05
)

// Trust computes the overall trust score from a fully-populated heuristic
// result. Penalty-style components enter inverted so that a higher trust
// score always means a more trustworthy document.
func Trust(r *model.AnalysisResult) int {
	sum := wProviderConsumer*float64(r.ProviderConsumer.CompositeScore) +
		wRarity*float64(r.RarityIndex.CompositeScore) +
		wManipulation*float64(100-r.Forensics.Deception.ManipulationIndex) +
		wFluff*float64(100-r.Forensics.Fluff.FluffScore) +
		wReadiness*float64(r.Readiness.Readiness*10) +
		wObsolescence*float64(100-r.Obsolescence.RiskScore) +
		wHype*float64(100-r.HypeReality.HypeScore) +
		wSafety*float64(r.Regulatory.SafetyScore) +
		wBias*float64(100-r.Bias.OverallScore)

	return Clamp(int(math.Round(sum)), 0, 100)
}
