package score

import (
	"testing"

	"github.com/ppiankov/docent/internal/model"
)

func drivers(weights []float64, scores []float64) []model.WeightedDriver {
	ds := make([]model.WeightedDriver, len(weights))
	for i := range weights {
		ds[i] = model.WeightedDriver{Name: "d", Weight: weights[i], Score: scores[i]}
	}
	return ds
}

func TestCompose_Neutral(t *testing.T) {
	// Five equal-weight drivers all at the midpoint compose to exactly 50
	ds := drivers(
		[]float64{0.2, 0.2, 0.2, 0.2, 0.2},
		[]float64{5, 5, 5, 5, 5},
	)
	if got := Compose(ds); got != 50 {
		t.Errorf("expected 50 for all-neutral drivers, got %d", got)
	}
}

func TestCompose_Extremes(t *testing.T) {
	max := drivers([]float64{0.5, 0.5}, []float64{10, 10})
	if got := Compose(max); got != 100 {
		t.Errorf("expected 100 for max drivers, got %d", got)
	}

	min := drivers([]float64{0.5, 0.5}, []float64{1, 1})
	if got := Compose(min); got != 10 {
		t.Errorf("expected 10 for min drivers, got %d", got)
	}
}

func TestCompose_Rounding(t *testing.T) {
	// 0.3×7 + 0.7×6 = 6.3 → 63
	ds := drivers([]float64{0.3, 0.7}, []float64{7, 6})
	if got := Compose(ds); got != 63 {
		t.Errorf("expected 63, got %d", got)
	}
}

func TestValidateWeights(t *testing.T) {
	ok := drivers([]float64{0.3, 0.25, 0.2, 0.15, 0.1}, []float64{5, 5, 5, 5, 5})
	if err := ValidateWeights(ok); err != nil {
		t.Errorf("expected valid weights, got %v", err)
	}

	bad := drivers([]float64{0.5, 0.4}, []float64{5, 5})
	if err := ValidateWeights(bad); err == nil {
		t.Error("expected error for weights summing to 0.9")
	}

	negative := drivers([]float64{1.2, -0.2}, []float64{5, 5})
	if err := ValidateWeights(negative); err == nil {
		t.Error("expected error for out-of-range weight")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(150, 0, 100); got != 100 {
		t.Errorf("expected 100, got %d", got)
	}
	if got := Clamp(-5, 0, 100); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
	if got := Clamp(42, 0, 100); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
}

func TestRatioScore(t *testing.T) {
	// Equal counts, including zero activity, score the midpoint
	if got := RatioScore(0, 0); got != 5 {
		t.Errorf("expected 5 for 0/0, got %v", got)
	}
	if got := RatioScore(3, 3); got != 5 {
		t.Errorf("expected 5 for equal counts, got %v", got)
	}

	// One-sided counts reach the extremes
	if got := RatioScore(10, 0); got != 10 {
		t.Errorf("expected 10 for fully one-sided, got %v", got)
	}
	if got := RatioScore(0, 10); got != 1 {
		t.Errorf("expected 1 for fully opposed, got %v", got)
	}

	// Monotone in a's share
	if RatioScore(3, 1) <= RatioScore(1, 3) {
		t.Error("expected larger share to score higher")
	}
}

func TestDensityScore(t *testing.T) {
	if got := DensityScore(0, 1000, 1000); got != 1 {
		t.Errorf("expected 1 for zero hits, got %v", got)
	}
	if got := DensityScore(5, 0, 1000); got != 1 {
		t.Errorf("expected 1 for zero words, got %v", got)
	}
	if got := DensityScore(200, 1000, 1000); got != 10 {
		t.Errorf("expected saturation at 10, got %v", got)
	}
}

func TestPresenceScore(t *testing.T) {
	if got := PresenceScore(0, 10); got != 1 {
		t.Errorf("expected 1 for zero hits, got %v", got)
	}
	if got := PresenceScore(10, 10); got != 10 {
		t.Errorf("expected 10 at saturation, got %v", got)
	}
	if got := PresenceScore(15, 10); got != 10 {
		t.Errorf("expected 10 beyond saturation, got %v", got)
	}
}

func TestTrust_Neutral(t *testing.T) {
	r := &model.AnalysisResult{}
	r.ProviderConsumer.CompositeScore = 50
	r.RarityIndex.CompositeScore = 50
	r.Forensics.Deception.ManipulationIndex = 50
	r.Forensics.Fluff.FluffScore = 50
	r.Readiness.Readiness = 5
	r.Obsolescence.RiskScore = 50
	r.HypeReality.HypeScore = 50
	r.Regulatory.SafetyScore = 50
	r.Bias.OverallScore = 50

	if got := Trust(r); got != 50 {
		t.Errorf("expected 50 for all-neutral result, got %d", got)
	}
}

func TestTrust_PenaltiesInverted(t *testing.T) {
	clean := &model.AnalysisResult{}
	clean.ProviderConsumer.CompositeScore = 80
	clean.RarityIndex.CompositeScore = 70
	clean.Readiness.Readiness = 8
	clean.Regulatory.SafetyScore = 90

	dirty := *clean
	dirty.Forensics.Deception.ManipulationIndex = 90
	dirty.Forensics.Fluff.FluffScore = 90
	dirty.HypeReality.HypeScore = 90
	dirty.Bias.OverallScore = 90

	if Trust(&dirty) >= Trust(clean) {
		t.Error("expected penalty components to lower trust")
	}
}

func TestTrust_Bounded(t *testing.T) {
	worst := &model.AnalysisResult{}
	worst.Forensics.Deception.ManipulationIndex = 100
	worst.Forensics.Fluff.FluffScore = 100
	worst.Obsolescence.RiskScore = 100
	worst.HypeReality.HypeScore = 100
	worst.Bias.OverallScore = 100

	got := Trust(worst)
	if got < 0 || got > 100 {
		t.Errorf("trust out of range: %d", got)
	}
}
