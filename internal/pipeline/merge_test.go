package pipeline

import (
	"testing"

	"github.com/ppiankov/docent/internal/model"
)

const mergeSample = `Your team will reduce operating costs by 23% within two quarters.
The rollout requires a dedicated engineer and a budget of $150k over phase 1.
Security, testing and monitoring practices are described with encryption and
access control. Backup routines run nightly on our cloud-native stack.`

func heuristicFixture() *model.AnalysisResult {
	return NewAnalyzer().Analyze(mergeSample)
}

func TestMerge_EmptyOutputsKeepHeuristic(t *testing.T) {
	heur := heuristicFixture()
	merged := Merge(heur, nil)

	if merged.Engine != model.EngineStagedLLM {
		t.Errorf("expected staged-llm engine label, got %q", merged.Engine)
	}
	if merged.OverallTrustScore != heur.OverallTrustScore {
		t.Errorf("expected heuristic trust score %d preserved, got %d",
			heur.OverallTrustScore, merged.OverallTrustScore)
	}
	if merged.ProviderConsumer.CompositeScore != heur.ProviderConsumer.CompositeScore {
		t.Error("expected heuristic module result preserved when stage output absent")
	}
	if merged.Summary != heur.Summary {
		t.Error("expected heuristic summary preserved")
	}
}

func TestMerge_DoesNotMutateInput(t *testing.T) {
	heur := heuristicFixture()
	before := heur.OverallTrustScore
	engine := heur.Engine

	_ = Merge(heur, []StageOutput{
		{Name: StageSynthesis, Fields: map[string]any{"overall_trust_score": float64(99)}},
	})

	if heur.OverallTrustScore != before || heur.Engine != engine {
		t.Error("Merge must not mutate the heuristic result")
	}
}

func TestMerge_NumericClampAndRound(t *testing.T) {
	heur := heuristicFixture()

	merged := Merge(heur, []StageOutput{
		{Name: StageSynthesis, Fields: map[string]any{"overall_trust_score": float64(150)}},
	})
	if merged.OverallTrustScore != 100 {
		t.Errorf("expected out-of-range score clamped to 100, got %d", merged.OverallTrustScore)
	}

	merged = Merge(heur, []StageOutput{
		{Name: StageSynthesis, Fields: map[string]any{"overall_trust_score": 61.6}},
	})
	if merged.OverallTrustScore != 62 {
		t.Errorf("expected 61.6 rounded to 62, got %d", merged.OverallTrustScore)
	}
}

func TestMerge_MalformedFieldFallsBack(t *testing.T) {
	heur := heuristicFixture()

	merged := Merge(heur, []StageOutput{
		{Name: StageSynthesis, Fields: map[string]any{
			"overall_trust_score": "ninety",
			"summary":             "",
		}},
	})

	if merged.OverallTrustScore != heur.OverallTrustScore {
		t.Errorf("expected heuristic default for mistyped numeric, got %d", merged.OverallTrustScore)
	}
	if merged.Summary != heur.Summary {
		t.Error("expected heuristic default for empty summary")
	}
}

func TestMerge_EnumRepairToMiddleBand(t *testing.T) {
	heur := heuristicFixture()

	merged := Merge(heur, []StageOutput{
		{Name: StageProfile, Fields: map[string]any{
			"provider_consumer": map[string]any{
				"composite_score": float64(80),
				"classification":  "Totally Legit", // not in the closed set
			},
		}},
		{Name: StageRisk, Fields: map[string]any{
			"hype_reality": map[string]any{
				"hype_score":     float64(20),
				"classification": "Mild",
			},
		}},
	})

	if merged.ProviderConsumer.Classification != model.ClassBalancedOrient {
		t.Errorf("expected enum repaired to middle band, got %q",
			merged.ProviderConsumer.Classification)
	}
	if merged.ProviderConsumer.CompositeScore != 80 {
		t.Errorf("valid sibling fields should still merge, got %d",
			merged.ProviderConsumer.CompositeScore)
	}
	if merged.HypeReality.Classification != model.HypeBalanced {
		t.Errorf("expected hype enum repaired to Balanced, got %q",
			merged.HypeReality.Classification)
	}
	if merged.HypeReality.HypeScore != 20 {
		t.Errorf("expected hype score merged, got %d", merged.HypeReality.HypeScore)
	}
}

func TestMerge_DriversAllOrNothing(t *testing.T) {
	heur := heuristicFixture()

	// Weights sum to 0.8: the whole driver list is rejected
	merged := Merge(heur, []StageOutput{
		{Name: StageProfile, Fields: map[string]any{
			"rarity_index": map[string]any{
				"composite_score": float64(70),
				"drivers": []any{
					map[string]any{"name": "a", "weight": 0.4, "score": float64(8)},
					map[string]any{"name": "b", "weight": 0.4, "score": float64(6)},
				},
			},
		}},
	})

	if len(merged.RarityIndex.Drivers) != len(heur.RarityIndex.Drivers) {
		t.Error("expected invalid driver list rejected wholesale")
	}
	if merged.RarityIndex.CompositeScore != 70 {
		t.Errorf("composite should still merge, got %d", merged.RarityIndex.CompositeScore)
	}

	// A valid list replaces the heuristic drivers
	merged = Merge(heur, []StageOutput{
		{Name: StageProfile, Fields: map[string]any{
			"rarity_index": map[string]any{
				"drivers": []any{
					map[string]any{"name": "a", "weight": 0.5, "score": float64(8), "rationale": "r"},
					map[string]any{"name": "b", "weight": 0.5, "score": float64(6), "rationale": "r"},
				},
			},
		}},
	})
	if len(merged.RarityIndex.Drivers) != 2 {
		t.Errorf("expected valid driver list accepted, got %d drivers", len(merged.RarityIndex.Drivers))
	}
}

func TestMerge_FactsCappedAtFive(t *testing.T) {
	heur := heuristicFixture()

	var raw []any
	for i := 0; i < 8; i++ {
		raw = append(raw, map[string]any{
			"fact":          "claim " + string(rune('a'+i)),
			"is_quantified": true,
		})
	}

	merged := Merge(heur, []StageOutput{
		{Name: StageForensics, Fields: map[string]any{"notable_facts": raw}},
	})

	if len(merged.NotableFacts) != 5 {
		t.Errorf("expected facts capped at 5, got %d", len(merged.NotableFacts))
	}
}

func TestMerge_BiasInstancesValidated(t *testing.T) {
	heur := heuristicFixture()

	merged := Merge(heur, []StageOutput{
		{Name: StageRisk, Fields: map[string]any{
			"bias": map[string]any{
				"overall_score": float64(45),
				"instances": []any{
					map[string]any{"type": "confirmation", "severity": "high", "evidence": "e"},
					map[string]any{"type": "wishful_thinking", "severity": "high"}, // unknown type dropped
					map[string]any{"type": "recency", "severity": "sideways"},      // severity repaired
				},
			},
		}},
	})

	if merged.Bias.OverallScore != 45 {
		t.Errorf("expected overall score 45, got %d", merged.Bias.OverallScore)
	}
	if len(merged.Bias.Instances) != 2 {
		t.Fatalf("expected 2 valid instances, got %d", len(merged.Bias.Instances))
	}
	if merged.Bias.Instances[1].Severity != model.SeverityLow {
		t.Errorf("expected unknown severity repaired to low, got %q", merged.Bias.Instances[1].Severity)
	}
}

func TestMerge_ReadinessAndObsolescence(t *testing.T) {
	heur := heuristicFixture()

	merged := Merge(heur, []StageOutput{
		{Name: StageRisk, Fields: map[string]any{
			"readiness": map[string]any{
				"readiness_score": float64(12), // clamped to 10
				"verdict":         "Ready",
			},
			"obsolescence": map[string]any{
				"risk_score": float64(-4), // clamped to 0
				"risk_level": "Low",
			},
		}},
	})

	if merged.Readiness.Readiness != 10 {
		t.Errorf("expected readiness clamped to 10, got %d", merged.Readiness.Readiness)
	}
	if merged.Readiness.Verdict != model.VerdictReady {
		t.Errorf("expected Ready, got %q", merged.Readiness.Verdict)
	}
	if merged.Obsolescence.RiskScore != 0 {
		t.Errorf("expected risk clamped to 0, got %d", merged.Obsolescence.RiskScore)
	}
	if merged.Obsolescence.RiskLevel != model.RiskLow {
		t.Errorf("expected Low, got %q", merged.Obsolescence.RiskLevel)
	}
	// Heuristic evidence survives: external stages only adjust score and verdict
	if merged.Readiness.Artifacts != heur.Readiness.Artifacts {
		t.Error("expected heuristic artifact checklist preserved")
	}
}
