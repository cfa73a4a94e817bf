package pipeline

import (
	"math"

	"github.com/ppiankov/docent/internal/model"
	"github.com/ppiankov/docent/internal/score"
)

// Merge reconciles the heuristic result with the four external stage
// payloads into a fresh canonical AnalysisResult. Per field: take the
// external value when present and well-typed, otherwise the documented
// default. Numeric fields are rounded and clamped to their declared
// range; enum fields are validated against their closed set.
//
// Documented defaults: numeric and list fields default to the heuristic
// value for the same field (the guaranteed heuristic floor); enum fields
// default to the module's middle band. Merge never mutates its inputs.
func Merge(heur *model.AnalysisResult, outputs []StageOutput) *model.AnalysisResult {
	byName := make(map[string]map[string]any, len(outputs))
	for _, out := range outputs {
		byName[out.Name] = out.Fields
	}
	profile := byName[StageProfile]
	review := byName[StageForensics]
	risk := byName[StageRisk]
	synthesis := byName[StageSynthesis]

	merged := *heur
	merged.Engine = model.EngineStagedLLM

	merged.ProviderConsumer = moduleField(profile, "provider_consumer", heur.ProviderConsumer,
		model.ClassBalancedOrient,
		model.ClassClientServing, model.ClassBalancedOrient, model.ClassVendorServing)
	merged.OriginatorScale = moduleField(profile, "originator_scale", heur.OriginatorScale,
		model.ClassEstablishedFirm,
		model.ClassGlobalHeavyweight, model.ClassEstablishedFirm, model.ClassBoutique)
	merged.TargetScale = moduleField(profile, "target_scale", heur.TargetScale,
		model.ClassMidMarket,
		model.ClassEnterprise, model.ClassMidMarket, model.ClassSMB)
	merged.AudienceLevel = moduleField(profile, "audience_level", heur.AudienceLevel,
		model.ClassManagerial,
		model.ClassExecutive, model.ClassManagerial, model.ClassPractitioner)
	merged.RarityIndex = moduleField(profile, "rarity_index", heur.RarityIndex,
		model.ClassDifferentiated,
		model.ClassNovel, model.ClassDifferentiated, model.ClassCommodity)
	merged.VisualScore = numField(profile, "visual_score", heur.VisualScore, 0, 100)

	merged.Forensics.Deception.ManipulationIndex = numField(review, "manipulation_index",
		heur.Forensics.Deception.ManipulationIndex, 0, 100)
	merged.Forensics.Fluff.FluffScore = numField(review, "fluff_score",
		heur.Forensics.Fluff.FluffScore, 0, 100)
	merged.NotableFacts = factsField(review, "notable_facts", heur.NotableFacts)

	merged.Readiness = readinessField(risk, heur.Readiness)
	merged.Obsolescence = obsolescenceField(risk, heur.Obsolescence)
	merged.HypeReality = hypeField(risk, heur.HypeReality)
	merged.Regulatory = regulatoryField(risk, heur.Regulatory)
	merged.Bias = biasField(risk, heur.Bias)

	merged.Summary = strField(synthesis, "summary", heur.Summary)
	merged.OverallTrustScore = numField(synthesis, "overall_trust_score",
		heur.OverallTrustScore, 0, 100)

	return &merged
}

// numField decodes an integer field, rounding and clamping well-typed
// numbers and substituting def otherwise.
func numField(m map[string]any, key string, def, lo, hi int) int {
	if m == nil {
		return def
	}
	v, ok := m[key].(float64)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return score.Clamp(int(math.Round(v)), lo, hi)
}

// strField decodes a non-empty string field or substitutes def
func strField(m map[string]any, key, def string) string {
	if m == nil {
		return def
	}
	if s, ok := m[key].(string); ok && s != "" {
		return s
	}
	return def
}

// enumField decodes a string field validated against its closed value
// set, substituting def (the module's middle band) for non-members.
func enumField(m map[string]any, key, def string, allowed ...string) string {
	s := strField(m, key, def)
	for _, a := range allowed {
		if s == a {
			return s
		}
	}
	return def
}

// boolField decodes a boolean field or substitutes def
func boolField(m map[string]any, key string, def bool) bool {
	if m == nil {
		return def
	}
	if b, ok := m[key].(bool); ok {
		return b
	}
	return def
}

// objField returns a nested object or nil
func objField(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	obj, _ := m[key].(map[string]any)
	return obj
}

// listField returns a nested array or nil
func listField(m map[string]any, key string) []any {
	if m == nil {
		return nil
	}
	list, _ := m[key].([]any)
	return list
}

// moduleField overlays one classification module. Drivers are accepted
// from the external payload only when every entry is well-formed and the
// weight-sum invariant holds; otherwise the heuristic drivers stand.
func moduleField(m map[string]any, key string, heur model.ModuleResult, def string, allowed ...string) model.ModuleResult {
	obj := objField(m, key)
	if obj == nil {
		return heur
	}
	return model.ModuleResult{
		Drivers:        driversField(obj, heur.Drivers),
		CompositeScore: numField(obj, "composite_score", heur.CompositeScore, 0, 100),
		Confidence:     numField(obj, "confidence", heur.Confidence, 0, 100),
		Classification: enumField(obj, "classification", def, allowed...),
	}
}

func driversField(obj map[string]any, heur []model.WeightedDriver) []model.WeightedDriver {
	list := listField(obj, "drivers")
	if len(list) == 0 {
		return heur
	}

	drivers := make([]model.WeightedDriver, 0, len(list))
	for _, entry := range list {
		d, ok := entry.(map[string]any)
		if !ok {
			return heur
		}
		name := strField(d, "name", "")
		weight, wok := d["weight"].(float64)
		sc, sok := d["score"].(float64)
		if name == "" || !wok || !sok || weight <= 0 || weight > 1 || sc < 1 || sc > 10 {
			return heur
		}
		drivers = append(drivers, model.WeightedDriver{
			Name:      name,
			Weight:    weight,
			Score:     sc,
			Rationale: strField(d, "rationale", ""),
		})
	}

	if score.ValidateWeights(drivers) != nil {
		return heur
	}
	return drivers
}

func factsField(m map[string]any, key string, heur []model.NotableFact) []model.NotableFact {
	list := listField(m, key)
	if list == nil {
		return heur
	}

	var facts []model.NotableFact
	for _, entry := range list {
		if len(facts) >= 5 {
			break
		}
		f, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		fact := strField(f, "fact", "")
		if fact == "" {
			continue
		}
		facts = append(facts, model.NotableFact{
			Fact:         fact,
			Rationale:    strField(f, "rationale", ""),
			IsContrarian: boolField(f, "is_contrarian", false),
			IsQuantified: boolField(f, "is_quantified", false),
		})
	}

	if len(facts) == 0 {
		return heur
	}
	return facts
}

func readinessField(risk map[string]any, heur model.ReadinessResult) model.ReadinessResult {
	obj := objField(risk, "readiness")
	if obj == nil {
		return heur
	}
	merged := heur
	merged.Readiness = numField(obj, "readiness_score", heur.Readiness, 0, 10)
	merged.Verdict = enumField(obj, "verdict", model.VerdictPartial,
		model.VerdictReady, model.VerdictPartial, model.VerdictAspirational)
	return merged
}

func obsolescenceField(risk map[string]any, heur model.ObsolescenceResult) model.ObsolescenceResult {
	obj := objField(risk, "obsolescence")
	if obj == nil {
		return heur
	}
	merged := heur
	merged.RiskScore = numField(obj, "risk_score", heur.RiskScore, 0, 100)
	merged.RiskLevel = enumField(obj, "risk_level", model.RiskModerate,
		model.RiskLow, model.RiskModerate, model.RiskHigh, model.RiskCritical)
	return merged
}

func hypeField(risk map[string]any, heur model.HypeResult) model.HypeResult {
	obj := objField(risk, "hype_reality")
	if obj == nil {
		return heur
	}
	merged := heur
	merged.HypeScore = numField(obj, "hype_score", heur.HypeScore, 0, 100)
	merged.Classification = enumField(obj, "classification", model.HypeBalanced,
		model.HypeSalesPropaganda, model.HypeOptimistic, model.HypeBalanced)
	return merged
}

func regulatoryField(risk map[string]any, heur model.RegulatoryResult) model.RegulatoryResult {
	obj := objField(risk, "regulatory")
	if obj == nil {
		return heur
	}
	merged := heur
	merged.SafetyScore = numField(obj, "safety_score", heur.SafetyScore, 0, 100)
	merged.SafetyLevel = enumField(obj, "safety_level", model.SafetyReview,
		model.SafetyHighRisk, model.SafetyReview, model.SafetySafe)
	return merged
}

func biasField(risk map[string]any, heur model.BiasResult) model.BiasResult {
	obj := objField(risk, "bias")
	if obj == nil {
		return heur
	}

	merged := model.BiasResult{
		Instances:    heur.Instances,
		OverallScore: numField(obj, "overall_score", heur.OverallScore, 0, 100),
	}

	list := listField(obj, "instances")
	if list == nil {
		return merged
	}

	var instances []model.BiasInstance
	for _, entry := range list {
		b, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		biasType := enumField(b, "type", "",
			model.BiasConfirmation, model.BiasSurvivorship, model.BiasSelection,
			model.BiasRecency, model.BiasAuthority)
		if biasType == "" {
			continue
		}
		instances = append(instances, model.BiasInstance{
			Type: biasType,
			Severity: enumField(b, "severity", model.SeverityLow,
				model.SeverityHigh, model.SeverityMedium, model.SeverityLow),
			Evidence: strField(b, "evidence", ""),
		})
	}

	if instances != nil {
		merged.Instances = instances
	}
	return merged
}
