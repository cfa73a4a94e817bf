package classify

import (
	"fmt"

	"github.com/ppiankov/docent/internal/model"
	"github.com/ppiankov/docent/internal/score"
	"github.com/ppiankov/docent/internal/textmatch"
)

// Classifier runs the five classification modules. Each module counts
// opposing term families, scores five weighted drivers, aggregates them
// through the shared composite law and bands the composite onto a
// classification.
type Classifier struct {
	lex *textmatch.Lexicon
}

// NewClassifier creates a classifier over the given lexicon
func NewClassifier(lex *textmatch.Lexicon) *Classifier {
	return &Classifier{lex: lex}
}

func buildResult(drivers []model.WeightedDriver, bands bandSet, floor, ceil int) model.ModuleResult {
	composite := score.Compose(drivers)
	return model.ModuleResult{
		Drivers:        drivers,
		CompositeScore: composite,
		Confidence:     confidence(composite, floor, ceil),
		Classification: bands.classify(composite),
	}
}

// ProviderConsumer measures whose interests the document's language serves.
// High composite = client-serving.
func (c *Classifier) ProviderConsumer(text string) model.ModuleResult {
	words := textmatch.WordCount(text)

	client := textmatch.Count(text, c.lex.ClientTerms)
	vendor := textmatch.Count(text, c.lex.VendorTerms)
	outcome := textmatch.Count(text, c.lex.OutcomeTerms)
	feature := textmatch.Count(text, c.lex.FeatureTerms)
	guarantee := textmatch.Count(text, c.lex.GuaranteeTerms)
	urgency := textmatch.Count(text, c.lex.UrgencyPhrases)
	jargon := textmatch.Count(text, c.lex.JargonMasking) + textmatch.Count(text, c.lex.WeaselWords)

	drivers := []model.WeightedDriver{
		{Name: "pronoun_orientation", Weight: 0.30,
			Score:     score.RatioScore(client, vendor),
			Rationale: fmt.Sprintf("client terms %d vs vendor terms %d", client, vendor)},
		{Name: "benefit_framing", Weight: 0.20,
			Score:     score.RatioScore(outcome, feature),
			Rationale: fmt.Sprintf("outcome language %d vs feature language %d", outcome, feature)},
		{Name: "risk_sharing", Weight: 0.20,
			Score:     score.PresenceScore(guarantee, 4),
			Rationale: fmt.Sprintf("%d guarantee/SLA mentions", guarantee)},
		{Name: "pressure_tactics", Weight: 0.15,
			Score:     11 - score.DensityScore(urgency, words, 1000),
			Rationale: fmt.Sprintf("%d urgency phrases in %d words", urgency, words)},
		{Name: "jargon_transparency", Weight: 0.15,
			Score:     11 - score.DensityScore(jargon, words, 500),
			Rationale: fmt.Sprintf("%d jargon/weasel hits in %d words", jargon, words)},
	}

	bands := bandSet{
		{min: 65, label: model.ClassClientServing},
		{min: 35, label: model.ClassBalancedOrient},
		{min: 0, label: model.ClassVendorServing},
	}
	return buildResult(drivers, bands, 40, 90)
}

// OriginatorScale estimates the scale of the organization behind the
// document. High composite = global heavyweight.
func (c *Classifier) OriginatorScale(text string) model.ModuleResult {
	words := textmatch.WordCount(text)

	entOrg := textmatch.Count(text, c.lex.EnterpriseOrgTerms)
	boutique := textmatch.Count(text, c.lex.BoutiqueOrgTerms)
	global := textmatch.Count(text, c.lex.GlobalReachTerms)
	local := textmatch.Count(text, c.lex.LocalReachTerms)
	bigTeam := textmatch.Count(text, c.lex.BigTeamTerms)
	smallTeam := textmatch.Count(text, c.lex.SmallTeamTerms)
	procure := textmatch.Count(text, c.lex.ProcurementTerms)
	selfServe := textmatch.Count(text, c.lex.SelfServeTerms)
	polish := textmatch.Count(text, c.lex.WeaselWords)

	drivers := []model.WeightedDriver{
		{Name: "organization_markers", Weight: 0.25,
			Score:     score.RatioScore(entOrg, boutique),
			Rationale: fmt.Sprintf("enterprise markers %d vs boutique markers %d", entOrg, boutique)},
		{Name: "geographic_reach", Weight: 0.20,
			Score:     score.RatioScore(global, local),
			Rationale: fmt.Sprintf("global reach terms %d vs local terms %d", global, local)},
		{Name: "team_scale", Weight: 0.20,
			Score:     score.RatioScore(bigTeam, smallTeam),
			Rationale: fmt.Sprintf("large-team terms %d vs small-team terms %d", bigTeam, smallTeam)},
		{Name: "process_maturity", Weight: 0.20,
			Score:     score.RatioScore(procure, selfServe),
			Rationale: fmt.Sprintf("procurement terms %d vs self-serve terms %d", procure, selfServe)},
		{Name: "polish_density", Weight: 0.15,
			Score:     score.DensityScore(polish, words, 2000),
			Rationale: fmt.Sprintf("%d marketing-polish terms in %d words", polish, words)},
	}

	bands := bandSet{
		{min: 65, label: model.ClassGlobalHeavyweight},
		{min: 35, label: model.ClassEstablishedFirm},
		{min: 0, label: model.ClassBoutique},
	}
	return buildResult(drivers, bands, 35, 85)
}

// TargetScale estimates the size of customer the document is aimed at.
// High composite = enterprise target.
func (c *Classifier) TargetScale(text string) model.ModuleResult {
	entTarget := textmatch.Count(text, c.lex.EnterpriseTargetTerms)
	smb := textmatch.Count(text, c.lex.SMBTargetTerms)
	procure := textmatch.Count(text, c.lex.ProcurementTerms)
	selfServe := textmatch.Count(text, c.lex.SelfServeTerms)
	reg := textmatch.Count(text, c.lex.RegulatoryTerms)
	global := textmatch.Count(text, c.lex.GlobalReachTerms)

	drivers := []model.WeightedDriver{
		{Name: "target_vocabulary", Weight: 0.30,
			Score:     score.RatioScore(entTarget, smb),
			Rationale: fmt.Sprintf("enterprise-target terms %d vs SMB terms %d", entTarget, smb)},
		{Name: "buying_process", Weight: 0.25,
			Score:     score.RatioScore(procure, selfServe),
			Rationale: fmt.Sprintf("procurement terms %d vs self-serve terms %d", procure, selfServe)},
		{Name: "compliance_emphasis", Weight: 0.15,
			Score:     score.PresenceScore(reg, 5),
			Rationale: fmt.Sprintf("%d regulatory mentions", reg)},
		{Name: "rollout_scale", Weight: 0.15,
			Score:     score.PresenceScore(global, 4),
			Rationale: fmt.Sprintf("%d multi-region rollout terms", global)},
		{Name: "onboarding_friction", Weight: 0.15,
			Score:     11 - score.PresenceScore(selfServe, 4),
			Rationale: fmt.Sprintf("%d instant-onboarding terms", selfServe)},
	}

	bands := bandSet{
		{min: 70, label: model.ClassEnterprise},
		{min: 40, label: model.ClassMidMarket},
		{min: 0, label: model.ClassSMB},
	}
	return buildResult(drivers, bands, 35, 85)
}

// AudienceLevel estimates the seniority of the intended reader.
// High composite = executive audience.
func (c *Classifier) AudienceLevel(text string) model.ModuleResult {
	words := textmatch.WordCount(text)

	exec := textmatch.Count(text, c.lex.ExecutiveTerms)
	practitioner := textmatch.Count(text, c.lex.PractitionerTerms)
	strategy := textmatch.Count(text, c.lex.StrategyTerms)
	operational := textmatch.Count(text, c.lex.OperationalTerms)
	outcome := textmatch.Count(text, c.lex.OutcomeTerms)
	numeric := textmatch.CountExpr(text, `\b\d+(?:\.\d+)?\b`)

	drivers := []model.WeightedDriver{
		{Name: "executive_vocabulary", Weight: 0.30,
			Score:     score.RatioScore(exec, practitioner),
			Rationale: fmt.Sprintf("executive terms %d vs practitioner terms %d", exec, practitioner)},
		{Name: "strategy_vs_operations", Weight: 0.25,
			Score:     score.RatioScore(strategy, operational),
			Rationale: fmt.Sprintf("strategy terms %d vs operational terms %d", strategy, operational)},
		{Name: "financial_framing", Weight: 0.15,
			Score:     score.PresenceScore(outcome, 5),
			Rationale: fmt.Sprintf("%d business-outcome mentions", outcome)},
		{Name: "technical_depth", Weight: 0.15,
			Score:     11 - score.DensityScore(practitioner, words, 1000),
			Rationale: fmt.Sprintf("%d technical terms in %d words", practitioner, words)},
		{Name: "data_granularity", Weight: 0.15,
			Score:     11 - score.DensityScore(numeric, words, 500),
			Rationale: fmt.Sprintf("%d raw numeric tokens in %d words", numeric, words)},
	}

	bands := bandSet{
		{min: 65, label: model.ClassExecutive},
		{min: 35, label: model.ClassManagerial},
		{min: 0, label: model.ClassPractitioner},
	}
	return buildResult(drivers, bands, 40, 88)
}

// RarityIndex estimates how novel the document's content claims to be.
// High composite = novel.
func (c *Classifier) RarityIndex(text string) model.ModuleResult {
	novel := textmatch.Count(text, c.lex.NoveltyTerms)
	commodity := textmatch.Count(text, c.lex.CommodityTerms)
	ip := textmatch.Count(text, []string{"patent", "patented", "trade secret"})
	research := textmatch.Count(text, c.lex.InternalEvidenceTerms) +
		textmatch.Count(text, []string{"original research", "we measured", "our experiment"})
	contrarian := textmatch.Count(text, c.lex.ContrarianPhrases)

	drivers := []model.WeightedDriver{
		{Name: "novelty_claims", Weight: 0.30,
			Score:     score.RatioScore(novel, commodity),
			Rationale: fmt.Sprintf("novelty terms %d vs commodity terms %d", novel, commodity)},
		{Name: "ip_markers", Weight: 0.20,
			Score:     score.PresenceScore(ip, 3),
			Rationale: fmt.Sprintf("%d intellectual-property markers", ip)},
		{Name: "original_research", Weight: 0.20,
			Score:     score.PresenceScore(research, 4),
			Rationale: fmt.Sprintf("%d first-party research mentions", research)},
		{Name: "standardization", Weight: 0.15,
			Score:     11 - score.PresenceScore(commodity, 5),
			Rationale: fmt.Sprintf("%d standard-practice mentions", commodity)},
		{Name: "contrarian_stance", Weight: 0.15,
			Score:     score.PresenceScore(contrarian, 3),
			Rationale: fmt.Sprintf("%d contrarian phrasings", contrarian)},
	}

	bands := bandSet{
		{min: 70, label: model.ClassNovel},
		{min: 40, label: model.ClassDifferentiated},
		{min: 0, label: model.ClassCommodity},
	}
	return buildResult(drivers, bands, 30, 80)
}
