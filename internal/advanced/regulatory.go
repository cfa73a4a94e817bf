package advanced

import (
	"github.com/ppiankov/docent/internal/model"
	"github.com/ppiankov/docent/internal/score"
	"github.com/ppiankov/docent/internal/textmatch"
)

// Red-flag rules are fixed co-occurrence checks: risky content present
// with its safeguard vocabulary entirely absent.
const (
	redFlagDataNoRegulatory = "data collection language with zero regulatory mentions"
	redFlagAINoEthics       = "AI deployment language with zero ethical mentions"
	redFlagPIINoPrivacy     = "personal-data language with zero privacy mentions"
)

// Regulatory extracts regulatory/ethical/privacy mention lists, applies
// the red-flag rules and scores safety as
// clamp(100 − 20×red_flags + 5×total_mentions, 0, 100).
func (a *Analyzer) Regulatory(text string) model.RegulatoryResult {
	regulatory := textmatch.FindAll(text, a.lex.RegulatoryTerms)
	ethical := textmatch.FindAll(text, a.lex.EthicalTerms)
	privacy := textmatch.FindAll(text, a.lex.PrivacyTerms)

	var redFlags []string
	if textmatch.Count(text, a.lex.DataCollectionTerms) > 0 && len(regulatory) == 0 {
		redFlags = append(redFlags, redFlagDataNoRegulatory)
	}
	if textmatch.Count(text, a.lex.AIDeploymentTerms) > 0 && len(ethical) == 0 {
		redFlags = append(redFlags, redFlagAINoEthics)
	}
	if textmatch.Count(text, []string{"user data", "customer records", "user information"}) > 0 && len(privacy) == 0 {
		redFlags = append(redFlags, redFlagPIINoPrivacy)
	}

	total := len(regulatory) + len(ethical) + len(privacy)
	safety := score.Clamp(100-20*len(redFlags)+5*total, 0, 100)

	level := model.SafetySafe
	switch {
	case safety < 40:
		level = model.SafetyHighRisk
	case safety < 70:
		level = model.SafetyReview
	}

	return model.RegulatoryResult{
		RegulatoryMentions: regulatory,
		EthicalMentions:    ethical,
		PrivacyMentions:    privacy,
		RedFlags:           redFlags,
		SafetyScore:        safety,
		SafetyLevel:        level,
	}
}

// MentionsRaw is the total safeguard mention count exposed to the pre-pass
func (a *Analyzer) MentionsRaw(text string) int {
	return len(textmatch.FindAll(text, a.lex.RegulatoryTerms)) +
		len(textmatch.FindAll(text, a.lex.EthicalTerms)) +
		len(textmatch.FindAll(text, a.lex.PrivacyTerms))
}
