package bias

import (
	"fmt"
	"regexp"

	"github.com/ppiankov/docent/internal/model"
	"github.com/ppiankov/docent/internal/score"
	"github.com/ppiankov/docent/internal/textmatch"
)

var failureAckRe = regexp.MustCompile(`(?i)\bmay not\b|\blimitations?\b|\bdidn'?t work\b|\bwe failed\b|\brisks include\b|\bchallenges remain\b|\bno guarantee\b|\bnot suitable\b|\bknown issues\b`)

// Detector runs five independent bias rule checks. Each rule either
// fires or does not; fired rules produce one BiasInstance each.
type Detector struct {
	lex *textmatch.Lexicon
}

// NewDetector creates a bias detector over the given lexicon
func NewDetector(lex *textmatch.Lexicon) *Detector {
	return &Detector{lex: lex}
}

// severityWeight is the contribution of one fired rule to the overall
// score. The overall score is a severity-weighted SUM clamped to 0-100,
// not an average: simultaneous biases compound.
func severityWeight(severity string) int {
	switch severity {
	case model.SeverityHigh:
		return 30
	case model.SeverityMedium:
		return 15
	default:
		return 5
	}
}

// Detect evaluates all five rules against the text
func (d *Detector) Detect(text string, sentences []string) model.BiasResult {
	var instances []model.BiasInstance

	add := func(biasType, severity, evidence string) {
		instances = append(instances, model.BiasInstance{
			Type:     biasType,
			Severity: severity,
			Evidence: evidence,
		})
	}

	positive := textmatch.Count(text, d.lex.PositiveTerms)
	negative := textmatch.Count(text, d.lex.NegativeTerms)

	// Confirmation: overwhelming positive framing with nothing weighed
	// against it.
	if positive >= 10 && positive >= 10*maxInt(negative, 1) {
		severity := model.SeverityMedium
		if negative == 0 {
			severity = model.SeverityHigh
		}
		add(model.BiasConfirmation, severity,
			fmt.Sprintf("%d positive terms against %d negative terms", positive, negative))
	}

	// Survivorship: success stories with zero acknowledged failures
	successes := textmatch.Count(text, d.lex.CaseStudyTerms)
	failures := 0
	for _, s := range sentences {
		if failureAckRe.MatchString(s) {
			failures++
		}
	}
	if successes >= 3 && failures == 0 {
		add(model.BiasSurvivorship, model.SeverityHigh,
			fmt.Sprintf("%d success stories, zero acknowledged failures", successes))
	}

	// Selection: first-party evidence only, no independent sources
	internal := textmatch.Count(text, d.lex.InternalEvidenceTerms)
	external := textmatch.Count(text, d.lex.ExternalEvidenceTerms)
	if internal >= 2 && external == 0 {
		add(model.BiasSelection, model.SeverityMedium,
			fmt.Sprintf("%d first-party evidence citations, no independent sources", internal))
	}

	// Recency: only-the-latest framing with no long-term view
	recent := textmatch.Count(text, d.lex.RecencyTerms)
	longTerm := textmatch.Count(text, d.lex.LongTermTerms)
	if recent >= 4 && longTerm == 0 {
		add(model.BiasRecency, model.SeverityLow,
			fmt.Sprintf("%d recency framings, no long-term context", recent))
	}

	// Authority: leaning on named authorities instead of data
	authority := textmatch.Count(text, d.lex.AuthorityPhrases)
	if authority >= 3 {
		severity := model.SeverityLow
		if internal == 0 && external == 0 {
			severity = model.SeverityMedium
		}
		add(model.BiasAuthority, severity,
			fmt.Sprintf("%d appeals to named authorities", authority))
	}

	total := 0
	for _, b := range instances {
		total += severityWeight(b.Severity)
	}

	return model.BiasResult{
		Instances:    instances,
		OverallScore: score.Clamp(total, 0, 100),
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
