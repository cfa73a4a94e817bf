package advanced

import (
	"math"
	"regexp"

	"github.com/ppiankov/docent/internal/model"
	"github.com/ppiankov/docent/internal/score"
	"github.com/ppiankov/docent/internal/textmatch"
)

var failureAckRe = regexp.MustCompile(`(?i)\bmay not\b|\blimitations?\b|\bdidn'?t work\b|\bwe failed\b|\brisks include\b|\bchallenges remain\b|\bno guarantee\b|\bnot suitable\b|\bknown issues\b`)

// Hype compares promotional sentiment against acknowledged failure.
// "Sales Propaganda" requires positive_pct > 90 AND exactly zero failure
// acknowledgments; the cutoff is hard, not smoothed.
func (a *Analyzer) Hype(text string, sentences []string) model.HypeResult {
	positive := textmatch.Count(text, a.lex.PositiveTerms)
	negative := textmatch.Count(text, a.lex.NegativeTerms)

	positivePct := 50.0
	if positive+negative > 0 {
		positivePct = float64(positive) / float64(positive+negative) * 100
	}
	positivePct = math.Round(positivePct*100) / 100

	failures := 0
	for _, s := range sentences {
		if failureAckRe.MatchString(s) {
			failures++
		}
	}

	hype := score.Clamp(int(math.Round(positivePct))-5*failures, 0, 100)

	classification := model.HypeBalanced
	switch {
	case positivePct > 90 && failures == 0:
		classification = model.HypeSalesPropaganda
	case positivePct > 75:
		classification = model.HypeOptimistic
	}

	return model.HypeResult{
		PositivePct:            positivePct,
		PositiveCount:          positive,
		NegativeCount:          negative,
		FailureAcknowledgments: failures,
		HypeScore:              hype,
		Classification:         classification,
	}
}
