package advanced

import (
	"github.com/ppiankov/docent/internal/model"
	"github.com/ppiankov/docent/internal/score"
	"github.com/ppiankov/docent/internal/textmatch"
)

// Obsolescence scores how dated the document's technical references are:
// risk = clamp(15×outdated − 5×current + 10×missing_practices, 0, 100),
// where missing practices counts watchlist terms entirely absent from
// the text.
func (a *Analyzer) Obsolescence(text string) model.ObsolescenceResult {
	outdated := textmatch.FindAll(text, a.lex.OutdatedRefs)
	current := textmatch.FindAll(text, a.lex.CurrentRefs)

	var missing []string
	for _, practice := range a.lex.CriticalPractices {
		if textmatch.Count(text, []string{practice}) == 0 {
			missing = append(missing, practice)
		}
	}

	risk := score.Clamp(15*len(outdated)-5*len(current)+10*len(missing), 0, 100)

	level := model.RiskCritical
	switch {
	case risk < 25:
		level = model.RiskLow
	case risk < 50:
		level = model.RiskModerate
	case risk < 75:
		level = model.RiskHigh
	}

	return model.ObsolescenceResult{
		OutdatedRefs:     outdated,
		CurrentRefs:      current,
		MissingPractices: missing,
		RiskScore:        risk,
		RiskLevel:        level,
	}
}
