package advanced

import (
	"math"

	"github.com/ppiankov/docent/internal/model"
	"github.com/ppiankov/docent/internal/score"
	"github.com/ppiankov/docent/internal/textmatch"
)

// Analyzer runs the four advanced modules: implementation readiness,
// obsolescence risk, hype-vs-reality and regulatory/ethical safety.
type Analyzer struct {
	lex *textmatch.Lexicon
}

// NewAnalyzer creates an advanced-module analyzer over the given lexicon
func NewAnalyzer(lex *textmatch.Lexicon) *Analyzer {
	return &Analyzer{lex: lex}
}

// Readiness checks which implementation artifacts the document actually
// ships and how concrete its resourcing, timeline and prerequisites are.
// Composite: round(0.3·artifact + 0.25·resource + 0.25·timeline + 0.2·prereq).
func (a *Analyzer) Readiness(text string) model.ReadinessResult {
	artifacts := model.ArtifactChecklist{
		Code:       textmatch.Count(text, a.lex.CodeArtifacts) > 0,
		Config:     textmatch.Count(text, a.lex.ConfigArtifacts) > 0,
		Checklists: textmatch.Count(text, a.lex.ChecklistArtifacts) > 0,
		Diagrams:   textmatch.Count(text, a.lex.DiagramArtifacts) > 0,
		Templates:  textmatch.Count(text, a.lex.TemplateArtifacts) > 0,
		APIDefs:    textmatch.Count(text, a.lex.APIArtifacts) > 0,
	}

	present := 0
	for _, ok := range []bool{
		artifacts.Code, artifacts.Config, artifacts.Checklists,
		artifacts.Diagrams, artifacts.Templates, artifacts.APIDefs,
	} {
		if ok {
			present++
		}
	}
	artifactScore := int(math.Round(float64(present) / 6 * 10))

	resource := subScore(
		textmatch.Count(text, a.lex.ResourceExplicit),
		textmatch.Count(text, a.lex.ResourceVague),
	)
	timeline := subScore(
		textmatch.Count(text, a.lex.TimelineExplicit),
		textmatch.Count(text, a.lex.TimelineVague),
	)
	prereq := score.Clamp(int(math.Round(score.PresenceScore(
		textmatch.Count(text, a.lex.PrereqExplicit), 5))), 1, 10)

	readiness := int(math.Round(
		0.3*float64(artifactScore) +
			0.25*float64(resource) +
			0.25*float64(timeline) +
			0.2*float64(prereq)))

	verdict := model.VerdictAspirational
	switch {
	case readiness >= 7:
		verdict = model.VerdictReady
	case readiness >= 4:
		verdict = model.VerdictPartial
	}

	return model.ReadinessResult{
		Artifacts:                artifacts,
		ArtifactScore:            artifactScore,
		ResourceClarity:          resource,
		TimelineSpecificity:      timeline,
		PrerequisiteExplicitness: prereq,
		Readiness:                readiness,
		Verdict:                  verdict,
	}
}

// subScore turns opposing explicit-vs-vague counts into a 1-10 score
func subScore(explicit, vague int) int {
	return score.Clamp(int(math.Round(score.RatioScore(explicit, vague))), 1, 10)
}
