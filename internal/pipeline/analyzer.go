package pipeline

import (
	"fmt"
	"time"

	"github.com/ppiankov/docent/internal/advanced"
	"github.com/ppiankov/docent/internal/bias"
	"github.com/ppiankov/docent/internal/classify"
	"github.com/ppiankov/docent/internal/facts"
	"github.com/ppiankov/docent/internal/forensics"
	"github.com/ppiankov/docent/internal/model"
	"github.com/ppiankov/docent/internal/score"
	"github.com/ppiankov/docent/internal/textmatch"
)

// Analyzer runs the full heuristic path: every deterministic module over
// the raw text. It is pure and stateless; a single instance serves
// concurrent analyses.
type Analyzer struct {
	lex        *textmatch.Lexicon
	classifier *classify.Classifier
	forensics  *forensics.Forensics
	advanced   *advanced.Analyzer
	bias       *bias.Detector
	facts      *facts.Extractor
}

// NewAnalyzer creates an analyzer over the default lexicon
func NewAnalyzer() *Analyzer {
	lex := textmatch.DefaultLexicon()
	return &Analyzer{
		lex:        lex,
		classifier: classify.NewClassifier(lex),
		forensics:  forensics.NewForensics(lex),
		advanced:   advanced.NewAnalyzer(lex),
		bias:       bias.NewDetector(lex),
		facts:      facts.NewExtractor(lex),
	}
}

// PrePass computes the cheap deterministic snapshot used to ground the
// external stages. Reproducible from text alone; no I/O.
func (a *Analyzer) PrePass(text string) model.HeuristicPrePass {
	sentences := textmatch.SplitSentences(text)
	return model.HeuristicPrePass{
		Fluff:         a.forensics.Fluff(text, sentences),
		DataIntensity: a.forensics.DataIntensity(text),
		DeceptionRaw:  a.forensics.DeceptionRaw(text, sentences),
		RegulatoryRaw: a.advanced.MentionsRaw(text),
		WordCount:     textmatch.WordCount(text),
		SentenceCount: len(sentences),
	}
}

// Analyze produces a complete self-contained AnalysisResult with no
// external contribution; the overall trust score comes from the
// heuristic trust aggregator.
func (a *Analyzer) Analyze(text string) *model.AnalysisResult {
	sentences := textmatch.SplitSentences(text)

	result := &model.AnalysisResult{
		AnalyzedAt: time.Now().UTC(),
		Engine:     model.EngineHeuristic,

		ProviderConsumer: a.classifier.ProviderConsumer(text),
		OriginatorScale:  a.classifier.OriginatorScale(text),
		TargetScale:      a.classifier.TargetScale(text),
		AudienceLevel:    a.classifier.AudienceLevel(text),
		RarityIndex:      a.classifier.RarityIndex(text),

		Forensics: model.ForensicsResult{
			Deception: a.forensics.Deception(text, sentences),
			Fallacies: a.forensics.Fallacies(text, sentences),
			Fluff:     a.forensics.Fluff(text, sentences),
		},

		Readiness:    a.advanced.Readiness(text),
		Obsolescence: a.advanced.Obsolescence(text),
		HypeReality:  a.advanced.Hype(text, sentences),
		Regulatory:   a.advanced.Regulatory(text),

		VisualScore:   a.forensics.VisualScore(text),
		DataIntensity: a.forensics.DataIntensity(text),

		Bias:         a.bias.Detect(text, sentences),
		NotableFacts: a.facts.Extract(sentences),
	}

	result.OverallTrustScore = score.Trust(result)
	result.Summary = heuristicSummary(result)

	return result
}

// heuristicSummary builds a deterministic one-paragraph summary for the
// heuristic-only path. The external synthesis stage replaces it when the
// staged pipeline succeeds.
func heuristicSummary(r *model.AnalysisResult) string {
	return fmt.Sprintf(
		"Pattern-based assessment: trust %d/100. Orientation %s, hype posture %s, "+
			"implementation verdict %s, obsolescence risk %s, regulatory posture %s. "+
			"Manipulation index %d, fluff score %d, %d bias indicators fired.",
		r.OverallTrustScore,
		r.ProviderConsumer.Classification,
		r.HypeReality.Classification,
		r.Readiness.Verdict,
		r.Obsolescence.RiskLevel,
		r.Regulatory.SafetyLevel,
		r.Forensics.Deception.ManipulationIndex,
		r.Forensics.Fluff.FluffScore,
		len(r.Bias.Instances),
	)
}
