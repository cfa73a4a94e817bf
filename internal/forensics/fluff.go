package forensics

import (
	"math"
	"regexp"
	"strings"

	"github.com/ppiankov/docent/internal/model"
	"github.com/ppiankov/docent/internal/score"
	"github.com/ppiankov/docent/internal/textmatch"
)

var dataPointRe = regexp.MustCompile(`(?i)[$€£]?\d[\d,]*(?:\.\d+)?%?|\b(?:19|20)\d\d\b|\bq[1-4]\s?20\d\d\b`)

var adjectiveSuffixes = []string{"ive", "ous", "ful", "able", "ible", "ic", "less", "est"}
var verbSuffixes = []string{"ize", "ise", "ate", "ify"}

// Fluff measures substance-free writing: a Gunning-Fog-style readability
// estimate, a descriptive-word density proxy, and data sparsity, blended
// 40/30/30 into a 0-100 fluff score.
func (f *Forensics) Fluff(text string, sentences []string) model.FluffMetrics {
	words := textmatch.Words(text)
	wordCount := len(words)

	// Gunning-Fog estimate: 0.4 × (avg sentence length + % complex words)
	avgSentenceLen := 0.0
	if len(sentences) > 0 {
		avgSentenceLen = float64(wordCount) / float64(len(sentences))
	}
	complex := 0
	for _, w := range words {
		if textmatch.SyllableEstimate(w) >= 3 {
			complex++
		}
	}
	pctComplex := 0.0
	if wordCount > 0 {
		pctComplex = float64(complex) / float64(wordCount) * 100
	}
	fog := math.Round(0.4*(avgSentenceLen+pctComplex)*100) / 100

	// Adjective/verb ratio from suffix heuristics
	adjectives, verbs := 0, 0
	for _, w := range words {
		lower := strings.ToLower(w)
		if len(lower) < 5 {
			continue
		}
		if hasAnySuffix(lower, adjectiveSuffixes) {
			adjectives++
		} else if hasAnySuffix(lower, verbSuffixes) {
			verbs++
		}
	}
	ratio := float64(adjectives)
	if verbs > 0 {
		ratio = float64(adjectives) / float64(verbs)
	}
	ratio = math.Round(ratio*100) / 100

	unique := f.UniqueDataPoints(text)

	// Blend: 40% normalized fog, 30% normalized adjective/verb ratio,
	// 30% inverse normalized unique-data-point count. Each sub-term is
	// clamped to its own scale before blending.
	normFog := score.ClampF(fog/20*100, 0, 100)
	normAdj := score.ClampF(ratio/1.5*100, 0, 100)
	normData := score.ClampF(float64(unique)*5, 0, 100)

	fluff := score.Clamp(int(math.Round(0.4*normFog+0.3*normAdj+0.3*(100-normData))), 0, 100)

	return model.FluffMetrics{
		FogIndex:           fog,
		AdjectiveVerbRatio: ratio,
		UniqueDataPoints:   unique,
		FluffScore:         fluff,
	}
}

// UniqueDataPoints counts distinct numeric, percentage, currency and
// date tokens in the text.
func (f *Forensics) UniqueDataPoints(text string) int {
	seen := make(map[string]bool)
	for _, tok := range dataPointRe.FindAllString(text, -1) {
		seen[strings.ToLower(tok)] = true
	}
	return len(seen)
}

// DataIntensity maps the unique-data-point count onto a 0-100 score,
// saturating at 25 distinct data points.
func (f *Forensics) DataIntensity(text string) int {
	return score.Clamp(f.UniqueDataPoints(text)*4, 0, 100)
}

// VisualScore estimates how visually supported the document is from its
// references to figures, charts and tables.
func (f *Forensics) VisualScore(text string) int {
	return score.Clamp(textmatch.Count(text, f.lex.VisualTerms)*10, 0, 100)
}

func hasAnySuffix(word string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(word, s) {
			return true
		}
	}
	return false
}
