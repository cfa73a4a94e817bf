package forensics

import (
	"math"
	"regexp"
	"strings"

	"github.com/ppiankov/docent/internal/model"
	"github.com/ppiankov/docent/internal/score"
	"github.com/ppiankov/docent/internal/textmatch"
)

// Forensics runs the content-forensics analyzers (deception, fallacies,
// fluff) over raw text and its extracted sentences.
type Forensics struct {
	lex *textmatch.Lexicon
}

// NewForensics creates a forensics analyzer over the given lexicon
func NewForensics(lex *textmatch.Lexicon) *Forensics {
	return &Forensics{lex: lex}
}

var (
	percentRe = regexp.MustCompile(`\b\d+(?:\.\d+)?\s?%`)
	passiveRe = regexp.MustCompile(`(?i)\b(?:is|are|was|were|been|being|be)\s+\w+(?:ed|wn)\b`)
)

// Words that anchor a numeric claim to a baseline. A percentage in a
// sentence with none of these is counted as unanchored.
var baselineWords = []string{
	"compared", "versus", "vs", "from", "baseline", "than", "relative",
	"year-over-year", "previous",
}

const (
	maxUnanchored    = 10
	maxPassiveSample = 5
)

// Deception tallies manipulative-language markers and derives the
// manipulation index: total hits per ~500 words scaled onto 0-100.
func (f *Forensics) Deception(text string, sentences []string) model.DeceptionFindings {
	words := textmatch.WordCount(text)

	weasel := textmatch.FindWithCounts(text, f.lex.WeaselWords)
	urgency := textmatch.FindAll(text, f.lex.UrgencyPhrases)
	jargon := textmatch.FindAll(text, f.lex.JargonMasking)

	var unanchored []string
	for _, s := range sentences {
		if len(unanchored) >= maxUnanchored {
			break
		}
		if percentRe.MatchString(s) && !hasBaseline(s) {
			unanchored = append(unanchored, s)
		}
	}

	var passive []string
	for _, s := range sentences {
		if len(passive) >= maxPassiveSample {
			break
		}
		if passiveRe.MatchString(s) {
			passive = append(passive, s)
		}
	}

	total := 0
	for _, w := range weasel {
		total += w.Count
	}
	total += textmatch.Count(text, f.lex.UrgencyPhrases)
	total += textmatch.Count(text, f.lex.JargonMasking)
	total += len(unanchored)
	total += len(passive)

	index := 0
	if words > 0 {
		index = score.Clamp(int(math.Round(float64(total)/float64(words)*2000)), 0, 100)
	}

	return model.DeceptionFindings{
		WeaselTerms:       weasel,
		UnanchoredClaims:  unanchored,
		UrgencyPhrases:    urgency,
		JargonMasking:     jargon,
		PassiveSamples:    passive,
		ManipulationIndex: index,
	}
}

// DeceptionRaw is the total deception hit count exposed to the pre-pass
func (f *Forensics) DeceptionRaw(text string, sentences []string) int {
	d := f.Deception(text, sentences)
	total := 0
	for _, w := range d.WeaselTerms {
		total += w.Count
	}
	total += textmatch.Count(text, f.lex.UrgencyPhrases)
	total += textmatch.Count(text, f.lex.JargonMasking)
	total += len(d.UnanchoredClaims)
	total += len(d.PassiveSamples)
	return total
}

func hasBaseline(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, w := range baselineWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
