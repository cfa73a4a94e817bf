package facts

import (
	"regexp"
	"strings"

	"github.com/ppiankov/docent/internal/model"
	"github.com/ppiankov/docent/internal/textmatch"
)

// Extractor selects the handful of sentences most worth surfacing:
// quantified superlative claims first, contrarian statements second,
// importance-flagged sentences as backfill.
type Extractor struct {
	lex *textmatch.Lexicon
}

// NewExtractor creates a notable-fact extractor over the given lexicon
func NewExtractor(lex *textmatch.Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

const (
	maxFacts     = 5
	minFacts     = 3
	dedupePrefix = 40
)

var numericTokenRe = regexp.MustCompile(`\b\d[\d,]*(?:\.\d+)?%?`)

// Extract returns up to 5 notable facts from the sentences, deduplicated
// by a short text-prefix key.
func (e *Extractor) Extract(sentences []string) []model.NotableFact {
	var facts []model.NotableFact
	seen := make(map[string]bool)

	add := func(f model.NotableFact) bool {
		key := prefixKey(f.Fact)
		if seen[key] || len(facts) >= maxFacts {
			return false
		}
		seen[key] = true
		facts = append(facts, f)
		return true
	}

	// First preference: quantified superlative claims
	for _, s := range sentences {
		if len(facts) >= maxFacts {
			break
		}
		quantified := numericTokenRe.MatchString(s)
		superlative := textmatch.Count(s, e.lex.Superlatives) > 0
		if quantified && superlative {
			add(model.NotableFact{
				Fact:         s,
				Rationale:    "quantified superlative claim",
				IsContrarian: textmatch.Count(s, e.lex.ContrarianPhrases) > 0,
				IsQuantified: true,
			})
		}
	}

	// Second preference: contrarian statements
	for _, s := range sentences {
		if len(facts) >= maxFacts {
			break
		}
		if textmatch.Count(s, e.lex.ContrarianPhrases) > 0 {
			add(model.NotableFact{
				Fact:         s,
				Rationale:    "contrarian statement",
				IsContrarian: true,
				IsQuantified: numericTokenRe.MatchString(s),
			})
		}
	}

	// Backfill with importance-flagged sentences when the yield is thin
	if len(facts) < minFacts {
		for _, s := range sentences {
			if len(facts) >= minFacts {
				break
			}
			if textmatch.Count(s, e.lex.ImportanceTerms) > 0 {
				add(model.NotableFact{
					Fact:         s,
					Rationale:    "flagged as important by the author",
					IsContrarian: false,
					IsQuantified: numericTokenRe.MatchString(s),
				})
			}
		}
	}

	return facts
}

func prefixKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) > dedupePrefix {
		s = s[:dedupePrefix]
	}
	return s
}
