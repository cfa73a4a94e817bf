package textmatch

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/ppiankov/docent/internal/model"
)

// Matcher provides deterministic, case-insensitive pattern matching over
// document text. All operations are total functions: they never fail for
// well-formed text and have no side effects.

// CompileLiteral compiles a literal phrase into a case-insensitive,
// word-boundary-anchored regexp. Regex metacharacters in the phrase are
// escaped first, so dictionary entries like "p&l" or "soc 2" match literally.
func CompileLiteral(phrase string) *regexp.Regexp {
	escaped := regexp.QuoteMeta(strings.ToLower(phrase))

	// \b only anchors against word characters; skip it when the phrase
	// starts or ends with punctuation.
	expr := escaped
	if r := firstRune(phrase); isWordRune(r) {
		expr = `\b` + expr
	}
	if r := lastRune(phrase); isWordRune(r) {
		expr = expr + `\b`
	}

	return regexp.MustCompile(`(?i)` + expr)
}

// Count returns the total number of occurrences of all patterns in text.
// Patterns are literal phrases.
func Count(text string, patterns []string) int {
	total := 0
	for _, p := range patterns {
		total += len(CompileLiteral(p).FindAllStringIndex(text, -1))
	}
	return total
}

// CountExpr counts matches of a free-form regular expression, applied
// case-insensitively.
func CountExpr(text string, expr string) int {
	re := regexp.MustCompile(`(?i)` + expr)
	return len(re.FindAllStringIndex(text, -1))
}

// FindAll returns the patterns that occur in text at least once, in
// dictionary order, each reported once.
func FindAll(text string, patterns []string) []string {
	var found []string
	for _, p := range patterns {
		if CompileLiteral(p).MatchString(text) {
			found = append(found, p)
		}
	}
	return found
}

// FindWithCounts returns each matched term with its occurrence count,
// sorted descending by count. Ties break alphabetically so repeated runs
// on identical text yield byte-identical output.
func FindWithCounts(text string, wordlist []string) []model.TermCount {
	var counts []model.TermCount
	for _, term := range wordlist {
		n := len(CompileLiteral(term).FindAllStringIndex(text, -1))
		if n > 0 {
			counts = append(counts, model.TermCount{Term: term, Count: n})
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Term < counts[j].Term
	})

	return counts
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func lastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
