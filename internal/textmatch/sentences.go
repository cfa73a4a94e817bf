package textmatch

import (
	"regexp"
	"strings"
)

var wordRe = regexp.MustCompile(`[A-Za-z0-9][A-Za-z0-9'&/.-]*`)

// Words tokenizes text into words
func Words(text string) []string {
	return wordRe.FindAllString(text, -1)
}

// WordCount returns the number of word tokens in text
func WordCount(text string) int {
	return len(Words(text))
}

// SplitSentences splits text into sentences using a simple terminator
// heuristic. Very short fragments are dropped; overly long runs are kept
// (business documents love bullet walls with no terminators).
func SplitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	flush := func() {
		sentence := strings.TrimSpace(current.String())
		if len(sentence) >= 15 {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	for i, r := range text {
		current.WriteRune(r)

		if r == '.' || r == '!' || r == '?' {
			// Look ahead to avoid splitting on abbreviations and decimals
			if i+1 >= len(text) || text[i+1] == ' ' || text[i+1] == '\t' {
				flush()
			}
		}
	}

	if current.Len() > 0 {
		flush()
	}

	return sentences
}

// SyllableEstimate approximates the syllable count of a word by counting
// vowel groups. Good enough for a Gunning-Fog-style readability estimate.
func SyllableEstimate(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}
