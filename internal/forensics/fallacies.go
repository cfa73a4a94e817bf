package forensics

import (
	"math"
	"regexp"

	"github.com/ppiankov/docent/internal/model"
	"github.com/ppiankov/docent/internal/textmatch"
)

// maxPerFallacyType bounds reported instances so one rhetorical tic
// doesn't flood the findings.
const maxPerFallacyType = 3

// fallacyRule pairs a taxonomy member with its sentence-level pattern
type fallacyRule struct {
	fallacyType string
	re          *regexp.Regexp
}

// The closed fallacy taxonomy. Order is fixed so output is deterministic.
var fallacyRules = []fallacyRule{
	{model.FallacyFalseDichotomy, regexp.MustCompile(`(?i)\beither\b.{3,80}\bor\b|\bthe only (?:alternative|option|choice)\b|\byou have two choices\b`)},
	{model.FallacyAppealToAuthority, regexp.MustCompile(`(?i)\bexperts agree\b|\baccording to leading\b|\banalysts (?:say|confirm|agree)\b|\bindustry leaders (?:recognize|agree)\b`)},
	{model.FallacyStrawMan, regexp.MustCompile(`(?i)\bcritics (?:claim|say|argue)\b|\bsome (?:say|claim|argue)\b.{3,80}\bbut\b|\bopponents argue\b`)},
	{model.FallacyPostHoc, regexp.MustCompile(`(?i)\b(?:after|since) (?:implementing|adopting|deploying|switching)\b.{3,120}\b(?:grew|increased|improved|doubled|tripled|soared)\b`)},
	{model.FallacySunkCost, regexp.MustCompile(`(?i)\balready invested\b|\btoo far along\b|\bcan'?t turn back\b|\bcome this far\b`)},
}

// Fallacies classifies sentences against the fallacy taxonomy, capping
// reported instances per type, and computes density per 1000 words.
func (f *Forensics) Fallacies(text string, sentences []string) model.FallacyFindings {
	var instances []model.FallacyInstance
	for _, rule := range fallacyRules {
		found := 0
		for _, s := range sentences {
			if found >= maxPerFallacyType {
				break
			}
			if rule.re.MatchString(s) {
				instances = append(instances, model.FallacyInstance{
					Type:     rule.fallacyType,
					Sentence: s,
				})
				found++
			}
		}
	}

	density := 0.0
	if words := textmatch.WordCount(text); words > 0 {
		density = math.Round(float64(len(instances))/float64(words)*1000*100) / 100
	}

	return model.FallacyFindings{
		Instances:      instances,
		DensityPer1000: density,
	}
}
