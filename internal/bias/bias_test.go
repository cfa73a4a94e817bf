package bias

import (
	"strings"
	"testing"

	"github.com/ppiankov/docent/internal/model"
	"github.com/ppiankov/docent/internal/textmatch"
)

func newTestDetector() *Detector {
	return NewDetector(textmatch.DefaultLexicon())
}

func detect(d *Detector, text string) model.BiasResult {
	return d.Detect(text, textmatch.SplitSentences(text))
}

func TestDetect_CleanText(t *testing.T) {
	d := newTestDetector()
	r := detect(d, `The report compares three vendors on cost, support and uptime.
Two pilots had known issues; the third had a shorter payback period.`)

	if len(r.Instances) != 0 {
		t.Errorf("expected no bias instances, got %v", r.Instances)
	}
	if r.OverallScore != 0 {
		t.Errorf("expected overall score 0, got %d", r.OverallScore)
	}
}

func TestDetect_ConfirmationBias(t *testing.T) {
	d := newTestDetector()

	// Positive terms far outweigh negatives, with zero negatives at all
	text := strings.Repeat("Proven success and growth boost the win. ", 4)
	r := detect(d, text)

	found := false
	for _, b := range r.Instances {
		if b.Type == model.BiasConfirmation {
			found = true
			if b.Severity != model.SeverityHigh {
				t.Errorf("expected high severity with zero negatives, got %q", b.Severity)
			}
		}
	}
	if !found {
		t.Errorf("expected confirmation bias, got %v", r.Instances)
	}
}

func TestDetect_SurvivorshipBias(t *testing.T) {
	d := newTestDetector()

	text := `The first case study shows a customer win. A second success story and a
third testimonial confirm the pattern across industries and deployment sizes.`
	r := detect(d, text)

	found := false
	for _, b := range r.Instances {
		if b.Type == model.BiasSurvivorship {
			found = true
			if b.Severity != model.SeverityHigh {
				t.Errorf("expected high severity, got %q", b.Severity)
			}
		}
	}
	if !found {
		t.Errorf("expected survivorship bias, got %v", r.Instances)
	}
}

func TestDetect_SurvivorshipSuppressedByAcknowledgment(t *testing.T) {
	d := newTestDetector()

	text := `The first case study shows a customer win. A second success story and a
third testimonial confirm the pattern. One early rollout didn't work as planned.`
	r := detect(d, text)

	for _, b := range r.Instances {
		if b.Type == model.BiasSurvivorship {
			t.Errorf("acknowledged failure should suppress survivorship bias")
		}
	}
}

func TestDetect_SelectionBias(t *testing.T) {
	d := newTestDetector()

	text := `Our survey of users found high satisfaction, and our analysis of churn
confirms the trend across all segments of the customer base.`
	r := detect(d, text)

	found := false
	for _, b := range r.Instances {
		if b.Type == model.BiasSelection && b.Severity == model.SeverityMedium {
			found = true
		}
	}
	if !found {
		t.Errorf("expected medium-severity selection bias, got %v", r.Instances)
	}
}

func TestDetect_SelectionSuppressedByExternalEvidence(t *testing.T) {
	d := newTestDetector()

	text := `Our survey of users found high satisfaction, and our analysis confirms
the trend. An independent, peer-reviewed study reached the same conclusion.`
	r := detect(d, text)

	for _, b := range r.Instances {
		if b.Type == model.BiasSelection {
			t.Errorf("external evidence should suppress selection bias")
		}
	}
}

func TestDetect_CompoundingSum(t *testing.T) {
	d := newTestDetector()

	// Fires confirmation (high, 30), survivorship (high, 30), selection
	// (medium, 15) and authority (low, 5) together: scores SUM, not average
	text := strings.Repeat("Proven success and growth boost the win. ", 4) +
		`A case study, a success story and a testimonial confirm it.
Our survey and our analysis agree. Experts agree, analysts say so, and Gartner
and Forrester concur.`
	r := detect(d, text)

	if len(r.Instances) < 4 {
		t.Fatalf("expected at least 4 fired rules, got %d: %v", len(r.Instances), r.Instances)
	}

	total := 0
	for _, b := range r.Instances {
		total += severityWeight(b.Severity)
	}
	if r.OverallScore != total {
		t.Errorf("expected compounding sum %d, got %d", total, r.OverallScore)
	}
	if r.OverallScore <= 30 {
		t.Errorf("compounding biases should exceed any single rule weight, got %d", r.OverallScore)
	}
}

func TestSeverityWeight(t *testing.T) {
	if severityWeight(model.SeverityHigh) != 30 {
		t.Error("expected 30 for high")
	}
	if severityWeight(model.SeverityMedium) != 15 {
		t.Error("expected 15 for medium")
	}
	if severityWeight(model.SeverityLow) != 5 {
		t.Error("expected 5 for low")
	}
}

func TestDetect_OverallScoreClamped(t *testing.T) {
	d := newTestDetector()
	r := detect(d, "nothing remarkable here in this plain paragraph of text")
	if r.OverallScore < 0 || r.OverallScore > 100 {
		t.Errorf("overall score out of range: %d", r.OverallScore)
	}
}
