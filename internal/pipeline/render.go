package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/docent/internal/model"
)

// Renderer writes analysis results as JSON and Markdown reports
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the result as indented JSON
func (r *Renderer) RenderJSON(result *model.AnalysisResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// RenderMarkdown writes a human-readable report
func (r *Renderer) RenderMarkdown(result *model.AnalysisResult, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Trust Report: %s\n\n", orUntitled(result.Document))
	fmt.Fprintf(&b, "**Overall Trust Score: %d/100** (engine: %s)\n\n", result.OverallTrustScore, result.Engine)
	fmt.Fprintf(&b, "%s\n\n", result.Summary)

	b.WriteString("## Classification\n\n")
	b.WriteString("| Module | Composite | Confidence | Classification |\n")
	b.WriteString("|--------|-----------|------------|----------------|\n")
	writeModuleRow(&b, "Provider vs Consumer", result.ProviderConsumer)
	writeModuleRow(&b, "Originator Scale", result.OriginatorScale)
	writeModuleRow(&b, "Target Scale", result.TargetScale)
	writeModuleRow(&b, "Audience Level", result.AudienceLevel)
	writeModuleRow(&b, "Rarity Index", result.RarityIndex)
	b.WriteString("\n")

	b.WriteString("## Forensics\n\n")
	fmt.Fprintf(&b, "- Manipulation index: %d/100 (%d weasel-word types, %d urgency phrases)\n",
		result.Forensics.Deception.ManipulationIndex,
		len(result.Forensics.Deception.WeaselTerms),
		len(result.Forensics.Deception.UrgencyPhrases))
	fmt.Fprintf(&b, "- Fallacies: %d instances, %.2f per 1000 words\n",
		len(result.Forensics.Fallacies.Instances), result.Forensics.Fallacies.DensityPer1000)
	fmt.Fprintf(&b, "- Fluff score: %d/100 (fog %.1f, adj/verb %.2f, %d unique data points)\n\n",
		result.Forensics.Fluff.FluffScore, result.Forensics.Fluff.FogIndex,
		result.Forensics.Fluff.AdjectiveVerbRatio, result.Forensics.Fluff.UniqueDataPoints)

	b.WriteString("## Risk Modules\n\n")
	fmt.Fprintf(&b, "- Implementation readiness: %d/10 — %s\n", result.Readiness.Readiness, result.Readiness.Verdict)
	fmt.Fprintf(&b, "- Obsolescence risk: %d/100 — %s\n", result.Obsolescence.RiskScore, result.Obsolescence.RiskLevel)
	fmt.Fprintf(&b, "- Hype vs reality: %d/100 — %s (%.0f%% positive, %d failure acknowledgments)\n",
		result.HypeReality.HypeScore, result.HypeReality.Classification,
		result.HypeReality.PositivePct, result.HypeReality.FailureAcknowledgments)
	fmt.Fprintf(&b, "- Regulatory safety: %d/100 — %s", result.Regulatory.SafetyScore, result.Regulatory.SafetyLevel)
	if len(result.Regulatory.RedFlags) > 0 {
		b.WriteString("\n")
		for _, flag := range result.Regulatory.RedFlags {
			fmt.Fprintf(&b, "  - 🚩 %s\n", flag)
		}
	} else {
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "- Bias: %d/100 (%d indicators)\n\n", result.Bias.OverallScore, len(result.Bias.Instances))

	if len(result.NotableFacts) > 0 {
		b.WriteString("## Notable Facts\n\n")
		for _, f := range result.NotableFacts {
			tags := ""
			if f.IsQuantified {
				tags += " [quantified]"
			}
			if f.IsContrarian {
				tags += " [contrarian]"
			}
			fmt.Fprintf(&b, "- %s%s\n", f.Fact, tags)
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\nGenerated by Docent • analyzed %s\n",
			result.AnalyzedAt.Format("2006-01-02 15:04 UTC"))
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}

// RenderSummary prints a short summary to stdout
func (r *Renderer) RenderSummary(result *model.AnalysisResult) {
	fmt.Printf("\nTrust Score: %d/100 (%s)\n", result.OverallTrustScore, result.Engine)
	fmt.Printf("  Orientation:  %s (%d)\n", result.ProviderConsumer.Classification, result.ProviderConsumer.CompositeScore)
	fmt.Printf("  Hype:         %s (%d)\n", result.HypeReality.Classification, result.HypeReality.HypeScore)
	fmt.Printf("  Readiness:    %s (%d/10)\n", result.Readiness.Verdict, result.Readiness.Readiness)
	fmt.Printf("  Obsolescence: %s (%d)\n", result.Obsolescence.RiskLevel, result.Obsolescence.RiskScore)
	fmt.Printf("  Safety:       %s (%d)\n", result.Regulatory.SafetyLevel, result.Regulatory.SafetyScore)
}

func writeModuleRow(b *strings.Builder, name string, m model.ModuleResult) {
	fmt.Fprintf(b, "| %s | %d | %d%% | %s |\n", name, m.CompositeScore, m.Confidence, m.Classification)
}

func orUntitled(name string) string {
	if name == "" {
		return "(untitled document)"
	}
	return name
}
