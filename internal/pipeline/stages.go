package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ppiankov/docent/internal/llm"
	"github.com/ppiankov/docent/internal/model"
	"github.com/ppiankov/docent/internal/worker"
)

// systemPrompt is shared by all four stages
const systemPrompt = `You are a document trust analyst. You assess business documents
(vendor pitches, consulting proposals, whitepapers) for trustworthiness. You are
grounded by deterministic pattern-analysis results supplied with each request.
Respond with a single JSON object and nothing else.`

// Stage describes one step of the external pipeline. The four stages are
// ordered and chained: each prompt carries the parsed output of all prior
// stages, so they cannot run in parallel.
type Stage struct {
	Name          string
	Instructions  string
	Temperature   float32
	MaxTokens     int
	IncludeImages bool
}

// Stage names, fixed order
const (
	StageProfile   = "document_profile"
	StageForensics = "forensics_review"
	StageRisk      = "risk_assessment"
	StageSynthesis = "synthesis"
)

// Stages returns the fixed ordered stage descriptors
func Stages() []Stage {
	return []Stage{
		{
			Name: StageProfile,
			Instructions: `Classify the document. Return JSON with objects
"provider_consumer", "originator_scale", "target_scale", "audience_level",
"rarity_index" (each with integer "composite_score" 0-100, integer
"confidence" 0-100 and string "classification"), plus integer
"visual_score" 0-100 judging how visually supported the document is.`,
			Temperature:   0.2,
			MaxTokens:     2000,
			IncludeImages: true,
		},
		{
			Name: StageForensics,
			Instructions: `Review the document's rhetoric. Return JSON with integer
"manipulation_index" 0-100, integer "fluff_score" 0-100, and
"notable_facts": an array of up to 5 objects with string "fact", string
"rationale", boolean "is_contrarian", boolean "is_quantified".`,
			Temperature: 0.2,
			MaxTokens:   2000,
		},
		{
			Name: StageRisk,
			Instructions: `Assess delivery and compliance risk. Return JSON with objects:
"readiness" {"readiness_score" 0-10, "verdict" one of "Ready","Partial","Aspirational"},
"obsolescence" {"risk_score" 0-100, "risk_level" one of "Low","Moderate","High","Critical"},
"hype_reality" {"hype_score" 0-100, "classification" one of "Sales Propaganda","Optimistic","Balanced"},
"regulatory" {"safety_score" 0-100, "safety_level" one of "High Risk","Review","Safe"},
"bias" {"overall_score" 0-100, "instances": array of {"type","severity","evidence"}}.`,
			Temperature: 0.2,
			MaxTokens:   2000,
		},
		{
			Name: StageSynthesis,
			Instructions: `Synthesize everything above. Return JSON with string "summary"
(an executive paragraph on how far this document should be trusted) and
integer "overall_trust_score" 0-100.`,
			Temperature: 0.2,
			MaxTokens:   1200,
		},
	}
}

// StageOutput is one stage's parsed JSON payload
type StageOutput struct {
	Name   string
	Fields map[string]any
}

// Orchestrator drives the sequential four-stage external pipeline. A
// stage that exhausts its retry budget aborts the whole chain; partial
// layer output is never surfaced.
type Orchestrator struct {
	provider   llm.Provider
	limiter    *worker.Limiter
	textBudget int
	maxRetries int
	verbose    bool
}

// NewOrchestrator creates an orchestrator over the given provider
func NewOrchestrator(provider llm.Provider, limiter *worker.Limiter, textBudget, maxRetries int, verbose bool) *Orchestrator {
	if textBudget <= 0 {
		textBudget = 24_000
	}
	if maxRetries < 0 {
		maxRetries = 2
	}
	return &Orchestrator{
		provider:   provider,
		limiter:    limiter,
		textBudget: textBudget,
		maxRetries: maxRetries,
		verbose:    verbose,
	}
}

// Run executes the four stages in order, chaining each stage's parsed
// output into the next stage's prompt.
func (o *Orchestrator) Run(ctx context.Context, text string, images []model.PageImage, pre model.HeuristicPrePass) ([]StageOutput, error) {
	preJSON, err := json.Marshal(pre)
	if err != nil {
		return nil, fmt.Errorf("marshal pre-pass: %w", err)
	}

	capped := text
	if len(capped) > o.textBudget {
		capped = capped[:o.textBudget]
	}

	var outputs []StageOutput
	for _, stage := range Stages() {
		prompt := o.buildPrompt(stage, capped, string(preJSON), outputs)

		req := llm.CompletionRequest{
			System:      systemPrompt,
			Prompt:      prompt,
			Temperature: stage.Temperature,
			MaxTokens:   stage.MaxTokens,
		}
		if stage.IncludeImages {
			req.Images = images
		}

		fields, err := o.callStage(ctx, stage.Name, req)
		if err != nil {
			return nil, fmt.Errorf("stage %s: %w", stage.Name, err)
		}

		outputs = append(outputs, StageOutput{Name: stage.Name, Fields: fields})
	}

	return outputs, nil
}

// callStage issues one stage call with the retry policy: up to maxRetries
// retries, exponential backoff (1s, 2s, ...) on rate-limit signals, a flat
// short pause on everything else. Malformed JSON counts as a failed attempt.
func (o *Orchestrator) callStage(ctx context.Context, name string, req llm.CompletionRequest) (map[string]any, error) {
	var lastErr error

	for attempt := 0; attempt <= o.maxRetries; attempt++ {
		if attempt > 0 {
			pause := 500 * time.Millisecond
			if llm.IsRateLimit(lastErr) {
				pause = time.Duration(1<<(attempt-1)) * time.Second
			}
			if o.verbose {
				fmt.Fprintf(os.Stderr, "Stage %s attempt %d failed (%v), retrying in %v\n",
					name, attempt, lastErr, pause)
			}
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(pause):
			}
		}

		if o.limiter != nil {
			if err := o.limiter.Wait(ctx, o.provider.Name()); err != nil {
				return nil, err
			}
		}

		resp, err := o.provider.Complete(ctx, req)
		if err != nil {
			lastErr = err
			continue
		}

		fields, err := parseStagePayload(resp.Text)
		if err != nil {
			lastErr = err
			continue
		}

		return fields, nil
	}

	return nil, fmt.Errorf("retries exhausted: %w", lastErr)
}

func (o *Orchestrator) buildPrompt(stage Stage, text, preJSON string, prior []StageOutput) string {
	var b strings.Builder

	b.WriteString(stage.Instructions)
	b.WriteString("\n\n=== DOCUMENT TEXT (may be truncated) ===\n")
	b.WriteString(text)
	b.WriteString("\n\n=== DETERMINISTIC PRE-PASS ===\n")
	b.WriteString(preJSON)

	b.WriteString("\n\n=== PRIOR STAGE RESULTS ===\n")
	if len(prior) == 0 {
		b.WriteString("(none)")
	} else {
		for _, out := range prior {
			payload, err := json.Marshal(out.Fields)
			if err != nil {
				payload = []byte("{}")
			}
			fmt.Fprintf(&b, "%s: %s\n", out.Name, payload)
		}
	}

	b.WriteString("\n\nRespond with a single JSON object only.")
	return b.String()
}

// parseStagePayload strips optional code-fence wrapping and parses the
// body as a single JSON object. Anything else is a stage failure.
func parseStagePayload(raw string) (map[string]any, error) {
	body := stripFences(raw)

	var fields map[string]any
	if err := json.Unmarshal([]byte(body), &fields); err != nil {
		return nil, fmt.Errorf("malformed JSON response: %w", err)
	}
	return fields, nil
}

func stripFences(raw string) string {
	body := strings.TrimSpace(raw)
	if !strings.HasPrefix(body, "```") {
		return body
	}

	body = strings.TrimPrefix(body, "```json")
	body = strings.TrimPrefix(body, "```")
	body = strings.TrimSuffix(strings.TrimSpace(body), "```")
	return strings.TrimSpace(body)
}
