package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/docent/internal/cache"
	"github.com/ppiankov/docent/internal/extract"
	"github.com/ppiankov/docent/internal/llm"
	"github.com/ppiankov/docent/internal/model"
	"github.com/ppiankov/docent/internal/textmatch"
	"github.com/ppiankov/docent/internal/worker"
)

// Document is one analysis request: extracted text plus optional rendered
// page images for the first external stage.
type Document struct {
	Name   string
	Text   string
	Images []model.PageImage
}

// Pipeline orchestrates a complete document analysis: heuristic modules,
// the optional staged external pipeline, merge and caching.
type Pipeline struct {
	analyzer     *Analyzer
	orchestrator *Orchestrator
	resultCache  cache.Cache
	cacheTTL     time.Duration
	config       *model.Config
	renderer     *Renderer
	fetcher      *extract.Fetcher
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var orch *Orchestrator
	if cfg.LLM.Provider != "" {
		provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else if provider != nil {
			limiter := worker.NewLimiter(cfg.LLM.RequestsPerSecond, 1)
			orch = NewOrchestrator(provider, limiter, cfg.LLM.TextBudget,
				cfg.LLM.MaxRetries, cfg.Output.Verbose)
		}
	}

	var resultCache cache.Cache
	if cfg.Cache.Enabled {
		resultCache = cache.NewMemoryCache(cfg.Cache.TTL, 10*time.Minute)
	}

	return &Pipeline{
		analyzer:     NewAnalyzer(),
		orchestrator: orch,
		resultCache:  resultCache,
		cacheTTL:     cfg.Cache.TTL,
		config:       cfg,
		renderer:     NewRenderer(cfg.Output.IncludeFooter),
		fetcher:      extract.NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes),
	}
}

// ExternalEnabled reports whether the staged external pipeline is active
func (p *Pipeline) ExternalEnabled() bool {
	return p.orchestrator != nil
}

// Analyze runs one document through the full analysis. The external
// pipeline is best-effort enrichment: if any stage exhausts its retries
// the whole chain is discarded and the heuristic-only result stands.
func (p *Pipeline) Analyze(ctx context.Context, doc Document) (*model.AnalysisResult, error) {
	if err := p.validate(doc); err != nil {
		return nil, err
	}

	key := cache.Key(doc.Text)
	if p.resultCache != nil {
		if raw, found := p.resultCache.Get(key); found {
			var cached model.AnalysisResult
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	heuristic := p.analyzer.Analyze(doc.Text)

	result := heuristic
	if p.orchestrator != nil {
		pre := p.analyzer.PrePass(doc.Text)
		outputs, err := p.orchestrator.Run(ctx, doc.Text, doc.Images, pre)
		if err != nil {
			// Degradation happens at whole-pipeline level only: no
			// partial layer output survives.
			fmt.Fprintf(os.Stderr, "Warning: external pipeline failed (%v), using heuristic-only result\n", err)
		} else {
			result = Merge(heuristic, outputs)
		}
	}

	final := *result
	final.Document = doc.Name
	result = &final

	if p.resultCache != nil {
		if raw, err := json.Marshal(result); err == nil {
			_ = p.resultCache.Set(key, raw, p.cacheTTL)
		}
	}

	return result, nil
}

// validate rejects bad input before any analysis runs
func (p *Pipeline) validate(doc Document) error {
	if doc.Text == "" {
		return fmt.Errorf("empty document text")
	}
	if max := p.config.Analysis.MaxTextBytes; max > 0 && len(doc.Text) > max {
		return fmt.Errorf("document too large: %d bytes (max %d)", len(doc.Text), max)
	}
	if min := p.config.Analysis.MinWords; min > 0 {
		if words := textmatch.WordCount(doc.Text); words < min {
			return fmt.Errorf("document too short: %d words (min %d)", words, min)
		}
	}
	return nil
}

// RenderResult renders the result to the configured outputs
func (p *Pipeline) RenderResult(result *model.AnalysisResult, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(result, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(result, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(result)
	return nil
}
