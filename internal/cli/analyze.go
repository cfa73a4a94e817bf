package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ppiankov/docent/internal/extract"
	"github.com/ppiankov/docent/internal/model"
	"github.com/ppiankov/docent/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON     string
	outMD       string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	noFooter    bool
	imagePaths  []string
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file|url>",
	Short: "Analyze a single document and generate a trust report",
	Long: `Analyze scores one document across every trust dimension:
- Provider/consumer orientation, originator and target scale
- Audience level and rarity of insight
- Manipulation, logical fallacies, and fluff forensics
- Implementation readiness, obsolescence, hype, and regulatory risk
- Cognitive bias patterns and notable facts

The deterministic pattern engine always runs. With --llm, a four-stage
external pipeline refines the scores; if it fails, the deterministic
result stands.

Example:
  docent analyze whitepaper.md
  docent analyze pitch.html --json report.json --md report.md
  docent analyze https://example.com/proposal --llm --llm-provider openai
  docent analyze deck.txt --llm --image page1.png --image page2.png`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	// Input flags
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().StringVar(&userAgent, "ua", "Docent/0.1 (+https://github.com/ppiankov/docent)", "HTTP User-Agent for URL sources")
	analyzeCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read from URL sources")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result cache")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	analyzeCmd.Flags().StringArrayVar(&imagePaths, "image", nil, "rendered page image for visual assessment (repeatable)")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable the staged LLM pipeline")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default if empty)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	source := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", source)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		if err := configureLLM(cfg); err != nil {
			return err
		}
	}

	p := pipeline.NewPipeline(cfg)

	if verbose && p.ExternalEnabled() {
		fmt.Fprintf(os.Stderr, "⚙️  External pipeline: %s\n", cfg.LLM.Provider)
	}

	var result *model.AnalysisResult
	var err error
	if isURL(source) || len(imagePaths) == 0 {
		result, err = p.AnalyzeSource(ctx, source)
	} else {
		result, err = analyzeFileWithImages(ctx, p, source)
	}
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Engine: %s\n", result.Engine)
		fmt.Fprintf(os.Stderr, "✓ Trust score: %d/100\n", result.OverallTrustScore)
		fmt.Fprintf(os.Stderr, "✓ Notable facts: %d\n", len(result.NotableFacts))
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderResult(result, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// configureLLM fills LLM config from flags and environment
func configureLLM(cfg *model.Config) error {
	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel

	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return nil
}

// analyzeFileWithImages handles the local-file path when --image flags
// supply rendered pages alongside the text.
func analyzeFileWithImages(ctx context.Context, p *pipeline.Pipeline, path string) (*model.AnalysisResult, error) {
	text, images, err := extract.Extract(path, imagePaths)
	if err != nil {
		return nil, err
	}
	return p.Analyze(ctx, pipeline.Document{
		Name:   strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Text:   text,
		Images: images,
	})
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
