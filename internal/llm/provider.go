package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/ppiankov/docent/internal/model"
	openai "github.com/sashabaranov/go-openai"
)

// Provider defines the interface for LLM providers backing the staged
// analysis pipeline. Each stage issues exactly one Complete call.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends one prompt and returns the raw response text.
	// The caller owns JSON parsing and validation.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// CompletionRequest is one stage call
type CompletionRequest struct {
	// System is the system prompt shared by all stages
	System string

	// Prompt carries the stage instructions, the capped document text,
	// the pre-pass JSON and the prior-stage results
	Prompt string

	// Images are rendered page images; only the first stage sends them,
	// and providers without image support ignore them
	Images []model.PageImage

	// Model overrides the configured model when non-empty
	Model string

	Temperature float32
	MaxTokens   int
}

// CompletionResponse contains the provider's raw output
type CompletionResponse struct {
	Text       string
	Model      string
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests, seconds
	Timeout int

	// MaxTokens default cap for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Timeout:   60,
		MaxTokens: 2000,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(modelConfig model.LLMConfig) Config {
	return Config{
		Provider:  modelConfig.Provider,
		Model:     modelConfig.Model,
		APIKey:    modelConfig.APIKey,
		BaseURL:   modelConfig.BaseURL,
		Timeout:   modelConfig.Timeout,
		MaxTokens: DefaultConfig().MaxTokens,
	}
}

// IsRateLimit reports whether err signals provider throttling. The
// orchestrator backs off exponentially on these and pauses flatly on
// everything else.
func IsRateLimit(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == 429 {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "rate_limit") ||
		strings.Contains(msg, "429") ||
		strings.Contains(msg, "too many requests")
}
