package model

import "time"

// Config is the full application configuration.
// Hierarchy (highest to lowest priority): CLI flags, DOCENT_* environment
// variables, ~/.docent/config.yaml, the defaults below.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Analysis    AnalysisConfig    `yaml:"analysis" mapstructure:"analysis"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// HTTPConfig controls the URL fetch path
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls" mapstructure:"insecure_tls"`
}

// CacheConfig controls in-memory result caching
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// LLMConfig configures the external staged pipeline
type LLMConfig struct {
	Provider          string  `yaml:"provider" mapstructure:"provider"` // openai, anthropic, ollama, "" = disabled
	Model             string  `yaml:"model" mapstructure:"model"`
	APIKey            string  `yaml:"api_key,omitempty" mapstructure:"api_key"`
	BaseURL           string  `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Timeout           int     `yaml:"timeout" mapstructure:"timeout"` // seconds, per stage call
	MaxRetries        int     `yaml:"max_retries" mapstructure:"max_retries"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	TextBudget        int     `yaml:"text_budget" mapstructure:"text_budget"` // chars of document text per prompt
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	BatchWorkers int `yaml:"batch_workers" mapstructure:"batch_workers"`
}

// AnalysisConfig bounds accepted input
type AnalysisConfig struct {
	MinWords     int `yaml:"min_words" mapstructure:"min_words"`
	MaxTextBytes int `yaml:"max_text_bytes" mapstructure:"max_text_bytes"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "Docent/0.1 (+https://github.com/ppiankov/docent)",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     1 * time.Hour,
		},
		LLM: LLMConfig{
			Provider:          "", // Disabled by default
			Timeout:           60,
			MaxRetries:        2,
			RequestsPerSecond: 1,
			TextBudget:        24_000,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
		},
		Analysis: AnalysisConfig{
			MinWords:     20,
			MaxTextBytes: 5_000_000,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
