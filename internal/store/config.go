package store

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	ProviderOpenAI = "OPENAI"
	ProviderClaude = "CLAUDE"

	DefaultSystemPrompt = "You are a trading guru. Given data on share prices over the past 3 days, write a report of no more than 150 words describing the stock performance and recommending whether to buy, hold, or sell."
)

type Config struct {
	// Secrets and port are normally supplied by the environment.
	MarketDataAPIKey string `yaml:"market_data_api_key"`
	CompletionAPIKey string `yaml:"completion_api_key"`
	Port             int    `yaml:"port"`

	MarketData struct {
		BaseURL        string `yaml:"base_url"`
		LookbackDays   int    `yaml:"lookback_days"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"market_data"`
	LLM struct {
		Provider    string  `yaml:"provider"`
		Model       string  `yaml:"model"`
		BaseURL     string  `yaml:"base_url"`
		MaxTokens   int     `yaml:"max_tokens"`
		Temperature float32 `yaml:"temperature"`
		System      string  `yaml:"system"`
	} `yaml:"llm"`
	Server struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	CLI struct {
		Tickers []string `yaml:"tickers"`
	} `yaml:"cli"`
}

func (c *Config) Validate() error {
	if c.LLM.Provider != ProviderOpenAI && c.LLM.Provider != ProviderClaude {
		return fmt.Errorf("llm.provider must be '%s' or '%s', got '%s'", ProviderOpenAI, ProviderClaude, c.LLM.Provider)
	}
	if err := checkModelFamily(c.LLM.Provider, c.LLM.Model); err != nil {
		return err
	}
	if c.MarketDataAPIKey == "" {
		return errors.New("market data API key missing (set POLYGON_API_KEY)")
	}
	if c.CompletionAPIKey == "" {
		return fmt.Errorf("completion API key missing for provider %s", c.LLM.Provider)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1-65535, got %d", c.Port)
	}
	if c.MarketData.LookbackDays <= 0 {
		return fmt.Errorf("market_data.lookback_days must be positive, got %d", c.MarketData.LookbackDays)
	}
	return nil
}

// checkModelFamily rejects a model name that belongs to the other provider,
// e.g. a gpt-* model left in the file after switching LLM_PROVIDER to CLAUDE.
// Unrecognized names pass.
func checkModelFamily(provider, model string) error {
	m := strings.ToLower(model)
	switch {
	case provider == ProviderClaude && strings.HasPrefix(m, "gpt-"):
		return fmt.Errorf("llm.model %q is an OpenAI model but llm.provider is %s", model, provider)
	case provider == ProviderOpenAI && strings.HasPrefix(m, "claude-"):
		return fmt.Errorf("llm.model %q is a Claude model but llm.provider is %s", model, provider)
	}
	return nil
}

// LoadConfig reads the YAML file at path if present, applies defaults and
// environment overrides, then validates. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	var c Config

	b, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(b) > 0 {
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	c.applyDefaults()
	if err := c.applyEnv(); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = 3000
	}
	if c.MarketData.BaseURL == "" {
		c.MarketData.BaseURL = "https://api.polygon.io"
	}
	if c.MarketData.LookbackDays == 0 {
		c.MarketData.LookbackDays = 3
	}
	if c.MarketData.TimeoutSeconds == 0 {
		c.MarketData.TimeoutSeconds = 30
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = ProviderOpenAI
	}
	if c.LLM.System == "" {
		c.LLM.System = DefaultSystemPrompt
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"*"}
	}
	if len(c.CLI.Tickers) == 0 {
		c.CLI.Tickers = []string{"AAPL", "TSLA"}
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("POLYGON_API_KEY"); v != "" {
		c.MarketDataAPIKey = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	c.LLM.Provider = strings.ToUpper(strings.TrimSpace(c.LLM.Provider))
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}

	var keyEnvs []string
	switch c.LLM.Provider {
	case ProviderClaude:
		keyEnvs = []string{"CLAUDE_API_KEY", "ANTHROPIC_API_KEY"}
		if c.LLM.Model == "" {
			c.LLM.Model = "claude-sonnet-4-20250514"
		}
	default:
		keyEnvs = []string{"OPEN_AI_API_KEY", "OPENAI_API_KEY"}
		if c.LLM.Model == "" {
			c.LLM.Model = "gpt-4"
		}
	}
	for _, k := range keyEnvs {
		if v := os.Getenv(k); v != "" {
			c.CompletionAPIKey = v
			break
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Port = port
	}
	return nil
}
