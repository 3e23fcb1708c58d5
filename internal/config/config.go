package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
	ProviderMock   = "mock"
)

// Config holds all application configuration. It is loaded once in main and
// passed to the components that need it.
type Config struct {
	Port            int           `yaml:"port"`
	Provider        string        `yaml:"provider"`
	OpenAIAPIKey    string        `yaml:"openai_api_key"`
	OpenAIModel     string        `yaml:"openai_model"`
	OpenAIBaseURL   string        `yaml:"openai_base_url"`
	ClaudeAPIKey    string        `yaml:"claude_api_key"`
	ClaudeModel     string        `yaml:"claude_model"`
	UpstreamTimeout time.Duration `yaml:"upstream_timeout"`
	StaticDir       string        `yaml:"static_dir"`
	APIKey          string        `yaml:"api_key"`
	LogLevel        string        `yaml:"log_level"`
	LogFormat       string        `yaml:"log_format"`
	LogFile         string        `yaml:"log_file"`
}

func defaults() Config {
	return Config{
		Port:            3000,
		Provider:        ProviderOpenAI,
		OpenAIModel:     "gpt-4",
		ClaudeModel:     "claude-sonnet-4-5-20250929",
		UpstreamTimeout: 30 * time.Second,
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// Load reads configuration from a YAML file (if path is non-empty), then
// applies environment variable overrides. An empty path returns defaults +
// env overrides.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	// The conventional provider variable is a fallback; EVOLVE_ wins.
	if v := os.Getenv("OPENAI_API_KEY"); v != "" && cfg.OpenAIAPIKey == "" {
		cfg.OpenAIAPIKey = v
	}

	if v := os.Getenv("EVOLVE_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid EVOLVE_PORT %q: %w", v, err)
		}
		cfg.Port = p
	}
	if v := os.Getenv("EVOLVE_UPSTREAM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: invalid EVOLVE_UPSTREAM_TIMEOUT %q: %w", v, err)
		}
		cfg.UpstreamTimeout = d
	}

	strs := []struct {
		env string
		dst *string
	}{
		{"EVOLVE_PROVIDER", &cfg.Provider},
		{"EVOLVE_OPENAI_API_KEY", &cfg.OpenAIAPIKey},
		{"EVOLVE_OPENAI_MODEL", &cfg.OpenAIModel},
		{"EVOLVE_OPENAI_BASE_URL", &cfg.OpenAIBaseURL},
		{"EVOLVE_CLAUDE_API_KEY", &cfg.ClaudeAPIKey},
		{"EVOLVE_CLAUDE_MODEL", &cfg.ClaudeModel},
		{"EVOLVE_STATIC_DIR", &cfg.StaticDir},
		{"EVOLVE_API_KEY", &cfg.APIKey},
		{"EVOLVE_LOG_LEVEL", &cfg.LogLevel},
		{"EVOLVE_LOG_FORMAT", &cfg.LogFormat},
		{"EVOLVE_LOG_FILE", &cfg.LogFile},
	}
	for _, s := range strs {
		if v := os.Getenv(s.env); v != "" {
			*s.dst = v
		}
	}
	return nil
}

// Validate rejects configurations the server cannot start with. A missing
// upstream key is not an error: the health endpoint reports it instead.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI, ProviderClaude, ProviderMock:
	default:
		return fmt.Errorf("config: unknown provider %q", c.Provider)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: invalid port %d", c.Port)
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("config: upstream_timeout must be positive, got %s", c.UpstreamTimeout)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log_format %q", c.LogFormat)
	}
	return nil
}
