package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	LLM    LLMConfig
	CORS   CORSConfig
	Log    LogConfig
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ProviderConfig holds settings for a single LLM provider.
type ProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
	// BaseURL overrides the provider API endpoint. Empty uses the public API.
	BaseURL string `mapstructure:"base_url"`
}

// LLMConfig selects the extraction provider and holds per-provider settings.
type LLMConfig struct {
	Provider    string         `mapstructure:"provider"`
	TimeoutSecs int            `mapstructure:"timeout_secs"`
	OpenAI      ProviderConfig `mapstructure:"openai"`
	Gemini      ProviderConfig `mapstructure:"gemini"`
	Claude      ProviderConfig `mapstructure:"claude"`
}

// apiKeyEnv names the environment variable that carries each provider's key.
var apiKeyEnv = map[string]string{
	string(domain.ProviderOpenAI): "OPENAI_API_KEY",
	string(domain.ProviderGemini): "GOOGLE_API_KEY",
	string(domain.ProviderClaude): "ANTHROPIC_API_KEY",
}

// ProviderConfig returns the settings of the selected provider. A missing API
// key yields an error wrapping domain.ErrProviderNotConfigured.
func (l *LLMConfig) ProviderConfig() (*ProviderConfig, error) {
	var pc ProviderConfig
	switch domain.LLMProvider(l.Provider) {
	case domain.ProviderOpenAI:
		pc = l.OpenAI
	case domain.ProviderGemini:
		pc = l.Gemini
	case domain.ProviderClaude:
		pc = l.Claude
	default:
		return nil, fmt.Errorf("%w: unknown provider %q (supported: openai, gemini, claude)",
			domain.ErrProviderNotConfigured, l.Provider)
	}
	pc.Provider = l.Provider
	if pc.TimeoutSecs == 0 {
		pc.TimeoutSecs = l.TimeoutSecs
	}
	if strings.TrimSpace(pc.APIKey) == "" {
		return nil, fmt.Errorf("%w: %s not configured", domain.ErrProviderNotConfigured, apiKeyEnv[l.Provider])
	}
	return &pc, nil
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Debug           bool          `mapstructure:"debug"`
}

// Addr returns the listen address.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string]string{
	"server.host":              "HOST",
	"server.port":              "PORT",
	"server.read_timeout":      "SERVER_READ_TIMEOUT",
	"server.write_timeout":     "SERVER_WRITE_TIMEOUT",
	"server.shutdown_timeout":  "SERVER_SHUTDOWN_TIMEOUT",
	"server.debug":             "DEBUG",
	"log.level":                "LOG_LEVEL",
	"log.format":               "LOG_FORMAT",
	"cors.allowed_origins":     "CORS_ORIGINS",
	"llm.provider":             "LLM_PROVIDER",
	"llm.timeout_secs":         "LLM_TIMEOUT_SECS",
	"llm.openai.api_key":       "OPENAI_API_KEY",
	"llm.openai.default_model": "OPENAI_MODEL",
	"llm.openai.base_url":      "OPENAI_BASE_URL",
	"llm.gemini.api_key":       "GOOGLE_API_KEY",
	"llm.gemini.default_model": "GEMINI_MODEL",
	"llm.gemini.base_url":      "GEMINI_BASE_URL",
	"llm.claude.api_key":       "ANTHROPIC_API_KEY",
	"llm.claude.default_model": "CLAUDE_MODEL",
	"llm.claude.base_url":      "ANTHROPIC_BASE_URL",
}

// Load reads configuration from environment variables. Values in a .env file
// in the working directory apply when the variable is not set.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit dotenv path. An empty path or a missing
// file is not an error.
func LoadFrom(envFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "180s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.debug", false)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("cors.allowed_origins", "*")

	// LLM defaults
	v.SetDefault("llm.provider", string(domain.ProviderOpenAI))
	v.SetDefault("llm.timeout_secs", 120)
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.default_model", "gpt-4o")
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.default_model", "gemini-2.5-pro")
	v.SetDefault("llm.gemini.base_url", "")
	v.SetDefault("llm.claude.api_key", "")
	v.SetDefault("llm.claude.default_model", "claude-sonnet-4-20250514")
	v.SetDefault("llm.claude.base_url", "")

	if err := applyDotenv(v, envFile); err != nil {
		return nil, err
	}

	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}
	cfg.Server = ServerConfig{
		Host:            v.GetString("server.host"),
		Port:            strings.TrimPrefix(v.GetString("server.port"), ":"),
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		Debug:           v.GetBool("server.debug"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	if cfg.Server.Debug {
		cfg.Log.Level = "debug"
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.LLM = LLMConfig{
		Provider:    strings.ToLower(strings.TrimSpace(v.GetString("llm.provider"))),
		TimeoutSecs: v.GetInt("llm.timeout_secs"),
		OpenAI: ProviderConfig{
			Provider:     string(domain.ProviderOpenAI),
			APIKey:       v.GetString("llm.openai.api_key"),
			DefaultModel: v.GetString("llm.openai.default_model"),
			BaseURL:      v.GetString("llm.openai.base_url"),
		},
		Gemini: ProviderConfig{
			Provider:     string(domain.ProviderGemini),
			APIKey:       v.GetString("llm.gemini.api_key"),
			DefaultModel: v.GetString("llm.gemini.default_model"),
			BaseURL:      v.GetString("llm.gemini.base_url"),
		},
		Claude: ProviderConfig{
			Provider:     string(domain.ProviderClaude),
			APIKey:       v.GetString("llm.claude.api_key"),
			DefaultModel: v.GetString("llm.claude.default_model"),
			BaseURL:      v.GetString("llm.claude.base_url"),
		},
	}

	return cfg, nil
}

// applyDotenv loads envFile and installs its values as defaults for the bound
// keys, so real environment variables still win.
func applyDotenv(v *viper.Viper, envFile string) error {
	if envFile == "" {
		return nil
	}
	fileV := viper.New()
	fileV.SetConfigFile(envFile)
	fileV.SetConfigType("env")
	if err := fileV.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", envFile, err)
	}
	for key, env := range envBindings {
		fileKey := strings.ToLower(env)
		if fileV.IsSet(fileKey) {
			v.SetDefault(key, fileV.Get(fileKey))
		}
	}
	return nil
}
