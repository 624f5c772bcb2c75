// Package config loads application settings from defaults, an optional
// YAML file, a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/memoriaviva/memoria/internal/explain"
	"github.com/memoriaviva/memoria/internal/llm"
	"github.com/memoriaviva/memoria/internal/questiongen"
	"github.com/memoriaviva/memoria/internal/store"
)

// Config holds application configuration.
type Config struct {
	Env    string `mapstructure:"env"`
	DB     DB     `mapstructure:"db"`
	Log    Log    `mapstructure:"log"`
	LLM    LLM    `mapstructure:"llm"`
	Quiz   Quiz   `mapstructure:"quiz"`
	Server Server `mapstructure:"server"`
}

type DB struct {
	Path string `mapstructure:"path"`
}

type Log struct {
	File string `mapstructure:"file"`
}

// LLM configures the text-generation provider. APIKey is never read from
// the config file.
type LLM struct {
	Provider  string        `mapstructure:"provider"`
	Model     string        `mapstructure:"model"`
	APIKey    string        `mapstructure:"-"`
	BaseURL   string        `mapstructure:"base_url"`
	MaxTokens int           `mapstructure:"max_tokens"`
	Timeout   time.Duration `mapstructure:"timeout"`
	Retry     Retry         `mapstructure:"retry"`
}

type Retry struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	InitialWait time.Duration `mapstructure:"initial_wait"`
	MaxWait     time.Duration `mapstructure:"max_wait"`
	Multiplier  float64       `mapstructure:"multiplier"`
}

type Quiz struct {
	QuestionsPerLevel int           `mapstructure:"questions_per_level"`
	FeedbackDelay     time.Duration `mapstructure:"feedback_delay"`
}

type Server struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// vendorKeyEnv lists the vendor-specific credential variables in discovery
// order.
var vendorKeyEnv = []struct {
	provider string
	env      string
}{
	{llm.ProviderGemini, "GEMINI_API_KEY"},
	{llm.ProviderOpenAI, "OPENAI_API_KEY"},
	{llm.ProviderAnthropic, "ANTHROPIC_API_KEY"},
	{llm.ProviderOpenRouter, "OPENROUTER_API_KEY"},
}

// Load reads configuration. path selects an explicit config file; when
// empty, memoria.yaml is searched in the working directory and
// $XDG_CONFIG_HOME/memoria and is optional.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("memoria")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "memoria"))
		}
	}

	setDefaults(v)

	v.SetEnvPrefix("MEMORIA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("env", "MEMORIA_ENV", "APP_ENV")
	_ = v.BindEnv("llm.api_key", "MEMORIA_LLM_API_KEY", "API_KEY")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.LLM.APIKey = v.GetString("llm.api_key")
	if cfg.LLM.APIKey == "" {
		explicit := os.Getenv("MEMORIA_LLM_PROVIDER") != "" || v.InConfig("llm.provider")
		cfg.LLM.Provider, cfg.LLM.APIKey = discoverVendorKey(cfg.LLM.Provider, explicit)
	}

	if cfg.DB.Path == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		cfg.DB.Path = p
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := llm.DefaultConfig()

	v.SetDefault("env", "development")
	v.SetDefault("db.path", "")
	v.SetDefault("log.file", defaultLogFile())
	v.SetDefault("llm.provider", def.Provider)
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.max_tokens", def.MaxTokens)
	v.SetDefault("llm.timeout", 30*time.Second)
	v.SetDefault("llm.retry.max_attempts", def.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", def.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", def.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", def.Retry.Multiplier)
	v.SetDefault("quiz.questions_per_level", 5)
	v.SetDefault("quiz.feedback_delay", 800*time.Millisecond)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
}

// discoverVendorKey returns the credential for provider from its vendor
// variable. When the provider was not chosen explicitly, the first vendor
// with a key wins.
func discoverVendorKey(provider string, explicit bool) (string, string) {
	for _, vk := range vendorKeyEnv {
		if explicit && vk.provider != provider {
			continue
		}
		if k := os.Getenv(vk.env); k != "" {
			return vk.provider, k
		}
	}
	return provider, ""
}

func defaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "memoria.log")
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "memoria", "memoria.log")
}

func (c *Config) validate() error {
	if c.Quiz.QuestionsPerLevel < 1 {
		return fmt.Errorf("quiz.questions_per_level must be positive, got %d", c.Quiz.QuestionsPerLevel)
	}
	if c.Quiz.FeedbackDelay < 0 {
		return fmt.Errorf("quiz.feedback_delay must not be negative")
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be positive")
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be positive, got %d", c.LLM.MaxTokens)
	}
	return nil
}

// ProviderConfig converts the LLM section into an llm.Config.
func (c LLM) ProviderConfig() llm.Config {
	return llm.Config{
		Provider:  c.Provider,
		APIKey:    c.APIKey,
		Model:     c.Model,
		BaseURL:   c.BaseURL,
		MaxTokens: c.MaxTokens,
		Retry: llm.RetryConfig{
			MaxAttempts: c.Retry.MaxAttempts,
			InitialWait: c.Retry.InitialWait,
			MaxWait:     c.Retry.MaxWait,
			Multiplier:  c.Retry.Multiplier,
		},
	}
}

// QuestionConfig returns the question gateway settings with the
// configured timeout and token limit.
func (c LLM) QuestionConfig() questiongen.Config {
	qc := questiongen.DefaultConfig()
	qc.Timeout = c.Timeout
	qc.MaxTokens = c.MaxTokens
	return qc
}

// ExplanationConfig returns the explanation gateway settings with the
// configured timeout and token limit.
func (c LLM) ExplanationConfig() explain.Config {
	ec := explain.DefaultConfig()
	ec.Timeout = c.Timeout
	ec.MaxTokens = c.MaxTokens
	return ec
}

// HasCredential reports whether a provider key was found.
func (c LLM) HasCredential() bool {
	return c.APIKey != "" || c.Provider == llm.ProviderMock
}
