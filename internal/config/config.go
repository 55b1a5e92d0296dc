// Package config loads Crewflow settings from .env files, an optional
// crewflow.yaml and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"Crewflow/internal/llm"
	"Crewflow/pkg/types"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const appName = "crewflow"

// Default models per provider.
const (
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultAnthropicModel = "claude-sonnet-4-20250514"
	DefaultGroqModel      = "llama-3.3-70b-versatile"
	DefaultLocalModel     = "llama3"
)

// ML reference constants used by the ml workflow.
const (
	DefaultRandomState = 42
	DefaultTestSize    = 0.2
	DefaultCVFolds     = 5
)

// Config is built once at startup and passed by value afterwards.
type Config struct {
	Credentials Credentials   `mapstructure:"credentials"`
	LLM         LLMConfig     `mapstructure:"llm"`
	Verbose     bool          `mapstructure:"verbose"`
	Process     types.Process `mapstructure:"process"`
	OutputsDir  string        `mapstructure:"outputs_dir"`
	Memory      MemoryConfig  `mapstructure:"memory"`
	ML          MLConfig      `mapstructure:"ml"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

type Credentials struct {
	OpenAIAPIKey    string `mapstructure:"openai_api_key"`
	SerperAPIKey    string `mapstructure:"serper_api_key"`
	AnthropicAPIKey string `mapstructure:"anthropic_api_key"`
	GroqAPIKey      string `mapstructure:"groq_api_key"`
}

type LLMConfig struct {
	Provider string `mapstructure:"provider"`
	Model    string `mapstructure:"model"`
	// OpenAIModel is OPENAI_MODEL_NAME; it only applies to OpenAI-compatible providers.
	OpenAIModel string `mapstructure:"openai_model"`
	BaseURL     string `mapstructure:"base_url"`
	MaxTokens   int    `mapstructure:"max_tokens"`
	// RequestsPerMinute throttles LLM calls; 0 means unlimited.
	RequestsPerMinute int `mapstructure:"requests_per_minute"`
}

// MemoryConfig controls the cross-run report index.
type MemoryConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Path     string `mapstructure:"path"`
	Embedder string `mapstructure:"embedder"`
	Model    string `mapstructure:"model"`
	BaseURL  string `mapstructure:"base_url"`
}

type MLConfig struct {
	RandomState int     `mapstructure:"random_state"`
	TestSize    float64 `mapstructure:"test_size"`
	CVFolds     int     `mapstructure:"cv_folds"`
}

// Options tells Load where to look.
type Options struct {
	// EnvFile is loaded before reading the environment. Empty means ".env",
	// which may be absent; an explicit file must exist.
	EnvFile string
	// ConfigFile pins the YAML config file. When empty, crewflow.yaml is
	// searched for in SearchPaths.
	ConfigFile  string
	SearchPaths []string
	// Verbose overrides CREWAI_VERBOSE when set.
	Verbose *bool
}

var envBindings = map[string][]string{
	"credentials.openai_api_key":    {"OPENAI_API_KEY"},
	"credentials.serper_api_key":    {"SERPER_API_KEY"},
	"credentials.anthropic_api_key": {"ANTHROPIC_API_KEY"},
	"credentials.groq_api_key":      {"GROQ_API_KEY"},
	"llm.provider":                  {"CREWFLOW_PROVIDER"},
	"llm.model":                     {"CREWFLOW_MODEL"},
	"llm.openai_model":              {"OPENAI_MODEL_NAME"},
	"llm.base_url":                  {"OPENAI_API_BASE"},
	"llm.max_tokens":                {"CREWFLOW_MAX_TOKENS"},
	"llm.requests_per_minute":       {"CREWFLOW_RPM"},
	"verbose":                       {"CREWAI_VERBOSE"},
	"process":                       {"CREWAI_PROCESS"},
	"outputs_dir":                   {"CREWFLOW_OUTPUTS_DIR"},
	"memory.enabled":                {"CREWFLOW_MEMORY"},
	"memory.path":                   {"CREWFLOW_MEMORY_PATH"},
	"memory.embedder":               {"CREWFLOW_EMBEDDER"},
}

// Load resolves the configuration. Precedence, highest first: environment
// (including variables from the .env file), config file, built-in defaults.
func Load(opts Options) (Config, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return Config{}, err
	}

	v := viper.New()
	setDefaults(v)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config from %s: %w", opts.ConfigFile, err)
		}
	} else {
		paths := opts.SearchPaths
		if paths == nil {
			paths = []string{".", UserConfigDir()}
		}
		v.SetConfigName(appName)
		v.SetConfigType("yaml")
		for _, p := range paths {
			v.AddConfigPath(p)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return Config{}, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	if opts.Verbose != nil {
		cfg.Verbose = *opts.Verbose
	}

	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	p, err := types.ParseProcess(strings.ToLower(strings.TrimSpace(string(c.Process))))
	if err != nil {
		return fmt.Errorf("CREWAI_PROCESS: %w", err)
	}
	c.Process = p

	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	switch c.LLM.Provider {
	case "":
		c.LLM.Provider = llm.ProviderOpenAI
	case "ollama":
		c.LLM.Provider = llm.ProviderLocal
	case llm.ProviderOpenAI, llm.ProviderAnthropic, llm.ProviderGroq, llm.ProviderLocal:
	default:
		return fmt.Errorf("%w: %s", llm.ErrUnknownProvider, c.LLM.Provider)
	}

	if c.OutputsDir == "" {
		c.OutputsDir = "outputs"
	}
	if c.LLM.MaxTokens <= 0 {
		c.LLM.MaxTokens = llm.DefaultMaxTokens
	}
	return nil
}

// Model is the LLM binding tasks run with.
func (c Config) Model() llm.Model {
	m := llm.Model{
		Provider:  c.LLM.Provider,
		Name:      c.LLM.Model,
		MaxTokens: c.LLM.MaxTokens,
	}
	compat := c.LLM.Provider == llm.ProviderOpenAI || c.LLM.Provider == llm.ProviderLocal
	if m.Name == "" && compat {
		m.Name = c.LLM.OpenAIModel
	}
	if m.Name == "" {
		m.Name = defaultModel(c.LLM.Provider)
	}
	if compat {
		m.Endpoint = c.LLM.BaseURL
	}
	m.APIKey = c.providerKey()
	return m
}

func (c Config) providerKey() string {
	switch c.LLM.Provider {
	case llm.ProviderAnthropic:
		return c.Credentials.AnthropicAPIKey
	case llm.ProviderGroq:
		return c.Credentials.GroqAPIKey
	default:
		return c.Credentials.OpenAIAPIKey
	}
}

func defaultModel(provider string) string {
	switch provider {
	case llm.ProviderAnthropic:
		return DefaultAnthropicModel
	case llm.ProviderGroq:
		return DefaultGroqModel
	case llm.ProviderLocal:
		return DefaultLocalModel
	default:
		return DefaultOpenAIModel
	}
}

// MLInputs are the ml workflow inputs carried by the configuration.
func (c Config) MLInputs() map[string]string {
	return map[string]string{
		"random_state": strconv.Itoa(c.ML.RandomState),
		"test_size":    strconv.FormatFloat(c.ML.TestSize, 'f', -1, 64),
		"cv_folds":     strconv.Itoa(c.ML.CVFolds),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("credentials.openai_api_key", "")
	v.SetDefault("credentials.serper_api_key", "")
	v.SetDefault("credentials.anthropic_api_key", "")
	v.SetDefault("credentials.groq_api_key", "")

	v.SetDefault("llm.provider", llm.ProviderOpenAI)
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.openai_model", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.max_tokens", llm.DefaultMaxTokens)
	v.SetDefault("llm.requests_per_minute", 0)

	v.SetDefault("verbose", true)
	v.SetDefault("process", string(types.ProcessSequential))
	v.SetDefault("outputs_dir", "outputs")

	v.SetDefault("memory.enabled", false)
	v.SetDefault("memory.path", "")
	v.SetDefault("memory.embedder", "")
	v.SetDefault("memory.model", "")
	v.SetDefault("memory.base_url", "")

	v.SetDefault("ml.random_state", DefaultRandomState)
	v.SetDefault("ml.test_size", DefaultTestSize)
	v.SetDefault("ml.cv_folds", DefaultCVFolds)
}

func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// UserConfigDir returns the XDG config directory for crewflow.
func UserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", appName)
	}
	return filepath.Join(home, ".config", appName)
}
