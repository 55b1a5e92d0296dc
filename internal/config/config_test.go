package config

import (
	"os"
	"path/filepath"
	"testing"

	"Crewflow/internal/llm"
	"Crewflow/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allEnv = []string{
	"OPENAI_API_KEY", "SERPER_API_KEY", "ANTHROPIC_API_KEY", "GROQ_API_KEY",
	"OPENAI_API_BASE", "OPENAI_MODEL_NAME", "CREWAI_VERBOSE", "CREWAI_PROCESS",
	"CREWFLOW_PROVIDER", "CREWFLOW_MODEL", "CREWFLOW_MAX_TOKENS", "CREWFLOW_OUTPUTS_DIR",
	"CREWFLOW_MEMORY", "CREWFLOW_MEMORY_PATH", "CREWFLOW_EMBEDDER", "CREWFLOW_RPM",
}

// clearEnv unsets every variable Load reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allEnv {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func load(t *testing.T, opts Options) Config {
	t.Helper()
	if opts.SearchPaths == nil && opts.ConfigFile == "" {
		opts.SearchPaths = []string{t.TempDir()}
	}
	if opts.EnvFile == "" {
		opts.EnvFile = filepath.Join(t.TempDir(), "empty.env")
		require.NoError(t, os.WriteFile(opts.EnvFile, nil, 0644))
	}
	cfg, err := Load(opts)
	require.NoError(t, err)
	return cfg
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := load(t, Options{})

	assert.True(t, cfg.Verbose)
	assert.Equal(t, types.ProcessSequential, cfg.Process)
	assert.Equal(t, "outputs", cfg.OutputsDir)
	assert.Equal(t, llm.ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, llm.DefaultMaxTokens, cfg.LLM.MaxTokens)
	assert.False(t, cfg.Memory.Enabled)
	assert.Equal(t, MLConfig{RandomState: 42, TestSize: 0.2, CVFolds: 5}, cfg.ML)
	assert.Equal(t, map[string]string{"random_state": "42", "test_size": "0.2", "cv_folds": "5"}, cfg.MLInputs())
	assert.Empty(t, cfg.File)

	m := cfg.Model()
	assert.Equal(t, DefaultOpenAIModel, m.Name)
	assert.Empty(t, m.Endpoint)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("SERPER_API_KEY", "serper")
	t.Setenv("CREWAI_VERBOSE", "False")
	t.Setenv("CREWAI_PROCESS", "hierarchical")
	t.Setenv("CREWFLOW_OUTPUTS_DIR", "/tmp/reports")
	t.Setenv("CREWFLOW_MEMORY", "true")
	t.Setenv("CREWFLOW_RPM", "30")

	cfg := load(t, Options{})
	assert.Equal(t, 30, cfg.LLM.RequestsPerMinute)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, types.ProcessHierarchical, cfg.Process)
	assert.Equal(t, "/tmp/reports", cfg.OutputsDir)
	assert.True(t, cfg.Memory.Enabled)
	assert.True(t, cfg.SearchEnabled())
	assert.Equal(t, "sk-test", cfg.Model().APIKey)
}

func TestLoad_VerboseFlagWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("CREWAI_VERBOSE", "true")
	off := false
	cfg := load(t, Options{Verbose: &off})
	assert.False(t, cfg.Verbose)
}

func TestLoad_InvalidProcess(t *testing.T) {
	clearEnv(t)
	t.Setenv("CREWAI_PROCESS", "parallel")
	_, err := Load(Options{SearchPaths: []string{t.TempDir()}, EnvFile: writeFile(t, ".env", "")})
	assert.ErrorContains(t, err, "invalid process type")
}

func TestLoad_UnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("CREWFLOW_PROVIDER", "bedrock")
	_, err := Load(Options{SearchPaths: []string{t.TempDir()}, EnvFile: writeFile(t, ".env", "")})
	assert.ErrorIs(t, err, llm.ErrUnknownProvider)
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "crewflow.yaml"), []byte(`
llm:
  provider: anthropic
outputs_dir: reports
ml:
  cv_folds: 10
memory:
  enabled: true
  embedder: openai
`), 0644))
	t.Setenv("CREWFLOW_OUTPUTS_DIR", "from-env")

	cfg := load(t, Options{SearchPaths: []string{dir}})
	assert.Equal(t, filepath.Join(dir, "crewflow.yaml"), cfg.File)
	assert.Equal(t, llm.ProviderAnthropic, cfg.LLM.Provider)
	assert.Equal(t, "from-env", cfg.OutputsDir, "environment overrides the file")
	assert.Equal(t, 10, cfg.ML.CVFolds)
	assert.Equal(t, 42, cfg.ML.RandomState)
	assert.Equal(t, "openai", cfg.Memory.Embedder)
	assert.Equal(t, DefaultAnthropicModel, cfg.Model().Name)
}

func TestLoad_ExplicitConfigFileMissing(t *testing.T) {
	clearEnv(t)
	_, err := Load(Options{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml"), EnvFile: writeFile(t, ".env", "")})
	assert.Error(t, err)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERPER_API_KEY", "from-process")
	path := writeFile(t, ".env", "OPENAI_API_KEY=sk-dotenv\nSERPER_API_KEY=from-file\n")

	cfg := load(t, Options{EnvFile: path})
	assert.Equal(t, "sk-dotenv", cfg.Credentials.OpenAIAPIKey)
	assert.Equal(t, "from-process", cfg.Credentials.SerperAPIKey, "existing environment wins")
}

func TestLoad_ExplicitEnvFileMissing(t *testing.T) {
	clearEnv(t)
	_, err := Load(Options{EnvFile: filepath.Join(t.TempDir(), "missing.env"), SearchPaths: []string{t.TempDir()}})
	assert.Error(t, err)
}

func TestModel_LocalEndpoint(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_BASE", "http://localhost:11434/v1")
	t.Setenv("OPENAI_MODEL_NAME", "llama3.1")

	cfg := load(t, Options{})
	m := cfg.Model()
	assert.Equal(t, llm.ProviderOpenAI, m.Provider)
	assert.Equal(t, "http://localhost:11434/v1", m.Endpoint)
	assert.Equal(t, "llama3.1", m.Name)
	assert.True(t, cfg.Ready(), "a local endpoint needs no key")
}

func TestModel_OpenAIModelIgnoredForAnthropic(t *testing.T) {
	clearEnv(t)
	t.Setenv("CREWFLOW_PROVIDER", "anthropic")
	t.Setenv("OPENAI_MODEL_NAME", "gpt-4o")
	t.Setenv("ANTHROPIC_API_KEY", "ak")

	m := load(t, Options{}).Model()
	assert.Equal(t, DefaultAnthropicModel, m.Name)
	assert.Equal(t, "ak", m.APIKey)
	assert.Empty(t, m.Endpoint)
}

func TestChecklistAndReady(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		ready    bool
		missing  []string
		required string
	}{
		{
			name:     "openai key only",
			cfg:      Config{LLM: LLMConfig{Provider: llm.ProviderOpenAI}, Credentials: Credentials{OpenAIAPIKey: "k"}},
			ready:    true,
			required: EnvOpenAIKey,
		},
		{
			name:     "nothing set",
			cfg:      Config{LLM: LLMConfig{Provider: llm.ProviderOpenAI}},
			missing:  []string{EnvOpenAIKey},
			required: EnvOpenAIKey,
		},
		{
			name:     "serper alone is not enough",
			cfg:      Config{LLM: LLMConfig{Provider: llm.ProviderOpenAI}, Credentials: Credentials{SerperAPIKey: "s"}},
			missing:  []string{EnvOpenAIKey},
			required: EnvOpenAIKey,
		},
		{
			name:     "groq provider",
			cfg:      Config{LLM: LLMConfig{Provider: llm.ProviderGroq}, Credentials: Credentials{OpenAIAPIKey: "k"}},
			missing:  []string{EnvGroqKey},
			required: EnvGroqKey,
		},
		{
			name:    "local without endpoint",
			cfg:     Config{LLM: LLMConfig{Provider: llm.ProviderLocal}},
			missing: []string{EnvOpenAIBase},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := tt.cfg.Checklist()
			require.Len(t, rows, 4)
			names := []string{rows[0].Name, rows[1].Name, rows[2].Name, rows[3].Name}
			assert.Equal(t, []string{EnvOpenAIKey, EnvSerperKey, EnvAnthropicKey, EnvGroqKey}, names)
			for _, r := range rows {
				assert.Equal(t, r.Name == tt.required, r.Required, r.Name)
			}
			assert.Equal(t, tt.ready, tt.cfg.Ready())
			assert.Equal(t, tt.missing, tt.cfg.Missing())
		})
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
