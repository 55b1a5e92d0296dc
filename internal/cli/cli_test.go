package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"Crewflow/internal/config"
	"Crewflow/internal/crew"
	"Crewflow/internal/parser"
	"Crewflow/internal/vectorstore"
	"Crewflow/pkg/types"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var crewEnv = []string{
	"OPENAI_API_KEY", "SERPER_API_KEY", "ANTHROPIC_API_KEY", "GROQ_API_KEY",
	"OPENAI_API_BASE", "OPENAI_MODEL_NAME", "CREWAI_VERBOSE", "CREWAI_PROCESS",
	"CREWFLOW_PROVIDER", "CREWFLOW_MODEL", "CREWFLOW_MAX_TOKENS", "CREWFLOW_OUTPUTS_DIR",
	"CREWFLOW_MEMORY", "CREWFLOW_MEMORY_PATH", "CREWFLOW_EMBEDDER", "CREWFLOW_RPM",
}

// isolate gives the test a clean environment and working directory.
func isolate(t *testing.T) {
	t.Helper()
	color.NoColor = true
	for _, k := range crewEnv {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CREWFLOW_OUTPUTS_DIR", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	if args == nil {
		args = []string{}
	}
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

type fakeEngine struct {
	wf     *types.WorkflowSpec
	inputs map[string]string
	err    error
}

func (f *fakeEngine) Execute(_ context.Context, wf *types.WorkflowSpec, inputs map[string]string) (*types.ExecutionResult, error) {
	f.wf = wf
	f.inputs = inputs
	if f.err != nil {
		return &types.ExecutionResult{Workflow: wf.ID, Files: []string{"outputs/partial_report.md"}}, f.err
	}
	return &types.ExecutionResult{
		RunID:    "run-1",
		Workflow: wf.ID,
		Final:    "# Final report",
		Files:    []string{"outputs/final_report.md"},
		Usage:    types.Usage{InputTokens: 100, OutputTokens: 20, Calls: 5},
	}, nil
}

// useEngine swaps in eng and reports whether the CLI built an engine.
func useEngine(t *testing.T, eng crew.Engine) *bool {
	t.Helper()
	built := new(bool)
	orig := newEngine
	newEngine = func(config.Config, *zap.Logger) (crew.Engine, error) {
		*built = true
		return eng, nil
	}
	t.Cleanup(func() { newEngine = orig })
	return built
}

func TestSetup_MissingKeys(t *testing.T) {
	isolate(t)
	out, err := execute(t, "--setup")
	require.NoError(t, err)

	assert.Contains(t, out, "✗ OPENAI_API_KEY (required)")
	assert.Contains(t, out, "✗ SERPER_API_KEY (enables web search)")
	assert.Contains(t, out, "ANTHROPIC_API_KEY")
	assert.Contains(t, out, "GROQ_API_KEY")
	assert.Contains(t, out, "Missing configuration: [OPENAI_API_KEY]")
	assert.Contains(t, out, "OPENAI_API_BASE=http://localhost:11434/v1")
	assert.NotContains(t, out, "Ready to run")
}

func TestSetup_Ready(t *testing.T) {
	isolate(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	out, err := execute(t, "setup")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ OPENAI_API_KEY (required)")
	assert.Contains(t, out, "Ready to run agent swarms!")
}

func TestListCrews(t *testing.T) {
	isolate(t)
	for _, args := range [][]string{{"--list-crews"}, {"list"}} {
		out, err := execute(t, args...)
		require.NoError(t, err)
		for _, id := range types.Workflows {
			assert.Contains(t, out, string(id))
		}
		assert.Contains(t, out, "Complete Random Forest evaluation")
	}
}

func TestStatus(t *testing.T) {
	isolate(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("CREWAI_PROCESS", "hierarchical")

	out, err := execute(t, "--status")
	require.NoError(t, err)
	assert.Contains(t, out, "Environment Ready: ✓")
	assert.Contains(t, out, "API Keys Configured: 1/4")
	assert.Contains(t, out, "process_type: hierarchical")
	assert.Contains(t, out, "model: gpt-4o-mini")
	assert.Contains(t, out, "(5 agents, 5 tasks)")
	assert.Contains(t, out, "(4 agents, 4 tasks)")
	assert.Contains(t, out, fmt.Sprintf("agent_catalog: %d personas", len(types.Roles)))
	assert.NotContains(t, out, "Run setup first")
}

func TestStatus_NotReady(t *testing.T) {
	isolate(t)
	out, err := execute(t, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Environment Ready: ✗")
	assert.Contains(t, out, "Run setup first")
}

func TestRun_UnknownCrew(t *testing.T) {
	isolate(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	built := useEngine(t, &fakeEngine{})

	out, err := execute(t, "--run", "astrology")
	require.Error(t, err)
	assert.ErrorIs(t, err, crew.ErrUnknownWorkflow)
	assert.Contains(t, out, "Unknown crew type: astrology")
	assert.False(t, *built)
}

func TestRun_NotReadyAbortsBeforeEngine(t *testing.T) {
	isolate(t)
	t.Setenv("SERPER_API_KEY", "serper")
	built := useEngine(t, &fakeEngine{})

	out, err := execute(t, "--run", "ml")
	assert.ErrorIs(t, err, errNotReady)
	assert.Contains(t, out, "Run: crewflow --setup")
	assert.False(t, *built)
}

func TestRun_Success(t *testing.T) {
	isolate(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	eng := &fakeEngine{}
	useEngine(t, eng)

	out, err := execute(t, "--run", "business_intelligence", "--input", "industry=fintech")
	require.NoError(t, err)

	require.NotNil(t, eng.wf)
	assert.Equal(t, types.WorkflowBusinessIntelligence, eng.wf.ID)
	assert.Equal(t, "fintech", eng.inputs["industry"])

	assert.Contains(t, out, "Agents initialized:")
	assert.Contains(t, out, "Tasks configured: 5")
	assert.Contains(t, out, "Generated Reports:")
	assert.Contains(t, out, "outputs/final_report.md")
	assert.Contains(t, out, "Final Result:\n# Final report")
	assert.Contains(t, out, "Token usage: 100 input, 20 output across 5 calls")
}

func TestRun_NoArgsRunsML(t *testing.T) {
	isolate(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	eng := &fakeEngine{}
	useEngine(t, eng)

	_, err := execute(t)
	require.NoError(t, err)
	require.NotNil(t, eng.wf)
	assert.Equal(t, types.WorkflowML, eng.wf.ID)
	assert.Equal(t, "42", eng.inputs["random_state"])
	assert.Equal(t, "5", eng.inputs["cv_folds"])
}

func TestRun_Subcommand(t *testing.T) {
	isolate(t)
	t.Setenv("OPENAI_API_BASE", "http://localhost:11434/v1")
	eng := &fakeEngine{}
	useEngine(t, eng)

	_, err := execute(t, "run", "dev_code", "--input", "language=Go")
	require.NoError(t, err)
	assert.Equal(t, types.WorkflowDevCode, eng.wf.ID)
	assert.Equal(t, "Go", eng.inputs["language"])
}

func TestRun_EngineFailure(t *testing.T) {
	isolate(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	useEngine(t, &fakeEngine{err: errors.New("rate limited")})

	out, err := execute(t, "--run", "research")
	require.Error(t, err)
	assert.ErrorContains(t, err, "rate limited")
	assert.Contains(t, out, "Troubleshooting tips:")
	assert.Contains(t, out, "Check your API keys are correctly set")
	assert.Contains(t, out, "outputs/partial_report.md")
}

func TestRun_InvalidInput(t *testing.T) {
	isolate(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	built := useEngine(t, &fakeEngine{})

	_, err := execute(t, "--run", "ml", "--input", "no-equals-sign")
	assert.ErrorContains(t, err, "expected key=value")
	assert.False(t, *built)
}

const crewFile = `
workflow:
  id: launch
  name: Launch
agents:
  - name: researcher
    catalog: market_researcher
tasks:
  - name: scan
    agent: researcher
    description: Scan the market.
    expected_output: A market scan.
`

func TestRun_File(t *testing.T) {
	isolate(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	eng := &fakeEngine{}
	useEngine(t, eng)

	path := filepath.Join(t.TempDir(), "crew.yaml")
	require.NoError(t, os.WriteFile(path, []byte(crewFile), 0644))

	_, err := execute(t, "run", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, types.WorkflowID("launch"), eng.wf.ID)
	assert.Equal(t, "launch/scan.md", eng.wf.Tasks[0].OutputFile)

	_, err = execute(t, "run", "ml", "--file", path)
	assert.ErrorContains(t, err, "not both")
}

func TestValidate(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(good, []byte(crewFile), 0644))
	require.NoError(t, os.WriteFile(bad, []byte(strings.Replace(crewFile, "agent: researcher", "agent: ghost", 1)), 0644))

	out, err := execute(t, "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Crew is valid")
	assert.Contains(t, out, "Tasks: 1")

	_, err = execute(t, "validate", bad)
	assert.ErrorIs(t, err, parser.ErrInvalidCrew)
}

func TestExport(t *testing.T) {
	isolate(t)
	out, err := execute(t, "export", "research_content")
	require.NoError(t, err)

	exported, err := parser.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "research_content", exported.Workflow.ID)
	assert.Len(t, exported.Tasks, 5)

	path := filepath.Join(t.TempDir(), "crew.yaml")
	_, err = execute(t, "export", "ml", "-o", path)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestDescribe(t *testing.T) {
	isolate(t)
	out, err := execute(t, "describe", "dev_code")
	require.NoError(t, err)
	assert.Contains(t, out, "Development & Code (dev_code)")
	assert.Contains(t, out, "Supported languages:")
	assert.Contains(t, out, "Default inputs:")
	assert.Contains(t, out, "context:")

	_, err = execute(t, "describe", "nope")
	assert.ErrorIs(t, err, crew.ErrUnknownWorkflow)
}

func TestDescribe_WebSearchAvailability(t *testing.T) {
	isolate(t)
	out, err := execute(t, "describe", "research")
	require.NoError(t, err)
	assert.Contains(t, out, "web_search (unavailable)")
	assert.Contains(t, out, "web search is off for this crew; set SERPER_API_KEY")

	t.Setenv("SERPER_API_KEY", "serper")
	out, err = execute(t, "describe", "research")
	require.NoError(t, err)
	assert.NotContains(t, out, "(unavailable)")
	assert.NotContains(t, out, "web search is off")
}

func topicEmbedding(_ context.Context, text string) ([]float32, error) {
	x, y := 0.1, 1.0
	if strings.Contains(strings.ToLower(text), "hyperparameter") {
		x, y = 1.0, 0.1
	}
	n := math.Hypot(x, y)
	return []float32{float32(x / n), float32(y / n)}, nil
}

func TestSearch(t *testing.T) {
	isolate(t)
	idx, err := vectorstore.Open(vectorstore.Options{Path: t.TempDir(), EmbeddingFunc: topicEmbedding}, nil)
	require.NoError(t, err)
	t.Setenv("CREWFLOW_MEMORY_PATH", idx.Path())
	orig := openIndex
	openIndex = func(config.Config, *zap.Logger) (*vectorstore.ReportIndex, error) { return idx, nil }
	t.Cleanup(func() { openIndex = orig })

	out, err := execute(t, "search", "anything")
	require.NoError(t, err)
	assert.Contains(t, out, "No indexed reports match")

	ctx := context.Background()
	require.NoError(t, idx.StoreReport(ctx, "run-1", types.WorkflowML, types.TaskOutput{
		Name: "hyperparameter_optimization", Agent: "hyperparameter_optimizer", Content: "Tune hyperparameter grids", File: "outputs/ml/h.md",
	}))
	require.NoError(t, idx.StoreReport(ctx, "run-1", types.WorkflowML, types.TaskOutput{
		Name: "data_analysis", Agent: "data_analyst", Content: "Missing values", File: "outputs/ml/d.md",
	}))

	out, err = execute(t, "search", "hyperparameter", "tuning", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "1. ml/hyperparameter_optimization")
	assert.NotContains(t, out, "data_analysis")
}

func TestSearch_NoIndex(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "reports")
	t.Setenv("CREWFLOW_MEMORY_PATH", path)

	out, err := execute(t, "search", "anything")
	require.NoError(t, err)
	assert.Contains(t, out, "Report memory is disabled")
	assert.NoDirExists(t, path)

	t.Setenv("CREWFLOW_MEMORY", "true")
	out, err = execute(t, "search", "anything")
	require.NoError(t, err)
	assert.Contains(t, out, "No report index at "+path)
	assert.NoDirExists(t, path)
}

func TestParseInputs(t *testing.T) {
	inputs, err := parseInputs([]string{"industry=fintech", "note=a=b", "empty="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"industry": "fintech", "note": "a=b", "empty": ""}, inputs)

	_, err = parseInputs([]string{"=value"})
	assert.Error(t, err)
}

func TestTruncateAndTitleCase(t *testing.T) {
	assert.Equal(t, "Data Analyst", titleCase("data_analyst"))
	assert.Equal(t, "abc...", truncate("abcdef", 3))
	assert.Equal(t, "a b", truncate("a\n  b", 10))
}
