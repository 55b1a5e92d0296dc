/*
Copyright © 2026 Crewflow Authors
*/
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"Crewflow/internal/agent"
	"Crewflow/internal/config"
	"Crewflow/internal/crew"
	"Crewflow/internal/engine"
	"Crewflow/internal/llm"
	"Crewflow/internal/parser"
	"Crewflow/internal/tools"
	"Crewflow/internal/vectorstore"
	"Crewflow/pkg/types"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errNotReady = errors.New("environment not properly configured")

var (
	runFile   string
	runInputs []string
)

var runCmd = &cobra.Command{
	Use:   "run [crew-type]",
	Short: "Run a crew",
	Long: `Run executes a built-in crew, or a crew defined in a YAML file.

Each task writes a Markdown report under the outputs directory
(<outputs>/<crew-type>/<report>.md); reports from earlier runs are
overwritten. Without a crew type the ml crew runs.

Examples:
  crewflow run ml
  crewflow run business_intelligence --input industry=fintech
  crewflow run --file crews/launch.yaml --verbose`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := string(types.WorkflowML)
		if len(args) == 1 {
			if runFile != "" {
				return errors.New("give either a crew type or --file, not both")
			}
			id = args[0]
		}
		return runWorkflow(cmd, cfg, id, runFile, runInputs)
	},
}

func init() {
	runCmd.Flags().StringVarP(&runFile, "file", "f", "", "run the crew defined in this YAML file")
	runCmd.Flags().StringArrayVar(&runInputs, "input", nil, "workflow input as key=value (repeatable)")
	rootCmd.AddCommand(runCmd)
}

// newEngine builds the execution engine for a run.
var newEngine = func(c config.Config, logger *zap.Logger) (crew.Engine, error) {
	client, err := llm.New(c.Model(), logger)
	if err != nil {
		return nil, err
	}
	client = llm.WithRateLimit(client, c.LLM.RequestsPerMinute)
	tracker := llm.NewTracker()
	runner := agent.NewRunner(client,
		agent.WithTracker(tracker),
		agent.WithMaxTokens(c.LLM.MaxTokens),
		agent.WithLogger(logger),
	)

	opts := []engine.Option{
		engine.WithTools(tools.Default(tools.Options{SerperAPIKey: c.Credentials.SerperAPIKey}, logger)),
		engine.WithTracker(tracker),
		engine.WithOutputsDir(c.OutputsDir),
		engine.WithLogger(logger),
	}
	if c.Memory.Enabled {
		idx, err := openIndex(c, logger)
		if err != nil {
			logger.Warn("report index disabled", zap.Error(err))
		} else {
			opts = append(opts, engine.WithIndex(idx))
		}
	}
	return engine.NewExecutor(runner, opts...), nil
}

var openIndex = func(c config.Config, logger *zap.Logger) (*vectorstore.ReportIndex, error) {
	return vectorstore.Open(vectorstore.Options{
		Path:     indexPath(c),
		Embedder: c.Memory.Embedder,
		Model:    c.Memory.Model,
		APIKey:   c.Credentials.OpenAIAPIKey,
		BaseURL:  c.Memory.BaseURL,
	}, logger)
}

func indexPath(c config.Config) string {
	if c.Memory.Path != "" {
		return c.Memory.Path
	}
	return vectorstore.DefaultPath()
}

func runBuiltIn(cmd *cobra.Command, c config.Config, id string) error {
	return runWorkflow(cmd, c, id, "", inputFlags)
}

func runWorkflow(cmd *cobra.Command, c config.Config, id, file string, rawInputs []string) error {
	out := cmd.OutOrStdout()

	wf, err := resolveWorkflow(c, id, file)
	if err != nil {
		if errors.Is(err, crew.ErrUnknownWorkflow) {
			fmt.Fprintf(out, "Unknown crew type: %s\n", id)
			fmt.Fprintln(out, "Run 'crewflow --list-crews' to see available types")
		}
		return err
	}

	inputs, err := parseInputs(rawInputs)
	if err != nil {
		return err
	}
	if wf.ID == types.WorkflowML && file == "" {
		inputs = crew.MergeInputs(c.MLInputs(), inputs)
	}

	heading(out, "Setting up Crewflow...", 60)
	if !checkEnvironment(out, c) {
		fmt.Fprintln(out)
		printError(out, errNotReady)
		fmt.Fprintln(out, "Run: crewflow --setup")
		return errNotReady
	}

	printPlan(out, wf)

	eng, err := newEngine(c, logger)
	if err != nil {
		return fmt.Errorf("failed to build engine: %w", err)
	}

	fmt.Fprintln(out)
	heading(out, fmt.Sprintf("Starting %s workflow...", wf.Name), 60)
	result, err := crew.Run(cmd.Context(), eng, wf, inputs)
	if err != nil {
		printFailure(out, c, wf, result, err)
		return fmt.Errorf("%s workflow failed: %w", wf.Name, err)
	}
	printResult(out, wf, result)
	return nil
}

func resolveWorkflow(c config.Config, id, file string) (*types.WorkflowSpec, error) {
	if file != "" {
		wf, err := parser.Load(file, nil)
		if err != nil {
			return nil, fmt.Errorf("error parsing crew file: %w", err)
		}
		return wf, nil
	}
	if !crew.Known(id) {
		return nil, fmt.Errorf("%w: %q", crew.ErrUnknownWorkflow, id)
	}
	return crew.Assemble(types.WorkflowID(id), crew.WithProcess(c.Process))
}

func parseInputs(raw []string) (map[string]string, error) {
	inputs := make(map[string]string, len(raw))
	for _, kv := range raw {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid input %q, expected key=value", kv)
		}
		inputs[key] = value
	}
	return inputs, nil
}

func printPlan(w io.Writer, wf *types.WorkflowSpec) {
	fmt.Fprintf(w, "\nInitializing %s Agent Swarm...\n", wf.Name)
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintln(w, "Agents initialized:")
	for i, name := range wf.MemberNames() {
		fmt.Fprintf(w, "  %d. %s\n", i+1, titleCase(name))
	}
	fmt.Fprintf(w, "\nTasks configured: %d\n", len(wf.Tasks))
	for i, t := range wf.Tasks {
		fmt.Fprintf(w, "  %d. %s (%s)\n", i+1, truncate(t.Description, 50), wf.AgentFor(t).Name)
	}
}

func printResult(w io.Writer, wf *types.WorkflowSpec, res *types.ExecutionResult) {
	fmt.Fprintln(w)
	heading(w, fmt.Sprintf("%s %s Workflow Complete!", mark(true), wf.Name), 60)

	fmt.Fprintln(w, "\nGenerated Reports:")
	for _, f := range res.Files {
		fmt.Fprintf(w, "  • %s\n", f)
	}

	fmt.Fprintln(w, "\nFinal Result:")
	fmt.Fprintln(w, res.Final)

	if res.Usage.Calls > 0 {
		fmt.Fprintf(w, "\nToken usage: %d input, %d output across %d calls\n",
			res.Usage.InputTokens, res.Usage.OutputTokens, res.Usage.Calls)
	}
	fmt.Fprintf(w, "Run %s finished in %s\n", res.RunID, res.Duration.Round(time.Millisecond))
}

func printFailure(w io.Writer, c config.Config, wf *types.WorkflowSpec, res *types.ExecutionResult, err error) {
	fmt.Fprintln(w)
	printError(w, fmt.Errorf("error during %s analysis: %w", wf.Name, err))
	fmt.Fprintln(w, "\nTroubleshooting tips:")
	fmt.Fprintln(w, "1. Check your API keys are correctly set")
	fmt.Fprintln(w, "2. Ensure the selected provider and model are reachable (crewflow --status)")
	fmt.Fprintln(w, "3. Verify network connectivity for API calls")
	fmt.Fprintf(w, "4. Check the %s/ directory for partial results\n", c.OutputsDir)

	if res != nil && len(res.Files) > 0 {
		fmt.Fprintln(w, "\nReports written before the failure:")
		for _, f := range res.Files {
			fmt.Fprintf(w, "  • %s\n", f)
		}
	}
}
