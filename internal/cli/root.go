/*
Copyright © 2026 Crewflow Authors
*/
package cli

import (
	"context"
	"fmt"

	"Crewflow/internal/config"
	"Crewflow/internal/logging"
	"Crewflow/pkg/types"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	envFile string
	verbose bool

	setupFlag  bool
	statusFlag bool
	listFlag   bool
	runFlag    string
	inputFlags []string
)

// Loaded by the root command before any subcommand runs.
var (
	cfg    config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "crewflow",
	Short: "Multi-agent crews for ML, research, business and engineering work",
	Long: `Crewflow runs crews of role-playing LLM agents. Each crew is a fixed,
ordered list of tasks; every task writes one Markdown report and hands its
output to the tasks that depend on it.

With no arguments, runs the ml crew.

Available crew types:
  ml                     Machine learning analysis
  research               General ML research
  research_academic      Academic research
  research_content       Content research
  business_intelligence  Business intelligence
  dev_code               Development and coding
  documentation          Technical documentation

Examples:
  crewflow --setup
  crewflow --status
  crewflow --list-crews
  crewflow --run research_academic --input research_topic="graph neural networks"`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case setupFlag:
			printSetup(cmd.OutOrStdout(), cfg)
			return nil
		case statusFlag:
			printStatus(cmd.OutOrStdout(), cfg)
			return nil
		case listFlag:
			printCrews(cmd.OutOrStdout())
			return nil
		case runFlag != "":
			return runBuiltIn(cmd, cfg, runFlag)
		default:
			return runBuiltIn(cmd, cfg, string(types.WorkflowML))
		}
	},
}

// Execute runs the root command and reports any error on stderr.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	_ = logger.Sync()
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./crewflow.yaml or $XDG_CONFIG_HOME/crewflow/crewflow.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load (default: .env when present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (overrides CREWAI_VERBOSE)")

	rootCmd.Flags().BoolVar(&setupFlag, "setup", false, "check the environment and API keys")
	rootCmd.Flags().BoolVar(&statusFlag, "status", false, "show configuration and crew status")
	rootCmd.Flags().BoolVar(&listFlag, "list-crews", false, "list the available crew types")
	rootCmd.Flags().StringVar(&runFlag, "run", "", "run the given crew type")
	rootCmd.Flags().StringArrayVar(&inputFlags, "input", nil, "workflow input as key=value (repeatable)")
	rootCmd.MarkFlagsMutuallyExclusive("setup", "status", "list-crews", "run")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	opts := config.Options{EnvFile: envFile, ConfigFile: cfgFile}
	if cmd.Flags().Changed("verbose") {
		opts.Verbose = &verbose
	}
	loaded, err := config.Load(opts)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg = loaded
	logger = logging.New(cfg.Verbose)
	return nil
}
