/*
Copyright © 2026 Crewflow Authors
*/
package cli

import (
	"fmt"
	"io"

	"Crewflow/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Check the environment and API keys",
	Long: `Setup prints the credential checklist and tells you what is missing.

It always exits successfully; use it to see what the selected provider needs.

Examples:
  crewflow setup
  crewflow --setup`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printSetup(cmd.OutOrStdout(), cfg)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func printSetup(w io.Writer, c config.Config) {
	heading(w, "Setting up Crewflow...", 60)
	if checkEnvironment(w, c) {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Ready to run agent swarms!")
		fmt.Fprintln(w, "Execute: crewflow --run ml")
	}
}

// checkEnvironment prints the checklist and reports readiness.
func checkEnvironment(w io.Writer, c config.Config) bool {
	fmt.Fprintln(w, "Environment Check:")
	printChecklist(w, c)

	if c.Ready() {
		fmt.Fprintf(w, "\n%s Environment setup complete!\n", mark(true))
		return true
	}

	fmt.Fprintln(w)
	printWarning(w, "Missing configuration: %v", c.Missing())
	fmt.Fprintln(w, "Please set up your environment variables:")
	fmt.Fprintln(w, "1. Create a .env file next to where you run crewflow")
	fmt.Fprintf(w, "2. Fill in your API keys (at minimum %s for the %s provider)\n", requiredName(c), c.LLM.Provider)
	fmt.Fprintf(w, "3. For web search: add %s\n", config.EnvSerperKey)
	fmt.Fprintln(w, "\nAlternatively, set environment variables directly.")
	fmt.Fprintln(w, "\nFor local models (Ollama):")
	fmt.Fprintf(w, "  Set %s=http://localhost:11434/v1\n", config.EnvOpenAIBase)
	fmt.Fprintf(w, "  Set %s=your-model-name\n", config.EnvOpenAIModel)
	return false
}

func printChecklist(w io.Writer, c config.Config) {
	for _, cred := range c.Checklist() {
		note := ""
		switch {
		case cred.Required:
			note = " (required)"
		case cred.Name == config.EnvSerperKey:
			note = " (enables web search)"
		}
		fmt.Fprintf(w, "  %s %s%s\n", mark(cred.Set), cred.Name, note)
	}
}

func requiredName(c config.Config) string {
	for _, cred := range c.Checklist() {
		if cred.Required {
			return cred.Name
		}
	}
	return config.EnvOpenAIBase
}
