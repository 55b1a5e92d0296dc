/*
Copyright © 2026 Crewflow Authors
*/
package cli

import (
	"fmt"

	"Crewflow/internal/parser"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <crew.yaml>",
	Short: "Validate a crew file",
	Long: `Validate checks a crew YAML file for syntax errors and
structural issues without executing it.

Catalog references must name a known role, every task must name a
defined agent, and depends_on may only list tasks declared earlier.

Examples:
  crewflow validate crew.yaml
  crewflow export ml | crewflow validate /dev/stdin`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		crewFile := args[0]
		out := cmd.OutOrStdout()

		if verbose {
			fmt.Fprintf(out, "Validating crew: %s\n", crewFile)
		}

		wf, err := parser.Load(crewFile, nil)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		fmt.Fprintf(out, "%s Crew is valid\n", mark(true))
		fmt.Fprintf(out, "  ID: %s\n", wf.ID)
		fmt.Fprintf(out, "  Process: %s\n", wf.Process)
		fmt.Fprintf(out, "  Agents: %d\n", len(wf.Agents))
		fmt.Fprintf(out, "  Tasks: %d\n", len(wf.Tasks))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
