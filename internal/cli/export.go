/*
Copyright © 2026 Crewflow Authors
*/
package cli

import (
	"fmt"
	"os"

	"Crewflow/internal/crew"
	"Crewflow/internal/parser"
	"Crewflow/pkg/types"

	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <crew-type>",
	Short: "Write a built-in crew as a YAML crew file",
	Long: `Export writes a built-in crew in crew file form, ready to be edited
and run with 'crewflow run --file'.

Examples:
  crewflow export ml
  crewflow export documentation -o docs-crew.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wf, err := crew.Assemble(types.WorkflowID(args[0]))
		if err != nil {
			return err
		}
		data, err := parser.Export(wf)
		if err != nil {
			return fmt.Errorf("failed to export %s: %w", wf.ID, err)
		}

		if exportOutput == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(exportOutput, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Exported %s to %s\n", mark(true), wf.ID, exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to this file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
