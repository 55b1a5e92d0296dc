/*
Copyright © 2026 Crewflow Authors
*/
package cli

import (
	"fmt"
	"io"

	"Crewflow/internal/crew"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"list-crews"},
	Short:   "List the available crew types",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printCrews(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func printCrews(w io.Writer) {
	heading(w, "Available Crew Types:", 40)
	for _, info := range crew.Infos() {
		fmt.Fprintf(w, "  %-22s %-27s %s\n", info.ID, info.Name, info.Description)
	}
}
