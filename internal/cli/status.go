/*
Copyright © 2026 Crewflow Authors
*/
package cli

import (
	"fmt"
	"io"

	"Crewflow/internal/catalog"
	"Crewflow/internal/config"
	"Crewflow/internal/crew"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and crew status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printStatus(cmd.OutOrStdout(), cfg)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func printStatus(w io.Writer, c config.Config) {
	heading(w, "Crewflow Multi-Agent Swarm Status", 50)

	set := 0
	rows := c.Checklist()
	for _, cred := range rows {
		if cred.Set {
			set++
		}
	}
	ready := c.Ready()
	fmt.Fprintf(w, "Environment Ready: %s\n", mark(ready))
	fmt.Fprintf(w, "API Keys Configured: %d/%d\n", set, len(rows))

	model := c.Model()
	fmt.Fprintln(w, "\nConfiguration:")
	fmt.Fprintf(w, "  verbose: %t\n", c.Verbose)
	fmt.Fprintf(w, "  process_type: %s\n", c.Process)
	fmt.Fprintf(w, "  outputs_dir: %s\n", c.OutputsDir)
	fmt.Fprintf(w, "  provider: %s\n", model.Provider)
	fmt.Fprintf(w, "  model: %s\n", model.Name)
	if model.Endpoint != "" {
		fmt.Fprintf(w, "  endpoint: %s\n", model.Endpoint)
	}
	fmt.Fprintf(w, "  web_search: %t\n", c.SearchEnabled())
	fmt.Fprintf(w, "  memory: %t\n", c.Memory.Enabled)
	fmt.Fprintf(w, "  agent_catalog: %d personas\n", catalog.Default().Len())
	if c.File != "" {
		fmt.Fprintf(w, "  config_file: %s\n", c.File)
	}

	fmt.Fprintln(w, "\nAvailable Crew Types:")
	for _, info := range crew.Infos() {
		wf, err := crew.Assemble(info.ID)
		if err != nil {
			fmt.Fprintf(w, "  %-22s %-27s (status unavailable)\n", info.ID, info.Name)
			continue
		}
		fmt.Fprintf(w, "  %-22s %-27s %-35s (%d agents, %d tasks)\n",
			info.ID, info.Name, info.Description, len(wf.Agents), len(wf.Tasks))
	}

	if !ready {
		fmt.Fprintln(w)
		printWarning(w, "Run setup first: crewflow --setup")
		fmt.Fprintln(w, "Use --list-crews to see all available swarms")
	}
}
