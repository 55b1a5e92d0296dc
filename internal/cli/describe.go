/*
Copyright © 2026 Crewflow Authors
*/
package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"Crewflow/internal/config"
	"Crewflow/internal/crew"
	"Crewflow/internal/tools"
	"Crewflow/pkg/types"

	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <crew-type>",
	Short: "Show the agents, tasks and inputs of a crew",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return describeCrew(cmd.OutOrStdout(), cfg, args[0])
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func describeCrew(w io.Writer, c config.Config, id string) error {
	d, err := crew.Describe(types.WorkflowID(id), crew.WithProcess(c.Process))
	if err != nil {
		return err
	}
	reg := tools.Default(tools.Options{SerperAPIKey: c.Credentials.SerperAPIKey}, logger)
	printDescription(w, d, reg)
	return nil
}

func printDescription(w io.Writer, d *crew.Description, reg *tools.Registry) {
	wf := d.Spec
	heading(w, fmt.Sprintf("%s (%s)", d.Name, d.ID), 60)
	fmt.Fprintln(w, d.Description)
	fmt.Fprintf(w, "Process: %s\n", wf.Process)

	fmt.Fprintln(w, "\nWorkflow:")
	for i, step := range d.Steps {
		fmt.Fprintf(w, "  %d. %s\n", i+1, step)
	}

	fmt.Fprintln(w, "\nAgents:")
	searching := false
	for _, m := range wf.Agents {
		carried := "no tools"
		if len(m.Agent.Tools) > 0 {
			names := make([]string, len(m.Agent.Tools))
			for i, t := range m.Agent.Tools {
				names[i] = string(t)
				if !reg.Enabled(t) {
					names[i] += " (unavailable)"
				}
			}
			carried = strings.Join(names, ", ")
		}
		searching = searching || m.Agent.HasTool(types.ToolWebSearch)
		fmt.Fprintf(w, "  %-26s %s [%s]\n", m.Name, m.Agent.Role, carried)
	}
	if searching && !reg.Enabled(types.ToolWebSearch) {
		printWarning(w, "web search is off for this crew; set %s to enable it", config.EnvSerperKey)
	}

	fmt.Fprintln(w, "\nTasks:")
	for i, t := range wf.Tasks {
		fmt.Fprintf(w, "  %d. %-30s -> %s\n", i+1, t.Name, t.OutputFile)
		fmt.Fprintf(w, "     agent: %s\n", wf.AgentFor(t).Name)
		if len(t.DependsOn) > 0 {
			deps := make([]string, len(t.DependsOn))
			for j, ref := range t.DependsOn {
				deps[j] = wf.Tasks[ref].Name
			}
			fmt.Fprintf(w, "     context: %s\n", strings.Join(deps, ", "))
		}
	}

	if len(wf.Inputs) > 0 {
		fmt.Fprintln(w, "\nDefault inputs:")
		keys := make([]string, 0, len(wf.Inputs))
		for k := range wf.Inputs {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "  %s = %s\n", k, wf.Inputs[k])
		}
	}

	for _, opt := range d.Options {
		fmt.Fprintf(w, "\nSupported %s:\n", opt.Name)
		fmt.Fprintf(w, "  %s\n", strings.Join(opt.Values, ", "))
	}
}
