/*
Copyright © 2026 Crewflow Authors
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"Crewflow/internal/config"
	"Crewflow/pkg/types"

	"github.com/spf13/cobra"
)

var (
	searchWorkflow string
	searchLimit    int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search reports from earlier runs",
	Long: `Search looks up the reports indexed by earlier runs. Reports are only
indexed when CREWFLOW_MEMORY=true (or memory.enabled in crewflow.yaml).

Examples:
  crewflow search "feature importance drift"
  crewflow search "pricing strategy" --workflow business_intelligence --limit 3`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return searchReports(cmd.Context(), cmd.OutOrStdout(), cfg, strings.Join(args, " "))
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchWorkflow, "workflow", "w", "", "only search reports of this crew type")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 5, "maximum number of results")
	rootCmd.AddCommand(searchCmd)
}

func searchReports(ctx context.Context, out io.Writer, c config.Config, query string) error {
	path := indexPath(c)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if !c.Memory.Enabled {
			fmt.Fprintln(out, "Report memory is disabled, so no reports have been indexed.")
			fmt.Fprintln(out, "Set CREWFLOW_MEMORY=true and run a crew to build the index.")
		} else {
			fmt.Fprintf(out, "No report index at %s yet. Run a crew first.\n", path)
		}
		return nil
	}

	idx, err := openIndex(c, logger)
	if err != nil {
		return fmt.Errorf("failed to open report index: %w", err)
	}
	results, err := idx.Search(ctx, query, searchLimit, types.WorkflowID(searchWorkflow))
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintf(out, "No indexed reports match %q (index: %s)\n", query, idx.Path())
		return nil
	}

	for i, r := range results {
		fmt.Fprintf(out, "%d. %s/%s  score=%.3f  run=%s\n", i+1, r.Workflow, r.Task, r.Score, r.RunID)
		if r.File != "" {
			fmt.Fprintf(out, "   %s\n", r.File)
		}
		fmt.Fprintf(out, "   %s\n", truncate(r.Content, 160))
	}
	return nil
}
