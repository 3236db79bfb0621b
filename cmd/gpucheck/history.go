package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orneryd/gpucheck/pkg/doctor"
	"github.com/orneryd/gpucheck/pkg/report"
)

var (
	historyShowJSON bool
	historyKeep     int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect saved verification reports",
	Long: `Reports saved with "gpucheck doctor --save" are kept in a local
store under the configured history directory. The history commands list,
show, and prune them.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved reports, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := report.Open(cfg.HistoryDir)
		if err != nil {
			return err
		}
		defer store.Close()

		reports, err := store.List()
		if err != nil {
			return err
		}
		if len(reports) == 0 {
			fmt.Println("no saved reports")
			return nil
		}
		for _, r := range reports {
			fmt.Printf("%s  %s  %s\n", r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Summary())
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one saved report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := report.Open(cfg.HistoryDir)
		if err != nil {
			return err
		}
		defer store.Close()

		rep, err := store.Get(args[0])
		if err != nil {
			if errors.Is(err, report.ErrNotFound) {
				return fmt.Errorf("no report with id %s", args[0])
			}
			return err
		}

		if historyShowJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rep)
		}
		doctor.RenderReport(os.Stdout, rep)
		return nil
	},
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all but the most recent reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := report.Open(cfg.HistoryDir)
		if err != nil {
			return err
		}
		defer store.Close()

		removed, err := store.Prune(historyKeep)
		if err != nil {
			return err
		}
		fmt.Printf("removed %d report(s), kept %d most recent\n", removed, historyKeep)
		return nil
	},
}

func init() {
	historyShowCmd.Flags().BoolVar(&historyShowJSON, "json", false, "emit the report as JSON")
	historyPruneCmd.Flags().IntVar(&historyKeep, "keep", 20, "number of recent reports to keep")
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyPruneCmd)
	rootCmd.AddCommand(historyCmd)
}
