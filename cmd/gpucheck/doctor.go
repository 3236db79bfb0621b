package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/orneryd/gpucheck/pkg/capability"
	"github.com/orneryd/gpucheck/pkg/doctor"
	"github.com/orneryd/gpucheck/pkg/gpu"
	"github.com/orneryd/gpucheck/pkg/report"
)

var (
	doctorSave   bool
	doctorJSON   bool
	doctorDevice int
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run the full environment verification",
	Long: `Run every check in one pass: host facts, device enumeration,
compute capability, and feature support. The exit code reflects the
verdict, so doctor works in provisioning scripts as well as terminals.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := doctor.New(doctor.Options{
			Requirement:      capability.Requirement{MinMajor: cfg.MinCCMajor, MinMinor: cfg.MinCCMinor},
			PreferredBackend: gpu.ParseBackend(cfg.PreferredBackend),
			DeviceIndex:      doctorDevice,
			CacheTTL:         time.Duration(cfg.CacheTTLSeconds) * time.Second,
		})
		if err != nil {
			return err
		}
		defer doc.Close()

		rep, err := doc.Run(cmd.Context())
		if err != nil {
			return err
		}

		if doctorSave {
			if err := saveReport(rep); err != nil {
				return err
			}
		}

		if doctorJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(rep); err != nil {
				return err
			}
		} else {
			doctor.RenderReport(os.Stdout, rep)
		}

		if !rep.Passed {
			doc.Close()
			os.Exit(1)
		}
		return nil
	},
}

func saveReport(rep *report.Report) error {
	store, err := report.Open(cfg.HistoryDir)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(rep); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "saved report %s\n", rep.ID)
	return nil
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorSave, "save", false, "save the report to history")
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "emit the report as JSON")
	doctorCmd.Flags().IntVar(&doctorDevice, "device", 0, "device index for the capability check")
	rootCmd.AddCommand(doctorCmd)
}
