package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orneryd/gpucheck/pkg/doctor"
	"github.com/orneryd/gpucheck/pkg/hostinfo"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show host and device facts side by side",
	Long: `Print the host's CPU, memory, and platform next to the detected
accelerator, the way hardware comparison tables pair them. Useful for a
quick sense of what the machine offers before running anything on it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		host, err := hostinfo.Collect(cmd.Context())
		if err != nil {
			return err
		}

		det, derr := newDetector()
		if derr != nil {
			return derr
		}
		defer det.Release()

		fmt.Printf("Host: %s\n", host.String())
		fmt.Printf("Fingerprint: %s\n\n", hostinfo.Fingerprint())

		doctor.RenderComparison(os.Stdout, host, det.Devices())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
