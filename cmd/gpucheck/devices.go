package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/orneryd/gpucheck/pkg/doctor"
	"github.com/orneryd/gpucheck/pkg/gpu"
)

var (
	devicesJSON bool
	devicesWide bool
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List detected accelerator devices",
	Long: `Probe the platform for compatible accelerators and print one line
per detected device. When no device is found a fixed message is printed
and the command still exits successfully: absence is an answer, not an
error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		det, err := newDetector()
		if err != nil {
			return err
		}
		defer det.Release()

		devices := det.Devices()

		if devicesJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(devices)
		}

		if devicesWide {
			doctor.RenderDevices(os.Stdout, devices)
			return nil
		}

		if len(devices) == 0 {
			fmt.Println(doctor.NoDeviceMessage)
			return nil
		}
		for _, d := range devices {
			fmt.Printf("%d: %s\n", d.Index, d.Name)
		}
		return nil
	},
}

func init() {
	devicesCmd.Flags().BoolVar(&devicesJSON, "json", false, "emit devices as JSON")
	devicesCmd.Flags().BoolVar(&devicesWide, "wide", false, "show memory, compute capability and architecture")
	rootCmd.AddCommand(devicesCmd)
}

// newDetector builds a detector from the loaded configuration.
func newDetector() (*gpu.Detector, error) {
	gcfg := gpu.DefaultConfig()
	gcfg.PreferredBackend = gpu.ParseBackend(cfg.PreferredBackend)
	if cfg.CacheTTLSeconds > 0 {
		gcfg.CacheTTL = time.Duration(cfg.CacheTTLSeconds) * time.Second
	}
	return gpu.NewDetector(gcfg)
}
