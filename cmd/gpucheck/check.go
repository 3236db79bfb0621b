package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orneryd/gpucheck/pkg/capability"
	"github.com/orneryd/gpucheck/pkg/doctor"
)

var (
	checkMinMajor int
	checkMinMinor int
	checkDevice   int
	checkFeatures bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify compute capability against a minimum",
	Long: `Read the compute capability of one device and compare both version
components against the configured minimums. Exits 0 when the device
meets the minimum, 1 when it falls short or no device is present.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := capability.Requirement{MinMajor: checkMinMajor, MinMinor: checkMinMinor}
		if !cmd.Flags().Changed("min-major") {
			req.MinMajor = cfg.MinCCMajor
		}
		if !cmd.Flags().Changed("min-minor") {
			req.MinMinor = cfg.MinCCMinor
		}

		det, err := newDetector()
		if err != nil {
			return err
		}
		defer det.Release()

		dev, err := det.Device(checkDevice)
		if err != nil {
			fmt.Println(doctor.NoDeviceMessage)
			det.Release()
			os.Exit(1)
		}

		major, minor := dev.ComputeCapability()
		res := req.Check(major, minor)
		fmt.Println(res.Message)

		if checkFeatures {
			fmt.Println()
			doctor.RenderFeatures(os.Stdout, capability.Features(major, minor))
		}

		if !res.Satisfied {
			det.Release()
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().IntVar(&checkMinMajor, "min-major", capability.Default().MinMajor, "minimum compute capability major version")
	checkCmd.Flags().IntVar(&checkMinMinor, "min-minor", capability.Default().MinMinor, "minimum compute capability minor version")
	checkCmd.Flags().IntVar(&checkDevice, "device", 0, "device index to check")
	checkCmd.Flags().BoolVar(&checkFeatures, "features", false, "also list hardware features gated by compute capability")
	rootCmd.AddCommand(checkCmd)
}
