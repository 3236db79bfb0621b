// Package doctor - terminal rendering for verification results.
package doctor

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/orneryd/gpucheck/pkg/capability"
	"github.com/orneryd/gpucheck/pkg/gpu"
	"github.com/orneryd/gpucheck/pkg/hostinfo"
	"github.com/orneryd/gpucheck/pkg/report"
)

// newTable applies the house table style.
func newTable(w io.Writer) *tablewriter.Table {
	tw := tablewriter.NewWriter(w)
	tw.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	tw.SetCenterSeparator("|")
	tw.SetColumnSeparator("|")
	tw.SetRowSeparator("-")
	return tw
}

// RenderDevices prints one row per detected device, or the fixed
// no-device message when the slice is empty.
func RenderDevices(w io.Writer, devices []gpu.DeviceInfo) {
	if len(devices) == 0 {
		fmt.Fprintln(w, NoDeviceMessage)
		return
	}

	tw := newTable(w)
	tw.SetHeader([]string{"ID", "Name", "Backend", "Memory (MB)", "CC", "Arch"})

	for _, dev := range devices {
		cc := "-"
		if dev.Backend == gpu.BackendCUDA {
			cc = fmt.Sprintf("%d.%d", dev.CCMajor, dev.CCMinor)
		}
		tw.Append([]string{
			strconv.Itoa(dev.Index),
			dev.Name,
			dev.Backend.String(),
			strconv.Itoa(dev.MemoryMB),
			cc,
			dev.ArchFamily(),
		})
	}

	tw.Render()
}

// RenderComparison prints the host/device comparison table: the
// conventional computer on one side, the accelerator on the other.
func RenderComparison(w io.Writer, host hostinfo.HostInfo, devices []gpu.DeviceInfo) {
	tw := newTable(w)
	tw.SetHeader([]string{"", "Host", "Device"})

	devModel, devMem, devCores := "none detected", "-", "-"
	if len(devices) > 0 {
		dev := devices[0]
		devModel = dev.Name
		devMem = strconv.Itoa(dev.MemoryMB)
		devCores = dev.ArchFamily()
	}

	tw.Append([]string{"Model", host.CPUModel, devModel})
	tw.Append([]string{"Cores/Arch", strconv.Itoa(host.CPUCoresLogical), devCores})
	tw.Append([]string{"Memory (MB)", strconv.Itoa(host.MemoryMB), devMem})

	tw.Render()
}

// RenderFeatures prints the capability-gated feature table.
func RenderFeatures(w io.Writer, features []capability.Feature) {
	if len(features) == 0 {
		return
	}

	tw := newTable(w)
	tw.SetHeader([]string{"Feature", "Requires CC", "Supported"})

	for _, f := range features {
		supported := "no"
		if f.Supported {
			supported = "yes"
		}
		tw.Append([]string{
			f.Name,
			fmt.Sprintf("%d.%d", f.MinMajor, f.MinMinor),
			supported,
		})
	}

	tw.Render()
}

// RenderReport prints the full doctor output for a terminal.
func RenderReport(w io.Writer, rep *report.Report) {
	fmt.Fprintf(w, "Host: %s\n\n", rep.Host.String())

	RenderDevices(w, rep.Devices)
	fmt.Fprintln(w)

	fmt.Fprintln(w, rep.Capability.Message)
	fmt.Fprintln(w)

	if len(rep.Features) > 0 {
		RenderFeatures(w, rep.Features)
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, rep.Summary())
}
