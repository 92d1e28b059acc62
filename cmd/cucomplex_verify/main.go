// Copyright 2025-2026 The cucomplex Authors. SPDX-License-Identifier: Apache-2.0

// cucomplex_verify runs the complex-pow conformance sweep for the selected
// element dtypes and prints a per-dtype report. It exits with status 0 when
// every dtype passes, 1 otherwise -- the pass/fail gate for CI.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/gocuda/cucomplex/pkg/core/conformance"
	"github.com/gocuda/cucomplex/pkg/core/dtypes"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"
)

var (
	flagDTypes = flag.String("dtypes", "", "Comma-separated list of element dtypes to verify "+
		"(f16, bf16, f32, f64, or their long names). Defaults to every float dtype enabled on this build.")
	flagList = flag.Bool("list", false, "Print the fixture of complex test values and exit.")
	flagQuiet = flag.Bool("q", false, "Suppress the report table. The exit status and failure "+
		"messages are still reported.")
	flagNoProgress = flag.Bool("no_progress", false, "Disable the progress bar.")
)

func main() {
	flag.Parse()
	if flag.NArg() > 0 {
		klog.Errorf("Unexpected arguments %q. See 'cucomplex_verify -help'.", flag.Args())
		os.Exit(1)
	}
	if *flagList {
		listCases()
		return
	}

	dts := must.M1(parseDTypes(*flagDTypes))
	if len(dts) == 0 {
		dts = dtypes.EnabledFloats()
	}

	var onCheck func()
	var bar *progressbar.ProgressBar
	if !*flagNoProgress {
		bar = progressbar.NewOptions(conformance.NumChecks()*len(dts),
			progressbar.OptionSetDescription("conformance"),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionSetWriter(os.Stderr))
		onCheck = func() { _ = bar.Add(1) }
	}
	report := conformance.RunAll(onCheck, dts...)
	if bar != nil {
		_ = bar.Finish()
	}

	if !*flagQuiet {
		printReport(report)
	}
	if !report.Passed() {
		for _, result := range report.Results {
			if !result.Passed() {
				klog.Errorf("dtype %s failed after %s checks: %+v",
					result.DType, humanize.Comma(int64(result.Checks)), result.Err)
			}
		}
		os.Exit(1)
	}
}

// parseDTypes converts the -dtypes flag value to the dtypes to verify.
// An empty value selects the build's default set.
func parseDTypes(list string) ([]dtypes.DType, error) {
	if list == "" {
		return nil, nil
	}
	var dts []dtypes.DType
	for _, name := range strings.Split(list, ",") {
		dtype, err := dtypes.FromName(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		if !dtype.IsFloat() {
			return nil, errors.Errorf("dtype %s is not a float element type", dtype)
		}
		if !dtype.Enabled() {
			return nil, errors.Errorf("dtype %s is disabled on this build", dtype)
		}
		dts = append(dts, dtype)
	}
	return dts, nil
}

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)
	oddRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF")).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999")).
			PaddingLeft(1).PaddingRight(1)
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 0, 4)

	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func newPlainTable() *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			if row == 1 {
				return headerRowStyle
			}
			if row%2 == 0 {
				return oddRowStyle
			}
			return evenRowStyle
		})
}

func printReport(report *conformance.Report) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("Conformance run %s", report.RunID)))
	table := newPlainTable()
	table.Row("DType", "Checks", "Elapsed", "Result")
	for _, result := range report.Results {
		verdict := passStyle.Render("PASS")
		if !result.Passed() {
			verdict = failStyle.Render("FAIL")
		}
		table.Row(
			result.DType.String(),
			humanize.Comma(int64(result.Checks)),
			result.Elapsed.String(),
			verdict)
	}
	fmt.Println(table.Render())
}

func listCases() {
	fmt.Printf("Fixture: %d complex values per element type\n", len(conformance.Cases[float64]()))
	for i, c := range conformance.Cases[float64]() {
		fmt.Printf("  [%2d] %s\n", i, c)
	}
}
