// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package presentation renders a lint run's results in JSON and
// tabular formats: a per-rule violation count table and a run metrics
// table, both built with github.com/olekukonko/tablewriter.
package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/svlint/svlint/internal/telemetry"
	"github.com/svlint/svlint/lintrule"
)

// Output is the top-level JSON shape for --format=json: every file's
// rule statuses plus any fatal errors encountered along the way.
type Output struct {
	Files  map[string][]lintrule.RuleStatus `json:"files,omitempty"`
	Errors []string                         `json:"errors,omitempty"`
}

// PrintJSON prints indented json output.
func PrintJSON(writer io.Writer, x interface{}) error {
	buf, err := json.MarshalIndent(x, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(writer, string(buf))
	return nil
}

// PrintPrettySummary prints a per-rule violation-count table followed
// by a run metrics table.
func PrintPrettySummary(writer io.Writer, statusesByFile map[string][]lintrule.RuleStatus, metrics telemetry.Snapshot) {
	PrintPrettyViolationCounts(writer, statusesByFile)
	PrintPrettyMetrics(writer, metrics)
}

// PrintPrettyViolationCounts prints one row per rule id that produced
// at least one violation anywhere across statusesByFile, sorted by
// rule id, with its total violation count.
func PrintPrettyViolationCounts(writer io.Writer, statusesByFile map[string][]lintrule.RuleStatus) {
	counts := map[string]int{}
	for _, statuses := range statusesByFile {
		for _, s := range statuses {
			counts[s.RuleID] += len(s.Violations)
		}
	}
	table := tablewriter.NewWriter(writer)
	table.SetHeader([]string{"Rule", "Violations"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	ids := make([]string, 0, len(counts))
	for id, n := range counts {
		if n > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	for _, id := range ids {
		table.Append([]string{id, fmt.Sprintf("%d", counts[id])})
	}
	if table.NumLines() > 0 {
		fmt.Fprintln(writer)
		table.Render()
	}
}

// PrintPrettyMetrics prints the telemetry snapshot as a two-column
// name/value table.
func PrintPrettyMetrics(writer io.Writer, metrics telemetry.Snapshot) {
	table := tablewriter.NewWriter(writer)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	rows := [][]string{
		{"files_linted", fmt.Sprintf("%.0f", metrics.FilesLinted)},
		{"violations_total", fmt.Sprintf("%.0f", metrics.ViolationsTotal)},
		{"syntax_errors", fmt.Sprintf("%.0f", metrics.SyntaxErrors)},
	}
	if metrics.LintDurationN > 0 {
		avg := metrics.LintDurationSum / float64(metrics.LintDurationN)
		rows = append(rows, []string{"avg_lint_seconds", fmt.Sprintf("%.4f", avg)})
	}
	table.AppendBulk(rows)

	fmt.Fprintln(writer)
	table.Render()
}
