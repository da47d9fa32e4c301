package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"monserial/internal/preflight"
)

// renderChecks draws one row per preflight result.
func renderChecks(results []preflight.Result, colorize bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Check", "Status", "Detail"})
	for _, r := range results {
		kind := statusOK
		if !r.Passed {
			kind = statusError
		}
		tw.AppendRow(table.Row{r.Name, statusLabel(kind, colorize), r.Detail})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignCenter, AlignHeader: text.AlignCenter},
	})
	return tw.Render()
}
