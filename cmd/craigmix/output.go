package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"craigmix/internal/merge"
)

func renderDryRun(cmd *cobra.Command, plans []merge.FolderPlan) {
	out := cmd.OutOrStdout()
	if len(plans) == 0 {
		fmt.Fprintln(out, "No Craig folders found.")
		return
	}

	rows := make([][]string, 0, len(plans))
	for _, plan := range plans {
		rows = append(rows, []string{
			plan.Folder.Name,
			strconv.Itoa(plan.FileCount),
			plan.OutputName,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Folder", "Tracks", "Output"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft},
	))
	fmt.Fprintf(out, "%d folder(s) would be processed.\n", len(plans))
}

func renderSummary(cmd *cobra.Command, summary *merge.Summary) {
	out := cmd.OutOrStdout()
	if summary == nil || summary.Total() == 0 {
		fmt.Fprintln(out, "No Craig folders found.")
		return
	}

	rows := make([][]string, 0, len(summary.Results))
	for _, result := range summary.Results {
		status := "ok"
		detail := result.OutputPath
		if result.Err != nil {
			status = "failed"
			detail = result.Err.Error()
		}
		rows = append(rows, []string{result.Folder.Name, status, detail})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Folder", "Status", "Result"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft},
	))
	fmt.Fprintf(out, "Processed %d folder(s): %d succeeded, %d failed.\n",
		summary.Total(), summary.Succeeded, summary.Failed)
}
