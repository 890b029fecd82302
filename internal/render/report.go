// Package render prints simulation outcomes for a terminal: a title, a text
// Gantt chart, the process table and a statistics summary.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduling-simulator/internal/core"
	"cpu-scheduling-simulator/internal/util"
)

func Report(w io.Writer, title string, result *core.SimulationResult, stats util.Stats) {
	outputTitle(w, title)
	outputGantt(w, result)
	outputSchedule(w, result, stats)
	outputSummary(w, stats)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// outputGantt draws one cell per trace interval, with the start time of each
// cell below it and the final end time after the last one. An idle gap gets
// its own "-" cell.
func outputGantt(w io.Writer, result *core.SimulationResult) {
	set := result.Set()
	var labels, times strings.Builder
	labels.WriteString("|")
	clock := 0
	cell := func(label string, start int) {
		padding := strings.Repeat(" ", max(0, (8-len(label))/2))
		labels.WriteString(padding + label + padding + "|")
		times.WriteString(fmt.Sprint(start) + "\t")
	}
	for _, e := range result.Trace {
		if e.Start > clock {
			cell("-", clock)
		}
		cell(set.Process(e.ProcessId).Name, e.Start)
		clock = e.End
	}
	times.WriteString(fmt.Sprint(clock))

	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprintln(w, labels.String())
	_, _ = fmt.Fprintf(w, "%s\n\n", times.String())
}

func outputSchedule(w io.Writer, result *core.SimulationResult, stats util.Stats) {
	rows := make([][]string, 0, len(result.Completion))
	for _, p := range result.Set().Processes() {
		rows = append(rows, []string{
			p.Name,
			fmt.Sprint(p.Arrival),
			fmt.Sprint(p.Burst),
			fmt.Sprint(p.Priority),
			fmt.Sprint(result.Completion[p.Id]),
			fmt.Sprint(result.Turnaround[p.Id]),
			fmt.Sprint(result.Waiting[p.Id]),
		})
	}

	_, _ = fmt.Fprintln(w, "Process table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Arrival", "Burst", "Priority", "Finishing", "Turnaround", "Waiting"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", stats.AverageTurnaroundTime),
		fmt.Sprintf("Average\n%.2f", stats.AverageWaitingTime)})
	table.Render()
}

func outputSummary(w io.Writer, stats util.Stats) {
	_, _ = fmt.Fprintln(w, "Statistics summary")
	_, _ = fmt.Fprintf(w, "Total Turnaround Time: %d\n", stats.TotalTurnaroundTime)
	_, _ = fmt.Fprintf(w, "Average Turnaround Time: %.2f\n", stats.AverageTurnaroundTime)
	_, _ = fmt.Fprintf(w, "Total Waiting Time: %d\n", stats.TotalWaitingTime)
	_, _ = fmt.Fprintf(w, "Average Waiting Time: %.2f\n", stats.AverageWaitingTime)
	_, _ = fmt.Fprintf(w, "CPU Utilization: %.2f%%  Throughput: %.2f/t  Context switches: %d\n\n",
		stats.CpuUtilization*100, stats.CpuThroughput, stats.ContextSwitches)
}
