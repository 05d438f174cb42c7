// Package report implements sim.Reporter sinks: a human-readable table
// writer and a goroutine-safe recorder used to compare concurrent runs.
package report

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/apaude1/cosc519-cpu-simulation/sim"
)

// TableReporter renders snapshots as text tables. Writes from concurrent runs
// are serialized so one run's report is never interleaved with another's.
type TableReporter struct {
	mu sync.Mutex
	w  io.Writer
	// Verbose also prints every intermediate round, not just the final report.
	Verbose bool
}

// NewTableReporter creates a TableReporter writing to w.
func NewTableReporter(w io.Writer, verbose bool) *TableReporter {
	return &TableReporter{w: w, Verbose: verbose}
}

// Report implements sim.Reporter.
func (r *TableReporter) Report(snap sim.Snapshot) {
	if !snap.Final && !r.Verbose {
		return
	}
	var sb strings.Builder
	if snap.Final {
		writeFinal(&sb, snap)
	} else {
		writeRound(&sb, snap)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = io.WriteString(r.w, sb.String())
}

func writeRound(w io.Writer, snap sim.Snapshot) {
	_, _ = fmt.Fprintln(w, strings.Repeat("*", 30))
	_, _ = fmt.Fprintf(w, "[%s %s] %s round, current time: %d\n",
		snap.Policy, shortID(snap.RunID), humanize.Ordinal(snap.Round), snap.Clock)
	if snap.Running != nil {
		_, _ = fmt.Fprintf(w, "Executing Process: P%d; Remaining Burst Time: %d; Priority: %d\n",
			snap.Running.PID, snap.Running.Remaining, snap.Running.Priority)
	} else {
		_, _ = fmt.Fprintln(w, "Executing Process: Idle")
	}
	ready := make([]string, len(snap.Ready))
	for i, p := range snap.Ready {
		ready[i] = fmt.Sprintf("P%d", p.PID)
	}
	_, _ = fmt.Fprintf(w, "Ready Queue: [%s]\n", strings.Join(ready, " "))
	_, _ = fmt.Fprintf(w, "Gantt Chart: %s\n", sim.FormatGantt(snap.Gantt))
}

func writeFinal(w io.Writer, snap sim.Snapshot) {
	title := fmt.Sprintf("%s (run %s)", snap.Policy.Title(), shortID(snap.RunID))
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)))
	_, _ = fmt.Fprintln(w, title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)))
	_, _ = fmt.Fprintf(w, "Final Gantt Chart: %s\n", sim.FormatGantt(snap.Gantt))

	m := sim.NewMetrics(snap)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Priority", "Burst", "Arrival", "Start", "Response", "Wait", "Turnaround", "Completion"})
	for _, p := range snap.Processes {
		table.Append([]string{
			fmt.Sprint(p.PID),
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.StartTime),
			fmt.Sprint(p.ResponseTime),
			fmt.Sprint(p.WaitTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.CompletionTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", m.AvgResponse),
		fmt.Sprintf("Average\n%.2f", m.AvgWait),
		fmt.Sprintf("Average\n%.2f", m.AvgTurnaround),
		fmt.Sprintf("Throughput\n%.2f/t", m.Throughput)})
	table.Render()
	_, _ = fmt.Fprintf(w, "Context switches: %s; total time: %s ticks; CPU utilization: %.1f%%\n\n",
		humanize.Comma(int64(m.ContextSwitches)), humanize.Comma(m.Makespan), m.CPUUtilization*100)
}

// WriteComparison renders one row per run for side-by-side policy comparison.
func WriteComparison(w io.Writer, runs []sim.Metrics) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Run", "Processes", "Avg Wait", "Avg Turnaround", "Avg Response", "P90 Wait", "Switches", "Ticks", "CPU %"})
	for _, m := range runs {
		table.Append([]string{
			m.Policy,
			shortID(m.RunID),
			fmt.Sprintf("%d/%d", m.CompletedProcesses, m.TotalProcesses),
			fmt.Sprintf("%.2f", m.AvgWait),
			fmt.Sprintf("%.2f", m.AvgTurnaround),
			fmt.Sprintf("%.2f", m.AvgResponse),
			fmt.Sprintf("%.2f", m.P90Wait),
			humanize.Comma(int64(m.ContextSwitches)),
			humanize.Comma(m.Makespan),
			fmt.Sprintf("%.1f", m.CPUUtilization*100),
		})
	}
	table.Render()
}

// shortID trims UUID run identifiers for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
