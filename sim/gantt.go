package sim

import (
	"fmt"
	"strings"
)

// GanttEntry is one completed execution interval, inclusive on both ends.
type GanttEntry struct {
	PID   int   `yaml:"pid"`
	Start int64 `yaml:"start"`
	End   int64 `yaml:"end"`
}

// GanttChartQueue is the append-only execution log of a run.
type GanttChartQueue struct {
	entries []GanttEntry
}

// Append records an interval. Entries are never modified afterwards.
func (g *GanttChartQueue) Append(e GanttEntry) {
	if e.End < e.Start {
		panic(fmt.Sprintf("GanttChartQueue.Append: P%d ends at %d before it starts at %d", e.PID, e.End, e.Start))
	}
	g.entries = append(g.entries, e)
}

// Len returns the number of recorded intervals.
func (g *GanttChartQueue) Len() int { return len(g.entries) }

// Entries returns a copy of the log.
func (g *GanttChartQueue) Entries() []GanttEntry {
	out := make([]GanttEntry, len(g.entries))
	copy(out, g.entries)
	return out
}

func (g *GanttChartQueue) String() string {
	return FormatGantt(g.entries)
}

// FormatGantt renders entries as "P1[0-4] P2[5-7]".
func FormatGantt(entries []GanttEntry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("P%d[%d-%d]", e.PID, e.Start, e.End)
	}
	return strings.Join(parts, " ")
}
