package sim

// Reporter consumes accounting snapshots. The engine calls Report at the end
// of every round and once more with Final set when the run completes.
//
// Snapshots are deep copies, so a Reporter may retain them or hand them to
// other goroutines. A Reporter shared by concurrent runs must serialize its
// own writes.
type Reporter interface {
	Report(snap Snapshot)
}

// ReporterFunc adapts an ordinary function to the Reporter interface.
type ReporterFunc func(Snapshot)

// Report calls f(snap).
func (f ReporterFunc) Report(snap Snapshot) { f(snap) }

// ProcessStats is an immutable copy of one PCB's fields.
type ProcessStats struct {
	PID            int          `yaml:"pid"`
	State          ProcessState `yaml:"state"`
	ArrivalTime    int64        `yaml:"arrival"`
	BurstTime      int64        `yaml:"burst"`
	Remaining      int64        `yaml:"remaining"`
	Priority       int          `yaml:"priority"`
	StartTime      int64        `yaml:"start"`
	ResponseTime   int64        `yaml:"response"`
	CompletionTime int64        `yaml:"completion"`
	TurnaroundTime int64        `yaml:"turnaround"`
	WaitTime       int64        `yaml:"wait"`
}

// StatsOf copies p into a ProcessStats.
func StatsOf(p *ProcessControlBlock) ProcessStats {
	return ProcessStats{
		PID:            p.PID,
		State:          p.State,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		Remaining:      p.RemainingBurstTime,
		Priority:       p.Priority,
		StartTime:      p.StartTime,
		ResponseTime:   p.ResponseTime,
		CompletionTime: p.CompletionTime,
		TurnaroundTime: p.TurnaroundTime,
		WaitTime:       p.WaitTime,
	}
}

// Snapshot is the accounting state of a run at a round boundary.
type Snapshot struct {
	RunID           string
	Policy          PolicyKind
	Round           int
	Clock           int64
	ContextSwitches int
	BusyTicks       int64
	IdleTicks       int64
	Running         *ProcessStats  // nil when the CPU is idle
	Ready           []ProcessStats // in dispatch order
	Processes       []ProcessStats // every PCB in the table, by PID
	Gantt           []GanttEntry
	Final           bool
}
