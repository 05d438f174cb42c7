// Package trace provides decision-trace recording for scheduling analysis.
// It has no dependencies on sim/ and stores pure data types only.
package trace

// DecisionKind names what the dispatcher did on one tick.
type DecisionKind string

const (
	// DecisionIdle: no process ran on this tick.
	DecisionIdle DecisionKind = "idle"
	// DecisionStart: an idle CPU picked up a ready process.
	DecisionStart DecisionKind = "start"
	// DecisionContinue: the running process kept the CPU.
	DecisionContinue DecisionKind = "continue"
	// DecisionPreempt: the running process was displaced by a ready process.
	DecisionPreempt DecisionKind = "preempt"
)

// DispatchRecord captures a single dispatcher decision.
type DispatchRecord struct {
	Clock        int64
	Kind         DecisionKind
	PID          int // process that ran on this tick; 0 when idle
	PreemptedPID int // process displaced by a preemption; 0 otherwise
	Completed    bool
	ReadyLen     int // ready-queue occupancy after the decision
}

// AdmissionRecord captures a process moving from the job queue to the ready queue.
type AdmissionRecord struct {
	Clock    int64
	PID      int
	Burst    int64
	Priority int
}
