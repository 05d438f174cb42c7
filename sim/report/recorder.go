package report

import (
	"sort"
	"sync"

	"github.com/apaude1/cosc519-cpu-simulation/sim"
)

// Recorder captures final snapshots from any number of runs (goroutine-safe).
type Recorder struct {
	mu    sync.Mutex
	final []sim.Snapshot
	// rounds counts intermediate reports per run ID.
	rounds map[string]int
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{rounds: make(map[string]int)}
}

// Report implements sim.Reporter.
func (r *Recorder) Report(snap sim.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !snap.Final {
		r.rounds[snap.RunID]++
		return
	}
	r.final = append(r.final, snap)
}

// Snapshots returns the final snapshots ordered by policy, then run ID.
func (r *Recorder) Snapshots() []sim.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]sim.Snapshot, len(r.final))
	copy(out, r.final)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Policy != out[j].Policy {
			return out[i].Policy < out[j].Policy
		}
		return out[i].RunID < out[j].RunID
	})
	return out
}

// Rounds returns how many intermediate reports the run emitted.
func (r *Recorder) Rounds(runID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rounds[runID]
}

// Metrics summarizes every recorded run, in Snapshots order.
func (r *Recorder) Metrics() []sim.Metrics {
	snaps := r.Snapshots()
	out := make([]sim.Metrics, len(snaps))
	for i, s := range snaps {
		out[i] = sim.NewMetrics(s)
	}
	return out
}

// Multi fans a snapshot out to several reporters in order.
type Multi []sim.Reporter

// Report implements sim.Reporter.
func (m Multi) Report(snap sim.Snapshot) {
	for _, r := range m {
		if r != nil {
			r.Report(snap)
		}
	}
}
