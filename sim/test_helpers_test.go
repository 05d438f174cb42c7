package sim

import (
	"testing"

	"github.com/sirupsen/logrus"
)

// scripted is one process of a scripted workload: the values drawn for it at admission.
type scripted struct {
	burst    int64
	priority int
}

// scriptedGenerator replays a fixed workload. Each Generate call emits the
// next batch; Burst and Priority replay values in admission (PID) order.
type scriptedGenerator struct {
	rounds     [][]scripted
	call       int
	nextPID    int
	generated  int
	total      int
	bursts     []int64
	priorities []int
}

func newScriptedGenerator(rounds ...[]scripted) *scriptedGenerator {
	g := &scriptedGenerator{rounds: rounds, nextPID: 1}
	for _, batch := range rounds {
		for _, p := range batch {
			g.total++
			g.bursts = append(g.bursts, p.burst)
			g.priorities = append(g.priorities, p.priority)
		}
	}
	return g
}

func (g *scriptedGenerator) Generate(_ int64, room int) []*ProcessControlBlock {
	if g.call >= len(g.rounds) {
		return nil
	}
	batch := g.rounds[g.call]
	if len(batch) > room {
		panic("scriptedGenerator: batch larger than job queue room")
	}
	g.call++
	out := make([]*ProcessControlBlock, 0, len(batch))
	for range batch {
		out = append(out, NewProcessControlBlock(g.nextPID, 0))
		g.nextPID++
		g.generated++
	}
	return out
}

func (g *scriptedGenerator) Burst() int64 {
	b := g.bursts[0]
	g.bursts = g.bursts[1:]
	return b
}

func (g *scriptedGenerator) Priority() int {
	p := g.priorities[0]
	g.priorities = g.priorities[1:]
	return p
}

func (g *scriptedGenerator) Generated() int  { return g.generated }
func (g *scriptedGenerator) Exhausted() bool { return g.generated >= g.total }

// harness drives the scheduler and dispatcher directly, tick by tick.
type harness struct {
	policy PolicyKind
	state  *EngineState
	table  *ProcessControlTable
	ready  *ReadyQueue
	gantt  *GanttChartQueue
	d      *Dispatcher
}

func newHarness(t *testing.T, policy PolicyKind, capacity int) *harness {
	t.Helper()
	h := &harness{
		policy: policy,
		state:  &EngineState{},
		table:  NewProcessControlTable(),
		ready:  NewReadyQueue(capacity, 0, policy),
		gantt:  &GanttChartQueue{},
	}
	h.d = NewDispatcher(h.table, h.ready, h.gantt, logrus.NewEntry(logrus.StandardLogger()))
	return h
}

// add registers and admits a process at the current tick.
func (h *harness) add(pid int, burst int64, priority int) *ProcessControlBlock {
	p := NewProcessControlBlock(pid, 0)
	h.table.Add(p)
	p.admit(h.state.Clock, burst, priority)
	h.ready.Enqueue(p)
	return p
}

// tick runs one scheduling + dispatch step.
func (h *harness) tick() DispatchResult {
	candidate := h.policy.Select(h.state, h.table, h.ready)
	return h.d.Dispatch(h.state, candidate)
}

// newTestSimulator builds a simulator that replays the given workload.
func newTestSimulator(t *testing.T, policy PolicyKind, cfg Config, gen ProcessGenerator, reporter Reporter) *Simulator {
	t.Helper()
	s, err := NewSimulator("test-"+string(policy), policy, cfg, reporter)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	if gen != nil {
		s.Generator = gen
	}
	return s
}
