package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/apaude1/cosc519-cpu-simulation/sim/trace"
)

// EngineState is the mutable clock and counters of one run. It is owned by
// the Simulator and passed by pointer to the scheduler and dispatcher.
type EngineState struct {
	Clock           int64 // current tick
	ContextSwitches int   // running process displaced by a different candidate
	BusyTicks       int64 // ticks on which a process executed
	IdleTicks       int64 // ticks on which the CPU did nothing
	Round           int   // arrival-admission rounds started so far
	Phase           Phase
}

// Phase is the engine's position in its state machine.
type Phase string

const (
	PhaseAdmitting   Phase = "admitting"
	PhaseScheduling  Phase = "scheduling"
	PhaseDispatching Phase = "dispatching"
	PhaseReporting   Phase = "reporting"
	PhaseDone        Phase = "done"
)

// DispatchResult describes what happened on one tick.
type DispatchResult struct {
	Kind      trace.DecisionKind
	Ran       *ProcessControlBlock // process that executed this tick; nil when idle
	Preempted *ProcessControlBlock // process displaced by a context switch; nil otherwise
	Completed bool                 // Ran terminated on this tick
	Resumed   bool                 // Ran was dispatched on this tick after an earlier preemption
}

// Dispatcher performs context switches, executes one tick of the running
// process, and detects completion.
type Dispatcher struct {
	table *ProcessControlTable
	ready *ReadyQueue
	gantt *GanttChartQueue
	log   *logrus.Entry
}

// NewDispatcher wires a dispatcher to a run's table and queues.
func NewDispatcher(table *ProcessControlTable, ready *ReadyQueue, gantt *GanttChartQueue, log *logrus.Entry) *Dispatcher {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Dispatcher{table: table, ready: ready, gantt: gantt, log: log}
}

// Dispatch applies the scheduler's candidate (possibly nil) for the current
// tick and advances the clock by one.
func (d *Dispatcher) Dispatch(state *EngineState, candidate *ProcessControlBlock) DispatchResult {
	if candidate != nil && !d.table.Contains(candidate) {
		panic(fmt.Sprintf("Dispatch: P%d is not registered in the process table", candidate.PID))
	}
	running := d.table.Running()
	if candidate != nil && candidate == running {
		panic(fmt.Sprintf("Dispatch: P%d is already running", candidate.PID))
	}

	var result DispatchResult
	switch {
	case running != nil && candidate != nil:
		running.markPreempted()
		d.table.setRunning(nil)
		// Pull the candidate out first so a full ready queue has room for the incumbent.
		resumed := d.setUpRunning(state, candidate)
		d.ready.Enqueue(running)
		state.ContextSwitches++
		d.log.Debugf("[tick %07d] context switch: P%d -> P%d (remaining %d preserved)",
			state.Clock, running.PID, candidate.PID, running.RemainingBurstTime)
		result = DispatchResult{Kind: trace.DecisionPreempt, Ran: candidate, Preempted: running, Resumed: resumed}
	case running != nil:
		result = DispatchResult{Kind: trace.DecisionContinue, Ran: running}
	case candidate != nil:
		resumed := d.setUpRunning(state, candidate)
		if resumed {
			d.log.Debugf("[tick %07d] resume P%d (remaining %d)", state.Clock, candidate.PID, candidate.RemainingBurstTime)
		} else {
			d.log.Debugf("[tick %07d] start P%d", state.Clock, candidate.PID)
		}
		result = DispatchResult{Kind: trace.DecisionStart, Ran: candidate, Resumed: resumed}
	default:
		result = DispatchResult{Kind: trace.DecisionIdle}
	}

	if result.Ran != nil {
		state.BusyTicks++
		if result.Ran.consumeTick(state.Clock) {
			result.Completed = true
			d.table.setRunning(nil)
			d.gantt.Append(GanttEntry{PID: result.Ran.PID, Start: result.Ran.BurstStartTime, End: result.Ran.BurstEndTime})
			d.log.Debugf("[tick %07d] P%d terminated (turnaround=%d, wait=%d)",
				state.Clock, result.Ran.PID, result.Ran.TurnaroundTime, result.Ran.WaitTime)
		}
	} else {
		state.IdleTicks++
	}
	state.Clock++
	return result
}

// setUpRunning makes p the running process and reports whether p had run before.
func (d *Dispatcher) setUpRunning(state *EngineState, p *ProcessControlBlock) bool {
	resumed := p.Started()
	d.ready.Remove(p)
	p.markRunning(state.Clock)
	d.table.setRunning(p)
	return resumed
}
