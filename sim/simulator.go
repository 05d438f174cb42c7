// sim/simulator.go
package sim

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/apaude1/cosc519-cpu-simulation/sim/trace"
)

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// Simulator is the core object that holds simulation time, the process
// table, the queues and the per-tick loop of one run.
//
// Thread-safety: NOT thread-safe. A Simulator shares no mutable state with
// other Simulators, so separate runs may execute on separate goroutines.
type Simulator struct {
	RunID  string
	Policy PolicyKind
	Config Config

	State *EngineState
	Table *ProcessControlTable
	// JobQ holds generated processes until the job scheduler admits them.
	JobQ *JobQueue
	// ReadyQ is ordered by Policy; its head is the next dispatch candidate.
	ReadyQ *ReadyQueue
	Gantt  *GanttChartQueue
	// Generator synthesizes arrivals and draws burst/priority at admission.
	// Replace before Run to script a workload.
	Generator ProcessGenerator
	Reporter  Reporter
	// Trace is nil unless Config.Trace is set.
	Trace *trace.SimulationTrace

	dispatcher *Dispatcher
	log        *logrus.Entry
}

// NewSimulator validates cfg and builds an isolated run. policy may be any
// name ParsePolicy accepts; it is stored in canonical form. An empty runID is
// replaced by NewRunID(). reporter may be nil.
func NewSimulator(runID string, policy PolicyKind, cfg Config, reporter Reporter) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	kind, err := ParsePolicy(string(policy))
	if err != nil {
		return nil, err
	}
	policy = kind
	if runID == "" {
		runID = NewRunID()
	}
	if reporter == nil {
		reporter = ReporterFunc(func(Snapshot) {})
	}
	log := logrus.WithFields(logrus.Fields{"run": runID, "policy": string(policy)})
	s := &Simulator{
		RunID:     runID,
		Policy:    policy,
		Config:    cfg,
		State:     &EngineState{Phase: PhaseAdmitting},
		Table:     NewProcessControlTable(),
		JobQ:      NewJobQueue(cfg.Queues.JobQueueCapacity),
		ReadyQ:    NewReadyQueue(cfg.Queues.ReadyQueueCapacity, cfg.Queues.ReadyQueueThreshold, policy),
		Gantt:     &GanttChartQueue{},
		Generator: NewRandomGenerator(cfg.Workload),
		Reporter:  reporter,
		log:       log,
	}
	if cfg.Trace {
		s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelDecisions})
	}
	s.dispatcher = NewDispatcher(s.Table, s.ReadyQ, s.Gantt, log)
	return s, nil
}

// Run executes rounds of admission, scheduling/dispatching and reporting
// until every process has been generated and has terminated.
//
// Cancellation is observed at tick boundaries only; when ctx is done Run
// returns ctx.Err() with all PCB mutations of the last tick complete.
func (s *Simulator) Run(ctx context.Context) error {
	s.log.Infof("[tick %07d] Starting simulation: max processes=%d, ready capacity=%d, threshold=%d",
		s.State.Clock, s.Config.Workload.MaxProcesses, s.ReadyQ.Capacity(), s.Config.Queues.ReadyQueueThreshold)
	for {
		if err := ctx.Err(); err != nil {
			s.log.Warnf("[tick %07d] Simulation cancelled", s.State.Clock)
			return err
		}
		s.State.Round++
		s.State.Phase = PhaseAdmitting
		s.generateArrivals()
		s.runJobScheduler()

		for !s.ReadyQ.IsEmpty() || s.Table.Running() != nil {
			if err := s.pace(ctx); err != nil {
				s.log.Warnf("[tick %07d] Simulation cancelled", s.State.Clock)
				return err
			}
			s.Step()
		}

		s.State.Phase = PhaseReporting
		s.Reporter.Report(s.Snapshot(false))
		if s.finished() {
			break
		}
		// CPU idles for one tick before the next arrival round.
		s.State.Clock++
		s.State.IdleTicks++
	}
	s.State.Phase = PhaseDone
	s.Reporter.Report(s.Snapshot(true))
	s.log.Infof("[tick %07d] Simulation ended: %d processes, %d context switches",
		s.State.Clock, s.Table.Terminated(), s.State.ContextSwitches)
	return nil
}

// Step runs one tick: select a candidate, dispatch it, and re-admit from the
// job queue if the ready queue has drained to its threshold.
func (s *Simulator) Step() DispatchResult {
	s.State.Phase = PhaseScheduling
	candidate := s.Policy.Select(s.State, s.Table, s.ReadyQ)

	s.State.Phase = PhaseDispatching
	tick := s.State.Clock
	result := s.dispatcher.Dispatch(s.State, candidate)
	if s.Trace.Enabled() {
		rec := trace.DispatchRecord{Clock: tick, Kind: result.Kind, Completed: result.Completed, ReadyLen: s.ReadyQ.Len()}
		if result.Ran != nil {
			rec.PID = result.Ran.PID
		}
		if result.Preempted != nil {
			rec.PreemptedPID = result.Preempted.PID
		}
		s.Trace.RecordDispatch(rec)
	}

	if s.ReadyQ.IsBelowThreshold() {
		s.runJobScheduler()
	}
	return result
}

// generateArrivals asks the generator for this round's arrivals, registers
// them in the process table and places them in the job queue.
func (s *Simulator) generateArrivals() {
	arrivals := s.Generator.Generate(s.State.Clock, s.JobQ.AvailableCapacity())
	for _, p := range arrivals {
		s.Table.Add(p)
		s.JobQ.Enqueue(p)
	}
	if len(arrivals) > 0 {
		s.log.Debugf("[tick %07d] %d arrivals (generated %d/%d)",
			s.State.Clock, len(arrivals), s.Generator.Generated(), s.Config.Workload.MaxProcesses)
	}
}

// runJobScheduler admits processes from the job queue while the ready queue
// has room. Arrival time is bound to the admission tick.
func (s *Simulator) runJobScheduler() {
	for s.ReadyQ.AvailableCapacity() > 0 && !s.JobQ.IsEmpty() {
		p := s.JobQ.Dequeue()
		p.admit(s.State.Clock, s.Generator.Burst(), s.Generator.Priority())
		s.ReadyQ.Enqueue(p)
		if s.Trace.Enabled() {
			s.Trace.RecordAdmission(trace.AdmissionRecord{Clock: s.State.Clock, PID: p.PID, Burst: p.BurstTime, Priority: p.Priority})
		}
		s.log.Debugf("[tick %07d] admitted P%d (burst=%d, priority=%d)", s.State.Clock, p.PID, p.BurstTime, p.Priority)
	}
}

func (s *Simulator) finished() bool {
	return s.Generator.Exhausted() && s.JobQ.IsEmpty() && s.ReadyQ.IsEmpty() && s.Table.Running() == nil
}

// pace waits Config.TickPace between ticks, returning early on cancellation.
func (s *Simulator) pace(ctx context.Context) error {
	if s.Config.TickPace <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.Config.TickPace)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Snapshot copies the accounting state of the run.
func (s *Simulator) Snapshot(final bool) Snapshot {
	snap := Snapshot{
		RunID:           s.RunID,
		Policy:          s.Policy,
		Round:           s.State.Round,
		Clock:           s.State.Clock,
		ContextSwitches: s.State.ContextSwitches,
		BusyTicks:       s.State.BusyTicks,
		IdleTicks:       s.State.IdleTicks,
		Gantt:           s.Gantt.Entries(),
		Final:           final,
	}
	if running := s.Table.Running(); running != nil {
		stats := StatsOf(running)
		snap.Running = &stats
	}
	for _, p := range s.ReadyQ.Ordered() {
		snap.Ready = append(snap.Ready, StatsOf(p))
	}
	for _, p := range s.Table.All() {
		snap.Processes = append(snap.Processes, StatsOf(p))
	}
	return snap
}

// Metrics summarizes the run in its current state.
func (s *Simulator) Metrics() Metrics {
	return NewMetrics(s.Snapshot(s.State.Phase == PhaseDone))
}

// RunAll runs each simulator on its own goroutine and waits for all of them.
// It returns the first error encountered; the other runs are cancelled.
func RunAll(ctx context.Context, sims []*Simulator) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	for _, s := range sims {
		wg.Add(1)
		go func(s *Simulator) {
			defer wg.Done()
			if err := s.Run(ctx); err != nil {
				once.Do(func() {
					firstErr = fmt.Errorf("run %s (%s): %w", s.RunID, s.Policy, err)
					cancel()
				})
			}
		}(s)
	}
	wg.Wait()
	return firstErr
}
