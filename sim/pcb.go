// Defines the ProcessControlBlock that models one simulated process.
// Tracks the scheduling attributes the policies compare on and the accounting
// fields that are written exactly once as the process moves through its lifecycle.

package sim

import (
	"fmt"
)

// ProcessState represents the lifecycle state of a process.
type ProcessState string

const (
	StateNew        ProcessState = "new"
	StateReady      ProcessState = "ready"
	StateRunning    ProcessState = "running"
	StateTerminated ProcessState = "terminated"
)

// ProcessControlBlock holds one process's scheduling state.
//
// Sort keys (Priority, RemainingBurstTime, ArrivalTime) only change while the
// block is outside the ready queue: admission stamps them before enqueueing and
// the dispatcher consumes burst only while the block is RUNNING.
type ProcessControlBlock struct {
	PID int // Unique process identifier, immutable after creation

	ArrivalTime        int64 // Tick at which the process was admitted to the ready queue
	BurstTime          int64 // Total CPU ticks the process requires
	RemainingBurstTime int64 // Ticks not yet executed
	Priority           int   // Lower value = higher priority
	ProgramCounter     int   // Opaque; never read by scheduling logic

	StartTime      int64 // Tick of first dispatch
	BurstStartTime int64 // First tick of the current (or final) run
	BurstEndTime   int64 // Last tick of the final run
	ResponseTime   int64 // StartTime - ArrivalTime
	CompletionTime int64 // Tick at which remaining burst reached zero
	TurnaroundTime int64 // CompletionTime - ArrivalTime + 1
	WaitTime       int64 // TurnaroundTime - BurstTime

	State ProcessState

	started   bool // set on first dispatch
	responded bool // ResponseTime has been written
	heapIndex int  // position in the ReadyQueue heap, -1 when not queued
}

// NewProcessControlBlock creates a block in the NEW state.
func NewProcessControlBlock(pid int, programCounter int) *ProcessControlBlock {
	return &ProcessControlBlock{
		PID:            pid,
		ProgramCounter: programCounter,
		State:          StateNew,
		heapIndex:      -1,
	}
}

// Started reports whether the process has ever been dispatched.
func (p *ProcessControlBlock) Started() bool {
	return p.started
}

// Queued reports whether the process currently sits in a ReadyQueue.
func (p *ProcessControlBlock) Queued() bool {
	return p.heapIndex >= 0
}

// admit stamps the scheduling attributes drawn at admission time and moves the
// block from NEW to READY.
func (p *ProcessControlBlock) admit(now, burst int64, priority int) {
	if p.State != StateNew {
		panic(fmt.Sprintf("admit: P%d is %s, want %s", p.PID, p.State, StateNew))
	}
	if p.Queued() {
		panic(fmt.Sprintf("admit: P%d is already in a ready queue", p.PID))
	}
	if burst < 1 {
		panic(fmt.Sprintf("admit: P%d burst must be >= 1, got %d", p.PID, burst))
	}
	p.ArrivalTime = now
	p.BurstTime = burst
	p.RemainingBurstTime = burst
	p.Priority = priority
	p.State = StateReady
}

// markRunning performs the "becomes the running process" bookkeeping.
func (p *ProcessControlBlock) markRunning(now int64) {
	if p.State != StateReady {
		panic(fmt.Sprintf("markRunning: P%d is %s, want %s", p.PID, p.State, StateReady))
	}
	p.State = StateRunning
	if !p.started {
		p.started = true
		p.StartTime = now
	}
	p.BurstStartTime = now
	if !p.responded {
		p.responded = true
		p.ResponseTime = now - p.ArrivalTime
	}
}

// markPreempted returns a running block to READY with its remaining burst intact.
func (p *ProcessControlBlock) markPreempted() {
	if p.State != StateRunning {
		panic(fmt.Sprintf("markPreempted: P%d is %s, want %s", p.PID, p.State, StateRunning))
	}
	p.State = StateReady
}

// consumeTick executes one tick of work. It returns true when the process
// finished on this tick, in which case all completion fields are written.
func (p *ProcessControlBlock) consumeTick(now int64) bool {
	if p.State != StateRunning {
		panic(fmt.Sprintf("consumeTick: P%d is %s, want %s", p.PID, p.State, StateRunning))
	}
	if p.RemainingBurstTime <= 0 {
		panic(fmt.Sprintf("consumeTick: P%d has no remaining burst", p.PID))
	}
	p.RemainingBurstTime--
	if p.RemainingBurstTime > 0 {
		return false
	}
	p.CompletionTime = now
	p.TurnaroundTime = now - p.ArrivalTime + 1
	p.WaitTime = p.TurnaroundTime - p.BurstTime
	p.BurstEndTime = now
	p.State = StateTerminated
	return true
}

// This method returns a human-readable string representation of a ProcessControlBlock.
func (p ProcessControlBlock) String() string {
	return fmt.Sprintf("P%d(state=%s, arrival=%d, burst=%d, remaining=%d, priority=%d)",
		p.PID, p.State, p.ArrivalTime, p.BurstTime, p.RemainingBurstTime, p.Priority)
}
