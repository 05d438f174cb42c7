// Package sim provides the tick-based CPU scheduling simulation engine.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - pcb.go: ProcessControlBlock lifecycle (new → ready → running → terminated)
//   - scheduler.go: PolicyKind and the preemption decision for each policy
//   - dispatcher.go: the per-tick context switch and execution step
//   - simulator.go: the round loop (admission, scheduling/dispatching, reporting)
//
// # Architecture
//
// The sim package holds the engine and its data structures; output lives in
// sub-packages:
//   - sim/report/: Reporter sinks (text tables, goroutine-safe recorder)
//   - sim/trace/: per-tick decision trace recording and summary
//
// # Key Interfaces
//
//   - ProcessGenerator: synthesizes arrivals and draws burst/priority at admission
//   - Reporter: receives a Snapshot after every round and once at the end
//
// # Time
//
// The clock counts integer ticks starting at 0. Exactly one process may hold
// the CPU during a tick. All randomness flows through PartitionedRNG so a
// seed fully determines a run.
package sim
