package sim

import (
	"fmt"
	"sort"
)

// ProcessControlTable owns every PCB created during a run, keyed by PID.
// Entries are never removed; the table is the source for final accounting.
//
// Thread-safety: NOT thread-safe. Must be called from the run's goroutine.
type ProcessControlTable struct {
	entries map[int]*ProcessControlBlock
	running *ProcessControlBlock
}

// NewProcessControlTable creates an empty table.
func NewProcessControlTable() *ProcessControlTable {
	return &ProcessControlTable{entries: make(map[int]*ProcessControlBlock)}
}

// Add registers a newly created PCB. Registering a PID twice is a defect.
func (t *ProcessControlTable) Add(p *ProcessControlBlock) {
	if p == nil {
		panic("Add: pcb must not be nil")
	}
	if _, exists := t.entries[p.PID]; exists {
		panic(fmt.Sprintf("Add: duplicate PID %d", p.PID))
	}
	t.entries[p.PID] = p
}

// Get returns the PCB registered under pid, or nil.
func (t *ProcessControlTable) Get(pid int) *ProcessControlBlock {
	return t.entries[pid]
}

// Contains reports whether p is the PCB registered under its PID.
func (t *ProcessControlTable) Contains(p *ProcessControlBlock) bool {
	return p != nil && t.Get(p.PID) == p
}

// Len returns the number of registered PCBs.
func (t *ProcessControlTable) Len() int {
	return len(t.entries)
}

// Running returns the PCB currently on the CPU, or nil when idle.
func (t *ProcessControlTable) Running() *ProcessControlBlock {
	return t.running
}

// setRunning installs p as the single running PCB (nil clears it).
func (t *ProcessControlTable) setRunning(p *ProcessControlBlock) {
	if p != nil {
		if !t.Contains(p) {
			panic(fmt.Sprintf("setRunning: P%d is not registered in the process table", p.PID))
		}
		if t.running != nil && t.running != p && t.running.State == StateRunning {
			panic(fmt.Sprintf("setRunning: P%d is still running, cannot run P%d", t.running.PID, p.PID))
		}
	}
	t.running = p
}

// All returns the registered PCBs ordered by PID.
func (t *ProcessControlTable) All() []*ProcessControlBlock {
	out := make([]*ProcessControlBlock, 0, len(t.entries))
	for _, p := range t.entries {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PID < out[j].PID })
	return out
}

// Terminated returns the number of PCBs in the TERMINATED state.
func (t *ProcessControlTable) Terminated() int {
	n := 0
	for _, p := range t.entries {
		if p.State == StateTerminated {
			n++
		}
	}
	return n
}
