package sim

import (
	"fmt"
	"sort"
	"strings"
)

// PolicyKind selects the CPU-scheduling policy of a run.
// The set is closed: every switch over PolicyKind handles all variants.
type PolicyKind string

const (
	// PolicyPriority preempts the running process when a ready process has a
	// strictly lower priority value.
	PolicyPriority PolicyKind = "priority"
	// PolicySRTF preempts the running process when a ready process has a
	// strictly smaller remaining burst time.
	PolicySRTF PolicyKind = "srtf"
)

// validPolicies maps accepted policy names to their kind.
var validPolicies = map[string]PolicyKind{
	"priority":                      PolicyPriority,
	"priority-preemptive":           PolicyPriority,
	"srtf":                          PolicySRTF,
	"shortest-remaining-time-first": PolicySRTF,
}

// ParsePolicy converts a policy name (or alias) to its PolicyKind.
func ParsePolicy(name string) (PolicyKind, error) {
	kind, ok := validPolicies[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("unknown policy %q (valid: %s)", name, strings.Join(ValidPolicyNames(), ", "))
	}
	return kind, nil
}

// PolicyNames returns the canonical policy names in sorted order.
func PolicyNames() []string {
	return []string{string(PolicyPriority), string(PolicySRTF)}
}

// ValidPolicyNames returns every accepted name, including aliases.
func ValidPolicyNames() []string {
	names := make([]string, 0, len(validPolicies))
	for name := range validPolicies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Title returns the human-readable policy name used in reports.
func (k PolicyKind) Title() string {
	switch k {
	case PolicyPriority:
		return "Priority (preemptive)"
	case PolicySRTF:
		return "Shortest Remaining Time First"
	default:
		panic(fmt.Sprintf("unhandled policy %q", string(k)))
	}
}

// sortKey returns the value the policy orders and preempts on.
func (k PolicyKind) sortKey(p *ProcessControlBlock) int64 {
	switch k {
	case PolicyPriority:
		return int64(p.Priority)
	case PolicySRTF:
		return p.RemainingBurstTime
	default:
		panic(fmt.Sprintf("unhandled policy %q", string(k)))
	}
}

// readyLess orders the ready queue by the policy key (ascending),
// then by arrival time (ascending), then by PID (ascending) for determinism.
func (k PolicyKind) readyLess(a, b *ProcessControlBlock) bool {
	ka, kb := k.sortKey(a), k.sortKey(b)
	if ka != kb {
		return ka < kb
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.PID < b.PID
}

// Select is the CPU scheduler. It inspects the running process and the
// ready-queue head and returns the process to switch to, or nil to keep the
// incumbent running (or leave the CPU idle).
//
// The head is a candidate only once it has arrived (ArrivalTime <= now). With
// a process running, the head must also beat it strictly on the policy key;
// ties never preempt.
func (k PolicyKind) Select(state *EngineState, table *ProcessControlTable, rq *ReadyQueue) *ProcessControlBlock {
	head := rq.Peek()
	if head == nil || head.ArrivalTime > state.Clock {
		return nil
	}
	running := table.Running()
	if running == nil {
		return head
	}
	if k.sortKey(head) < k.sortKey(running) {
		return head
	}
	return nil
}
