// Implements the JobQueue, which holds generated processes until admission,
// and the ReadyQueue, which holds admitted processes until dispatch.

package sim

import (
	"container/heap"
	"fmt"
	"sort"
	"strings"
)

// JobQueue holds processes that have arrived but were not yet admitted to
// the ready queue. Admission order is by PID regardless of the policy.
type JobQueue struct {
	queue    []*ProcessControlBlock // sorted by PID
	capacity int
}

// NewJobQueue creates a JobQueue bounded by capacity.
func NewJobQueue(capacity int) *JobQueue {
	if capacity < 1 {
		panic(fmt.Sprintf("NewJobQueue: capacity must be >= 1, got %d", capacity))
	}
	return &JobQueue{capacity: capacity}
}

// Enqueue inserts p in PID order. Enqueueing past capacity is a defect.
func (jq *JobQueue) Enqueue(p *ProcessControlBlock) {
	if p == nil {
		panic("JobQueue.Enqueue: pcb must not be nil")
	}
	if len(jq.queue) >= jq.capacity {
		panic(fmt.Sprintf("JobQueue.Enqueue: capacity %d exceeded by P%d", jq.capacity, p.PID))
	}
	i := sort.Search(len(jq.queue), func(i int) bool { return jq.queue[i].PID >= p.PID })
	jq.queue = append(jq.queue, nil)
	copy(jq.queue[i+1:], jq.queue[i:])
	jq.queue[i] = p
}

// Dequeue removes and returns the lowest-PID process, or nil when empty.
func (jq *JobQueue) Dequeue() *ProcessControlBlock {
	if len(jq.queue) == 0 {
		return nil
	}
	p := jq.queue[0]
	jq.queue = jq.queue[1:]
	return p
}

// Len returns the number of queued processes.
func (jq *JobQueue) Len() int { return len(jq.queue) }

// IsEmpty reports whether the queue holds nothing.
func (jq *JobQueue) IsEmpty() bool { return len(jq.queue) == 0 }

// AvailableCapacity returns capacity - Len().
func (jq *JobQueue) AvailableCapacity() int { return jq.capacity - len(jq.queue) }

func (jq *JobQueue) String() string {
	return formatPIDs(jq.queue)
}

// ReadyQueue is a bounded, policy-ordered queue of runnable processes.
// The head is the process the active policy would dispatch first.
//
// Keys are read when a process is pushed. Callers that change a queued
// process's priority or remaining burst must call Fix.
type ReadyQueue struct {
	h         readyHeap
	capacity  int
	threshold int
}

// NewReadyQueue creates a ReadyQueue ordered by the given policy.
// threshold is the low-water mark reported by IsBelowThreshold.
func NewReadyQueue(capacity, threshold int, policy PolicyKind) *ReadyQueue {
	if capacity < 1 {
		panic(fmt.Sprintf("NewReadyQueue: capacity must be >= 1, got %d", capacity))
	}
	if threshold < 0 || threshold >= capacity {
		panic(fmt.Sprintf("NewReadyQueue: threshold must be in [0, %d), got %d", capacity, threshold))
	}
	return &ReadyQueue{
		h:         readyHeap{less: policy.readyLess},
		capacity:  capacity,
		threshold: threshold,
	}
}

// Enqueue adds p. Enqueueing past capacity or enqueueing a process that is
// already queued is a defect.
func (rq *ReadyQueue) Enqueue(p *ProcessControlBlock) {
	if p == nil {
		panic("ReadyQueue.Enqueue: pcb must not be nil")
	}
	if len(rq.h.items) >= rq.capacity {
		panic(fmt.Sprintf("ReadyQueue.Enqueue: capacity %d exceeded by P%d", rq.capacity, p.PID))
	}
	if p.Queued() {
		panic(fmt.Sprintf("ReadyQueue.Enqueue: P%d is already queued", p.PID))
	}
	heap.Push(&rq.h, p)
}

// Peek returns the head without removing it, or nil when empty.
func (rq *ReadyQueue) Peek() *ProcessControlBlock {
	if len(rq.h.items) == 0 {
		return nil
	}
	return rq.h.items[0]
}

// Remove deletes p by identity. It is a no-op when p is not in this queue.
func (rq *ReadyQueue) Remove(p *ProcessControlBlock) {
	if !rq.contains(p) {
		return
	}
	heap.Remove(&rq.h, p.heapIndex)
}

// Fix restores heap order after a queued process's sort key changed.
func (rq *ReadyQueue) Fix(p *ProcessControlBlock) {
	if !rq.contains(p) {
		return
	}
	heap.Fix(&rq.h, p.heapIndex)
}

func (rq *ReadyQueue) contains(p *ProcessControlBlock) bool {
	return p != nil && p.heapIndex >= 0 && p.heapIndex < len(rq.h.items) && rq.h.items[p.heapIndex] == p
}

// Len returns the number of queued processes.
func (rq *ReadyQueue) Len() int { return len(rq.h.items) }

// IsEmpty reports whether the queue holds nothing.
func (rq *ReadyQueue) IsEmpty() bool { return len(rq.h.items) == 0 }

// Capacity returns the configured capacity.
func (rq *ReadyQueue) Capacity() int { return rq.capacity }

// AvailableCapacity returns capacity - Len().
func (rq *ReadyQueue) AvailableCapacity() int { return rq.capacity - len(rq.h.items) }

// IsBelowThreshold reports whether occupancy is at or below the low-water mark.
func (rq *ReadyQueue) IsBelowThreshold() bool { return len(rq.h.items) <= rq.threshold }

// Ordered returns the queued processes in dispatch order without modifying the queue.
func (rq *ReadyQueue) Ordered() []*ProcessControlBlock {
	out := make([]*ProcessControlBlock, len(rq.h.items))
	copy(out, rq.h.items)
	sort.SliceStable(out, func(i, j int) bool { return rq.h.less(out[i], out[j]) })
	return out
}

func (rq *ReadyQueue) String() string {
	return formatPIDs(rq.Ordered())
}

// readyHeap implements heap.Interface and keeps each PCB's heapIndex current.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-PriorityQueue
type readyHeap struct {
	items []*ProcessControlBlock
	less  func(a, b *ProcessControlBlock) bool
}

func (h readyHeap) Len() int           { return len(h.items) }
func (h readyHeap) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h readyHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].heapIndex = i
	h.items[j].heapIndex = j
}

func (h *readyHeap) Push(x any) {
	p := x.(*ProcessControlBlock)
	p.heapIndex = len(h.items)
	h.items = append(h.items, p)
}

func (h *readyHeap) Pop() any {
	old := h.items
	n := len(old)
	p := old[n-1]
	old[n-1] = nil
	p.heapIndex = -1
	h.items = old[:n-1]
	return p
}

func formatPIDs(ps []*ProcessControlBlock) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range ps {
		sb.WriteString(fmt.Sprintf("P%d", p.PID))
		if i < len(ps)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
