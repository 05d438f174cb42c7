package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessState_Constants_HaveExpectedStringValues(t *testing.T) {
	assert.Equal(t, ProcessState("new"), StateNew)
	assert.Equal(t, ProcessState("ready"), StateReady)
	assert.Equal(t, ProcessState("running"), StateRunning)
	assert.Equal(t, ProcessState("terminated"), StateTerminated)
}

func TestNewProcessControlBlock_DefaultState_IsNew(t *testing.T) {
	p := NewProcessControlBlock(3, 17)
	assert.Equal(t, 3, p.PID)
	assert.Equal(t, 17, p.ProgramCounter)
	assert.Equal(t, StateNew, p.State)
	assert.False(t, p.Started())
	assert.False(t, p.Queued())
}

func TestAdmit_StampsArrivalBurstAndPriority(t *testing.T) {
	// GIVEN a NEW process
	p := NewProcessControlBlock(1, 0)

	// WHEN admitted at tick 7
	p.admit(7, 4, 2)

	// THEN arrival is the admission tick and remaining equals burst
	assert.Equal(t, int64(7), p.ArrivalTime)
	assert.Equal(t, int64(4), p.BurstTime)
	assert.Equal(t, int64(4), p.RemainingBurstTime)
	assert.Equal(t, 2, p.Priority)
	assert.Equal(t, StateReady, p.State)
}

func TestAdmit_Twice_Panics(t *testing.T) {
	p := NewProcessControlBlock(1, 0)
	p.admit(0, 4, 2)
	assert.Panics(t, func() { p.admit(1, 4, 2) })
}

func TestMarkRunning_ResponseAndStartWrittenOnce(t *testing.T) {
	// GIVEN a process admitted at tick 2
	p := NewProcessControlBlock(1, 0)
	p.admit(2, 5, 1)

	// WHEN first dispatched at tick 2 (response 0), preempted, and dispatched again at 6
	p.markRunning(2)
	assert.False(t, p.consumeTick(2))
	p.markPreempted()
	p.markRunning(6)

	// THEN start and response keep their first values; burst start follows the latest run
	assert.Equal(t, int64(2), p.StartTime)
	assert.Equal(t, int64(0), p.ResponseTime)
	assert.Equal(t, int64(6), p.BurstStartTime)
}

func TestConsumeTick_LastTick_WritesCompletionFields(t *testing.T) {
	// GIVEN a process admitted at tick 1 with burst 2, running from tick 3
	p := NewProcessControlBlock(1, 0)
	p.admit(1, 2, 1)
	p.markRunning(3)

	// WHEN it runs ticks 3 and 4
	assert.False(t, p.consumeTick(3))
	assert.True(t, p.consumeTick(4))

	// THEN completion relations hold
	assert.Equal(t, int64(0), p.RemainingBurstTime)
	assert.Equal(t, int64(4), p.CompletionTime)
	assert.Equal(t, int64(4), p.BurstEndTime)
	assert.Equal(t, int64(4), p.TurnaroundTime) // 4 - 1 + 1
	assert.Equal(t, int64(2), p.WaitTime)       // 4 - 2
	assert.Equal(t, StateTerminated, p.State)
}

func TestConsumeTick_NotRunning_Panics(t *testing.T) {
	p := NewProcessControlBlock(1, 0)
	p.admit(0, 2, 1)
	assert.Panics(t, func() { p.consumeTick(0) })
}

func TestConsumeTick_AfterTermination_Panics(t *testing.T) {
	p := NewProcessControlBlock(1, 0)
	p.admit(0, 1, 1)
	p.markRunning(0)
	assert.True(t, p.consumeTick(0))
	assert.Panics(t, func() { p.consumeTick(1) })
	assert.Panics(t, func() { p.markRunning(1) })
}

func TestProcessControlBlock_String_IncludesState(t *testing.T) {
	p := NewProcessControlBlock(9, 0)
	assert.Contains(t, p.String(), "P9")
	assert.Contains(t, p.String(), "new")
}
