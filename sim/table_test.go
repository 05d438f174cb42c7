package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessControlTable_AddAndGet(t *testing.T) {
	table := NewProcessControlTable()
	p := NewProcessControlBlock(2, 0)
	table.Add(p)

	assert.Same(t, p, table.Get(2))
	assert.Nil(t, table.Get(3))
	assert.True(t, table.Contains(p))
	assert.False(t, table.Contains(NewProcessControlBlock(2, 0)), "a different PCB with the same PID is not registered")
	assert.Equal(t, 1, table.Len())
}

func TestProcessControlTable_DuplicatePID_Panics(t *testing.T) {
	table := NewProcessControlTable()
	table.Add(NewProcessControlBlock(1, 0))
	assert.Panics(t, func() { table.Add(NewProcessControlBlock(1, 0)) })
	assert.Panics(t, func() { table.Add(nil) })
}

func TestProcessControlTable_All_OrderedByPID(t *testing.T) {
	table := NewProcessControlTable()
	for _, pid := range []int{5, 1, 3} {
		table.Add(NewProcessControlBlock(pid, 0))
	}
	all := table.All()
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 3, 5}, []int{all[0].PID, all[1].PID, all[2].PID})
}

func TestProcessControlTable_SetRunning_UnregisteredPanics(t *testing.T) {
	table := NewProcessControlTable()
	assert.Panics(t, func() { table.setRunning(NewProcessControlBlock(1, 0)) })
}

func TestProcessControlTable_SetRunning_SecondRunningPanics(t *testing.T) {
	// GIVEN P1 running
	table := NewProcessControlTable()
	p1, p2 := NewProcessControlBlock(1, 0), NewProcessControlBlock(2, 0)
	table.Add(p1)
	table.Add(p2)
	p1.admit(0, 3, 1)
	p1.markRunning(0)
	table.setRunning(p1)

	// WHEN P2 is installed without P1 leaving the CPU
	// THEN the at-most-one-running invariant trips
	assert.Panics(t, func() { table.setRunning(p2) })
	assert.Same(t, p1, table.Running())
}
