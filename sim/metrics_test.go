package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewMetrics_OnlyTerminatedContribute(t *testing.T) {
	// GIVEN a snapshot with two terminated processes and one still ready
	snap := Snapshot{
		RunID:           "r1",
		Policy:          PolicySRTF,
		Clock:           10,
		BusyTicks:       8,
		ContextSwitches: 2,
		Processes: []ProcessStats{
			{PID: 1, State: StateTerminated, WaitTime: 2, TurnaroundTime: 6, ResponseTime: 1},
			{PID: 2, State: StateTerminated, WaitTime: 4, TurnaroundTime: 8, ResponseTime: 3},
			{PID: 3, State: StateReady, WaitTime: 0, TurnaroundTime: 0},
		},
	}

	// WHEN metrics are computed
	m := NewMetrics(snap)

	// THEN averages ignore the unfinished process
	assert.Equal(t, "r1", m.RunID)
	assert.Equal(t, "srtf", m.Policy)
	assert.Equal(t, 2, m.CompletedProcesses)
	assert.Equal(t, 3, m.TotalProcesses)
	assert.InDelta(t, 3.0, m.AvgWait, 1e-9)
	assert.InDelta(t, 7.0, m.AvgTurnaround, 1e-9)
	assert.InDelta(t, 2.0, m.AvgResponse, 1e-9)
	assert.Equal(t, int64(4), m.MaxWait)
	assert.InDelta(t, 0.2, m.Throughput, 1e-9)
	assert.InDelta(t, 0.8, m.CPUUtilization, 1e-9)
	assert.Equal(t, 2, m.ContextSwitches)
}

func TestNewMetrics_ZeroClock_NoDivision(t *testing.T) {
	m := NewMetrics(Snapshot{Policy: PolicyPriority})
	assert.Equal(t, 0.0, m.Throughput)
	assert.Equal(t, 0.0, m.CPUUtilization)
	assert.Equal(t, 0, m.CompletedProcesses)
}

func TestSaveMetrics_WritesYAML(t *testing.T) {
	// GIVEN metrics for two runs
	runs := []Metrics{
		{RunID: "a", Policy: "priority", CompletedProcesses: 3, AvgWait: 1.5},
		{RunID: "b", Policy: "srtf", CompletedProcesses: 3, AvgWait: 0.5},
	}
	path := filepath.Join(t.TempDir(), "metrics.yaml")

	// WHEN saved
	require.NoError(t, SaveMetrics(path, runs))

	// THEN the file holds both runs under "runs"
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "avg_wait: 1.5")
	var got struct {
		Runs []Metrics `yaml:"runs"`
	}
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, runs, got.Runs)
}

func TestSaveMetrics_BadPath_ReturnsError(t *testing.T) {
	err := SaveMetrics(filepath.Join(t.TempDir(), "missing", "m.yaml"), nil)
	assert.Error(t, err)
}
