// Tracks run-wide and per-process scheduling metrics such as
// average wait, turnaround and response time, throughput and CPU utilization.

package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Metrics aggregates the statistics of one run for final reporting and for
// comparing policies side by side.
type Metrics struct {
	RunID              string  `yaml:"run_id"`
	Policy             string  `yaml:"policy"`
	CompletedProcesses int     `yaml:"completed_processes"`
	TotalProcesses     int     `yaml:"total_processes"`
	Makespan           int64   `yaml:"makespan_ticks"` // clock when the run ended
	ContextSwitches    int     `yaml:"context_switches"`
	BusyTicks          int64   `yaml:"busy_ticks"`
	AvgWait            float64 `yaml:"avg_wait"`
	AvgTurnaround      float64 `yaml:"avg_turnaround"`
	AvgResponse        float64 `yaml:"avg_response"`
	P90Wait            float64 `yaml:"p90_wait"`
	MaxWait            int64   `yaml:"max_wait"`
	Throughput         float64 `yaml:"throughput"`      // completed processes per tick
	CPUUtilization     float64 `yaml:"cpu_utilization"` // busy ticks / makespan
}

// NewMetrics computes Metrics from a snapshot. Only TERMINATED processes
// contribute to the timing averages.
func NewMetrics(snap Snapshot) Metrics {
	m := Metrics{
		RunID:           snap.RunID,
		Policy:          string(snap.Policy),
		TotalProcesses:  len(snap.Processes),
		Makespan:        snap.Clock,
		ContextSwitches: snap.ContextSwitches,
		BusyTicks:       snap.BusyTicks,
	}
	var waits, turnarounds, responses []int64
	for _, p := range snap.Processes {
		if p.State != StateTerminated {
			continue
		}
		m.CompletedProcesses++
		waits = append(waits, p.WaitTime)
		turnarounds = append(turnarounds, p.TurnaroundTime)
		responses = append(responses, p.ResponseTime)
		m.MaxWait = max(m.MaxWait, p.WaitTime)
	}
	m.AvgWait = CalculateMean(waits)
	m.AvgTurnaround = CalculateMean(turnarounds)
	m.AvgResponse = CalculateMean(responses)
	m.P90Wait = CalculatePercentile(waits, 90)
	if snap.Clock > 0 {
		m.Throughput = float64(m.CompletedProcesses) / float64(snap.Clock)
		m.CPUUtilization = float64(snap.BusyTicks) / float64(snap.Clock)
	}
	return m
}

// SaveMetrics writes the metrics of one or more runs to path as YAML.
func SaveMetrics(path string, runs []Metrics) error {
	data, err := yaml.Marshal(struct {
		Runs []Metrics `yaml:"runs"`
	}{Runs: runs})
	if err != nil {
		return fmt.Errorf("encoding metrics: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
