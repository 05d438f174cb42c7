package sim

import (
	"fmt"
	"time"
)

// QueueConfig groups the capacities of the job and ready queues.
type QueueConfig struct {
	ReadyQueueCapacity  int `yaml:"ready_queue_capacity"`  // max processes in the ready queue (must be > 0)
	ReadyQueueThreshold int `yaml:"ready_queue_threshold"` // low-water mark that triggers re-admission, in [0, capacity)
	JobQueueCapacity    int `yaml:"job_queue_capacity"`    // max processes waiting for admission (must be > 0)
}

// WorkloadConfig groups process-generation parameters.
type WorkloadConfig struct {
	MaxBurstTime        int   `yaml:"max_burst_time"`         // burst drawn from [1, MaxBurstTime]
	MaxPriority         int   `yaml:"max_priority"`           // priority drawn from [1, MaxPriority]
	MaxProcesses        int   `yaml:"max_processes"`          // total processes generated per run
	MaxArrivalsPerRound int   `yaml:"max_arrivals_per_round"` // arrivals per round drawn from [0, MaxArrivalsPerRound]
	Seed                int64 `yaml:"seed"`                   // master seed for all randomness in a run
}

// Config is the complete configuration of one simulation run.
type Config struct {
	Queues   QueueConfig    `yaml:"queues"`
	Workload WorkloadConfig `yaml:"workload"`
	// TickPace delays each tick by a wall-clock interval for display pacing.
	// Zero runs as fast as possible and never affects results.
	TickPace time.Duration `yaml:"tick_pace"`
	// Trace enables per-tick decision recording (see sim/trace).
	Trace bool `yaml:"trace"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Queues: QueueConfig{
			ReadyQueueCapacity:  5,
			ReadyQueueThreshold: 2,
			JobQueueCapacity:    10,
		},
		Workload: WorkloadConfig{
			MaxBurstTime:        10,
			MaxPriority:         5,
			MaxProcesses:        20,
			MaxArrivalsPerRound: 3,
			Seed:                42,
		},
	}
}

// Validate checks that all parameters are in range.
func (c Config) Validate() error {
	if c.Queues.ReadyQueueCapacity < 1 {
		return fmt.Errorf("ready queue capacity must be >= 1, got %d", c.Queues.ReadyQueueCapacity)
	}
	if c.Queues.ReadyQueueThreshold < 0 || c.Queues.ReadyQueueThreshold >= c.Queues.ReadyQueueCapacity {
		return fmt.Errorf("ready queue threshold must be in [0, %d), got %d",
			c.Queues.ReadyQueueCapacity, c.Queues.ReadyQueueThreshold)
	}
	if c.Queues.JobQueueCapacity < 1 {
		return fmt.Errorf("job queue capacity must be >= 1, got %d", c.Queues.JobQueueCapacity)
	}
	if c.Workload.MaxBurstTime < 1 {
		return fmt.Errorf("max burst time must be >= 1, got %d", c.Workload.MaxBurstTime)
	}
	if c.Workload.MaxPriority < 1 {
		return fmt.Errorf("max priority must be >= 1, got %d", c.Workload.MaxPriority)
	}
	if c.Workload.MaxProcesses < 1 {
		return fmt.Errorf("max processes must be >= 1, got %d", c.Workload.MaxProcesses)
	}
	if c.Workload.MaxArrivalsPerRound < 1 {
		return fmt.Errorf("max arrivals per round must be >= 1, got %d", c.Workload.MaxArrivalsPerRound)
	}
	if c.TickPace < 0 {
		return fmt.Errorf("tick pace must be >= 0, got %s", c.TickPace)
	}
	return nil
}
