package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/apaude1/cosc519-cpu-simulation/sim"
	"github.com/apaude1/cosc519-cpu-simulation/sim/trace"
)

// loadConfigFile parses a YAML config on top of sim.DefaultConfig().
// Uses strict field checking: typos must cause errors.
func loadConfigFile(path string) (sim.Config, error) {
	cfg := sim.DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// resolveConfig merges the optional config file with CLI flags. Without a
// file every flag applies; with a file only explicitly set flags override it.
func resolveConfig(cmd *cobra.Command) (sim.Config, error) {
	cfg := sim.DefaultConfig()
	if configPath != "" {
		loaded, err := loadConfigFile(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	applyFlags(cmd.Flags(), configPath == "", &cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyFlags copies flag values into cfg. When all is false only flags the
// user changed are applied.
func applyFlags(flags *pflag.FlagSet, all bool, cfg *sim.Config) {
	set := func(name string) bool { return all || flags.Changed(name) }
	if set("seed") {
		cfg.Workload.Seed = seed
	}
	if set("ready-queue-capacity") {
		cfg.Queues.ReadyQueueCapacity = readyQueueCapacity
	}
	if set("ready-queue-threshold") {
		cfg.Queues.ReadyQueueThreshold = readyQueueThreshold
	}
	if set("job-queue-capacity") {
		cfg.Queues.JobQueueCapacity = jobQueueCapacity
	}
	if set("max-burst") {
		cfg.Workload.MaxBurstTime = maxBurstTime
	}
	if set("max-priority") {
		cfg.Workload.MaxPriority = maxPriority
	}
	if set("max-processes") {
		cfg.Workload.MaxProcesses = maxProcesses
	}
	if set("max-arrivals") {
		cfg.Workload.MaxArrivalsPerRound = maxArrivals
	}
	if set("pace") {
		cfg.TickPace = tickPace
	}
	if set("trace") {
		cfg.Trace = trace.TraceLevel(traceLevel) == trace.TraceLevelDecisions
	}
}
