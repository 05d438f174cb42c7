package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apaude1/cosc519-cpu-simulation/sim"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigFile_PartialFile_KeepsDefaults(t *testing.T) {
	// GIVEN a file overriding only the seed and the ready-queue capacity
	path := writeConfig(t, `
queues:
  ready_queue_capacity: 8
workload:
  seed: 7
tick_pace: 50ms
`)

	// WHEN loaded
	cfg, err := loadConfigFile(path)

	// THEN overridden fields change and the rest keep their defaults
	require.NoError(t, err)
	defaults := sim.DefaultConfig()
	assert.Equal(t, 8, cfg.Queues.ReadyQueueCapacity)
	assert.Equal(t, int64(7), cfg.Workload.Seed)
	assert.Equal(t, 50*time.Millisecond, cfg.TickPace)
	assert.Equal(t, defaults.Queues.ReadyQueueThreshold, cfg.Queues.ReadyQueueThreshold)
	assert.Equal(t, defaults.Workload.MaxBurstTime, cfg.Workload.MaxBurstTime)
}

func TestLoadConfigFile_UnknownField_Rejected(t *testing.T) {
	// GIVEN a typo in a field name
	path := writeConfig(t, "queues:\n  ready_queue_capacty: 8\n")

	// WHEN loaded
	_, err := loadConfigFile(path)

	// THEN strict parsing rejects it
	assert.Error(t, err)
}

func TestLoadConfigFile_MissingFile_ReturnsError(t *testing.T) {
	_, err := loadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApplyFlags_OnlyChangedFlagsOverrideFile(t *testing.T) {
	// GIVEN a file-loaded config and a flag set where only --seed was set
	oldSeed, oldMax := seed, maxProcesses
	t.Cleanup(func() { seed, maxProcesses = oldSeed, oldMax })

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int64Var(&seed, "seed", 42, "")
	fs.IntVar(&maxProcesses, "max-processes", 20, "")
	require.NoError(t, fs.Set("seed", "99"))

	cfg := sim.DefaultConfig()
	cfg.Workload.MaxProcesses = 3

	// WHEN flags are applied in override mode
	applyFlags(fs, false, &cfg)

	// THEN the changed flag wins and the untouched one keeps the file value
	assert.Equal(t, int64(99), cfg.Workload.Seed)
	assert.Equal(t, 3, cfg.Workload.MaxProcesses)
}

func TestApplyFlags_AllMode_AppliesEveryFlag(t *testing.T) {
	oldMax := maxProcesses
	t.Cleanup(func() { maxProcesses = oldMax })

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.IntVar(&maxProcesses, "max-processes", 4, "")

	cfg := sim.DefaultConfig()
	applyFlags(fs, true, &cfg)

	assert.Equal(t, 4, cfg.Workload.MaxProcesses)
}
