package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/apaude1/cosc519-cpu-simulation/sim"
	"github.com/apaude1/cosc519-cpu-simulation/sim/report"
	"github.com/apaude1/cosc519-cpu-simulation/sim/trace"
)

var (
	// CLI flags for the run command
	policies            []string      // Policies to simulate, each as an independent concurrent run
	seed                int64         // Seed for process generation
	logLevel            string        // Log verbosity level
	configPath          string        // Optional YAML config file
	readyQueueCapacity  int           // Max processes in the ready queue
	readyQueueThreshold int           // Ready-queue low-water mark that triggers admission
	jobQueueCapacity    int           // Max processes waiting for admission
	maxBurstTime        int           // Upper bound for burst draws
	maxPriority         int           // Upper bound for priority draws
	maxProcesses        int           // Processes generated per run
	maxArrivals         int           // Upper bound for arrivals per round
	tickPace            time.Duration // Wall-clock delay per tick
	traceLevel          string        // Decision trace level
	verboseRounds       bool          // Print every round, not just the final report
	summaryOut          string        // Optional YAML metrics output path
	runID               string        // Optional run identifier prefix
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cpusim",
	Short: "Tick-based simulator for preemptive CPU scheduling policies",
}

// runCmd executes one simulation per requested policy using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scheduling simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s", traceLevel)
		}

		cfg, err := resolveConfig(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		kinds, err := parsePolicies(policies)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		recorder := report.NewRecorder()
		sink := report.Multi{report.NewTableReporter(os.Stdout, verboseRounds), recorder}

		sims := make([]*sim.Simulator, 0, len(kinds))
		for _, kind := range kinds {
			id := ""
			if runID != "" {
				id = fmt.Sprintf("%s-%s", runID, kind)
			}
			s, err := sim.NewSimulator(id, kind, cfg, sink)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			sims = append(sims, s)
		}

		logrus.Infof("Starting %d run(s): policies=%v, seed=%d, max processes=%d",
			len(sims), kinds, cfg.Workload.Seed, cfg.Workload.MaxProcesses)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		startTime := time.Now()
		if err := sim.RunAll(ctx, sims); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		for _, s := range sims {
			logrus.Infof("Run %s (%s): %d rounds, clock %d", s.RunID, s.Policy, recorder.Rounds(s.RunID), s.State.Clock)
		}

		runs := recorder.Metrics()
		if len(runs) > 1 {
			fmt.Println("=== Policy Comparison ===")
			report.WriteComparison(os.Stdout, runs)
		}
		for _, s := range sims {
			if s.Trace == nil {
				continue
			}
			ts := trace.Summarize(s.Trace)
			logrus.Infof("Trace %s: %d decisions, %d starts, %d preemptions, %d completions",
				s.Policy, ts.TotalDecisions, ts.Starts, ts.Preemptions, ts.Completions)
		}
		if summaryOut != "" {
			if err := sim.SaveMetrics(summaryOut, runs); err != nil {
				logrus.Fatalf("%v", err)
			}
			logrus.Infof("Wrote metrics to %s", summaryOut)
		}

		logrus.Infof("Simulation complete in %s.", time.Since(startTime))
	},
}

// policiesCmd lists the accepted policy names
var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List the available scheduling policies",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range sim.PolicyNames() {
			kind, _ := sim.ParsePolicy(name)
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", name, kind.Title())
		}
	},
}

// parsePolicies converts --policy values (comma separated or repeated) to kinds, dropping duplicates.
func parsePolicies(names []string) ([]sim.PolicyKind, error) {
	seen := make(map[sim.PolicyKind]bool)
	var kinds []sim.PolicyKind
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		kind, err := sim.ParsePolicy(name)
		if err != nil {
			return nil, err
		}
		if !seen[kind] {
			seen[kind] = true
			kinds = append(kinds, kind)
		}
	}
	if len(kinds) == 0 {
		return nil, fmt.Errorf("no policy selected (valid: %s)", strings.Join(sim.ValidPolicyNames(), ", "))
	}
	return kinds, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	defaults := sim.DefaultConfig()

	runCmd.Flags().StringSliceVar(&policies, "policy", sim.PolicyNames(),
		fmt.Sprintf("Comma-separated policies to run concurrently (%s)", strings.Join(sim.ValidPolicyNames(), ", ")))
	runCmd.Flags().Int64Var(&seed, "seed", defaults.Workload.Seed, "Seed for random process generation")
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML config file; explicitly set flags override it")
	runCmd.Flags().StringVar(&runID, "run-id", "", "Run identifier prefix (default: random UUID per run)")

	// Queue configs
	runCmd.Flags().IntVar(&readyQueueCapacity, "ready-queue-capacity", defaults.Queues.ReadyQueueCapacity, "Maximum number of processes in the ready queue")
	runCmd.Flags().IntVar(&readyQueueThreshold, "ready-queue-threshold", defaults.Queues.ReadyQueueThreshold, "Ready-queue occupancy at or below which the job scheduler re-admits")
	runCmd.Flags().IntVar(&jobQueueCapacity, "job-queue-capacity", defaults.Queues.JobQueueCapacity, "Maximum number of processes waiting in the job queue")

	// Workload configs
	runCmd.Flags().IntVar(&maxBurstTime, "max-burst", defaults.Workload.MaxBurstTime, "Maximum burst time drawn at admission")
	runCmd.Flags().IntVar(&maxPriority, "max-priority", defaults.Workload.MaxPriority, "Maximum priority value drawn at admission")
	runCmd.Flags().IntVar(&maxProcesses, "max-processes", defaults.Workload.MaxProcesses, "Number of processes generated per run")
	runCmd.Flags().IntVar(&maxArrivals, "max-arrivals", defaults.Workload.MaxArrivalsPerRound, "Maximum number of arrivals per round")

	// Output configs
	runCmd.Flags().DurationVar(&tickPace, "pace", 0, "Wall-clock delay per tick for display pacing (e.g. 100ms)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Decision trace level (none, decisions)")
	runCmd.Flags().BoolVar(&verboseRounds, "verbose-rounds", false, "Print the state after every round")
	runCmd.Flags().StringVar(&summaryOut, "summary-out", "", "Write per-run metrics to this YAML file")

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(policiesCmd)
}
