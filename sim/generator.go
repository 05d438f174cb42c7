package sim

import "math/rand"

// ProcessGenerator synthesizes the process population of a run.
// Generate produces NEW processes with unique PIDs; Burst and Priority are
// drawn when a process is admitted to the ready queue.
type ProcessGenerator interface {
	// Generate returns at most room new processes arriving at tick now.
	Generate(now int64, room int) []*ProcessControlBlock
	// Burst draws a burst time for an admitted process.
	Burst() int64
	// Priority draws a priority for an admitted process.
	Priority() int
	// Generated returns the number of processes produced so far.
	Generated() int
	// Exhausted reports whether the configured process count has been produced.
	Exhausted() bool
}

// RandomGenerator is the default ProcessGenerator. All randomness comes from
// its own PartitionedRNG, so a given seed always yields the same population.
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type RandomGenerator struct {
	cfg       WorkloadConfig
	rng       *PartitionedRNG
	nextPID   int
	generated int
}

// NewRandomGenerator creates a generator seeded from cfg.Seed.
func NewRandomGenerator(cfg WorkloadConfig) *RandomGenerator {
	return &RandomGenerator{
		cfg:     cfg,
		rng:     NewPartitionedRNG(cfg.Seed),
		nextPID: 1,
	}
}

// Generate draws the round's arrival count from [0, MaxArrivalsPerRound],
// capped by room and by the processes still to be produced.
func (g *RandomGenerator) Generate(_ int64, room int) []*ProcessControlBlock {
	remaining := g.cfg.MaxProcesses - g.generated
	if remaining <= 0 || room <= 0 {
		return nil
	}
	n := g.arrivals().Intn(g.cfg.MaxArrivalsPerRound + 1)
	n = min(n, room, remaining)
	out := make([]*ProcessControlBlock, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, NewProcessControlBlock(g.nextPID, 0))
		g.nextPID++
		g.generated++
	}
	return out
}

// Burst draws from [1, MaxBurstTime].
func (g *RandomGenerator) Burst() int64 {
	return 1 + int64(g.admission().Intn(g.cfg.MaxBurstTime))
}

// Priority draws from [1, MaxPriority].
func (g *RandomGenerator) Priority() int {
	return 1 + g.admission().Intn(g.cfg.MaxPriority)
}

// Generated returns the number of processes produced so far.
func (g *RandomGenerator) Generated() int { return g.generated }

// Exhausted reports whether MaxProcesses processes have been produced.
func (g *RandomGenerator) Exhausted() bool { return g.generated >= g.cfg.MaxProcesses }

func (g *RandomGenerator) arrivals() *rand.Rand  { return g.rng.ForSubsystem(SubsystemArrivals) }
func (g *RandomGenerator) admission() *rand.Rand { return g.rng.ForSubsystem(SubsystemAdmission) }
