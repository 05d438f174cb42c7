package sim

import (
	"hash/fnv"
	"math/rand"
)

// Random streams of a run. Each stream advances independently, so drawing
// more arrivals never shifts the burst and priority sequence.
const (
	// SubsystemArrivals drives how many processes arrive per round.
	SubsystemArrivals = "arrivals"
	// SubsystemAdmission drives burst and priority draws at admission. It is
	// seeded with the run seed itself.
	SubsystemAdmission = "admission"
)

// PartitionedRNG hands out one seeded *rand.Rand per named stream.
// A run with the same seed, policy and config replays the same draws.
//
// Thread-safety: NOT thread-safe. Must be called from the run's goroutine.
type PartitionedRNG struct {
	seed    int64
	streams map[string]*rand.Rand
}

// NewPartitionedRNG creates the streams of a run seeded with seed.
func NewPartitionedRNG(seed int64) *PartitionedRNG {
	return &PartitionedRNG{seed: seed, streams: make(map[string]*rand.Rand)}
}

// ForSubsystem returns the stream for name, creating it on first use.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	rng, ok := p.streams[name]
	if !ok {
		rng = rand.New(rand.NewSource(streamSeed(p.seed, name)))
		p.streams[name] = rng
	}
	return rng
}

// streamSeed mixes the stream name into the run seed.
func streamSeed(seed int64, name string) int64 {
	if name == SubsystemAdmission {
		return seed
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return seed ^ int64(h.Sum64())
}
