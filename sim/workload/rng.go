package workload

import (
	"hash/fnv"
	"math/rand"
)

// RNG subsystems used by the generator.
const (
	// SubsystemArrivals seeds inter-arrival sampling with the master seed directly.
	SubsystemArrivals = "arrivals"
	// SubsystemLengths seeds transaction-length sampling.
	SubsystemLengths = "lengths"
)

// PartitionedRNG hands out one deterministic *rand.Rand per subsystem so that
// changing the length distribution never shifts the arrival times drawn for
// the same seed.
//
// Derivation:
//   - SubsystemArrivals: the master seed
//   - every other subsystem: seed XOR fnv1a64(name)
//
// Not safe for concurrent use.
type PartitionedRNG struct {
	seed       int64
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a master seed.
func NewPartitionedRNG(seed int64) *PartitionedRNG {
	return &PartitionedRNG{
		seed:       seed,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns the cached RNG for name, creating it on first use.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	derived := p.seed
	if name != SubsystemArrivals {
		derived ^= fnv1a64(name)
	}
	rng := rand.New(rand.NewSource(derived))
	p.subsystems[name] = rng
	return rng
}

// Seed returns the master seed.
func (p *PartitionedRNG) Seed() int64 {
	return p.seed
}

func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
