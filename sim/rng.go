package sim

import (
	"hash/fnv"
	"math/rand"
)

// SimulationKey is the master seed of a run. Replaying the same station,
// arrival list and key yields the same event log and end-of-day summary.
type SimulationKey int64

// NewSimulationKey wraps a CLI or test seed.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// Random-stream names handed to PartitionedRNG.ForSubsystem.
const (
	// SubsystemService perturbs service durations. It is seeded with the
	// master key itself, so --seed N reproduces the durations a plain
	// rand.NewSource(N) would draw.
	SubsystemService = "service"

	// SubsystemWorkload drives the synthetic fleet generator.
	SubsystemWorkload = "workload"
)

// PartitionedRNG hands out one independent *rand.Rand per named stream, so
// drawing more values in one stream never shifts another. Streams other
// than SubsystemService are seeded with key XOR fnv1a64(name).
//
// Not safe for concurrent use; each Simulator owns its own instance.
type PartitionedRNG struct {
	key     SimulationKey
	streams map[string]*rand.Rand
}

// NewPartitionedRNG creates an empty set of streams under key.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{key: key, streams: make(map[string]*rand.Rand)}
}

// ForSubsystem returns the stream for name, creating it on first use.
// Later calls with the same name return the same generator, mid-sequence.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	rng, ok := p.streams[name]
	if !ok {
		rng = rand.New(rand.NewSource(p.seedFor(name)))
		p.streams[name] = rng
	}
	return rng
}

// Key returns the master seed.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

func (p *PartitionedRNG) seedFor(name string) int64 {
	if name == SubsystemService {
		return int64(p.key)
	}
	return int64(p.key) ^ fnv1a64(name)
}

func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
