// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-robot-survivor/internal/defs"
)

// Source is the random source every stochastic system draws from.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// PRNGService wraps a seeded math/rand generator so that world generation,
// spawning and loot are reproducible for a given seed.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService creates a generator. A zero seed is replaced by the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the effective seed.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn returns a value in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a value in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// SequenceSource replays a fixed list of values, wrapping around at the end.
// An empty sequence always yields 0.
type SequenceSource struct {
	Values []float64
	next   int
}

// NewSequenceSource returns a source replaying values in order.
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{Values: values}
}

func (s *SequenceSource) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}

func (s *SequenceSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return min(int(s.Float64()*float64(n)), n-1)
}

// TotalWeight sums the weights of a loot table.
func TotalWeight(entries []defs.LootEntry) int {
	total := 0
	for _, e := range entries {
		total += e.Weight
	}
	return total
}

// ChooseWeighted picks the entry selected by r, a value in [0, TotalWeight).
// Weights are subtracted in table order and the first entry that brings the
// remainder to zero or below wins. ok is false for an empty table.
func ChooseWeighted(entries []defs.LootEntry, r float64) (item defs.Resource, ok bool) {
	if len(entries) == 0 {
		return 0, false
	}
	for _, e := range entries {
		r -= float64(e.Weight)
		if r <= 0 {
			return e.Item, true
		}
	}
	return entries[len(entries)-1].Item, true
}

// RollWeighted draws one entry of the table from src.
func RollWeighted(src Source, entries []defs.LootEntry) (defs.Resource, bool) {
	return ChooseWeighted(entries, src.Float64()*float64(TotalWeight(entries)))
}
