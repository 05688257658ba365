// Package randutil supplies the engine's deterministic shuffle source: a
// seeded rand/v2 PCG generator behind the card.Shuffler interface, so a
// hand played twice with the same seed deals identical cards.
package randutil

import (
	"math/rand/v2"

	"github.com/lox/holdem-engine/internal/card"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// Shuffler is the engine's default card.Shuffler. It performs an in-place
// Fisher-Yates shuffle over a seeded rand/v2 source rather than the
// package-global one, so identical seeds reproduce identical hands across
// processes and platforms.
type Shuffler struct {
	rng *rand.Rand
}

// NewShuffler returns a Shuffler deterministically seeded from seed. The
// seed is expanded into the two 64-bit PCG seeds rand/v2 requires via a
// SplitMix64-style bit mixer, so a single int64 (the value cmd/holdem-sim
// takes as --seed) fully determines the shuffle sequence.
func NewShuffler(seed int64) *Shuffler {
	u := uint64(seed)
	return &Shuffler{rng: rand.New(rand.NewPCG(mixSeed(u), mixSeed(u+goldenRatio64)))}
}

// Shuffle permutes cards in place using Fisher-Yates.
func (s *Shuffler) Shuffle(cards []card.Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// mixSeed spreads the bits of a single seed so the two PCG streams derived
// from it are not trivially related.
func mixSeed(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
