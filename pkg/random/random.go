// Package random provides the injectable randomness used by the persona:
// uniform picks from fixed corpora, weighted draws and independent chances.
//
// Production code uses Default (the auto-seeded math/rand top-level source) or
// NewSeeded. Tests substitute Scripted to replay a fixed sequence of draws.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

// Source is the minimal random source the persona needs.
type Source interface {
	Intn(n int) int
	Float64() float64
}

type globalSource struct{}

func (globalSource) Intn(n int) int    { return rand.Intn(n) }
func (globalSource) Float64() float64 { return rand.Float64() }

// Default returns a source backed by the math/rand top-level functions.
// It is safe for concurrent use.
func Default() Source { return globalSource{} }

// lockedSource guards a *rand.Rand, which is not safe for concurrent use.
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedSource) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func (l *lockedSource) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// NewSeeded returns a concurrency-safe source with a fixed seed.
func NewSeeded(seed int64) Source {
	return &lockedSource{r: rand.New(rand.NewSource(seed))}
}

// NewSeed generates a seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Pick returns one element of items chosen uniformly at random.
// It panics on an empty slice; corpora are fixed and never empty.
func Pick[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}

// Weighted returns the index drawn from weights, which need not sum to 1.
// Non-positive weights are never drawn.
func Weighted(src Source, weights []float64) int {
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	r := src.Float64() * total
	last := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if r < w {
			return i
		}
		r -= w
		last = i
	}
	return last
}

// Chance reports whether an independent draw falls under p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}
