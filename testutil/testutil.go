// Package testutil provides deterministic index and label generation for
// tests and benchmarks.
package testutil

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/frieschneider/tensorcanon/index"
)

// Occ creates an occupied index, panicking on a bad name.
func Occ(name string) index.Index { return index.Must(name, index.Occupied) }

// Virt creates a virtual index, panicking on a bad name.
func Virt(name string) index.Index { return index.Must(name, index.Virtual) }

// Gen creates a general-space index, panicking on a bad name.
func Gen(name string) index.Index { return index.Must(name, index.General) }

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Indices generates num distinct indices in the given space, using the
// conventional letter ranges (i... for occupied, a... for virtual,
// p... for general) with random numeric suffixes.
func (r *RNG) Indices(num int, space index.Space) []index.Index {
	r.mu.Lock()
	defer r.mu.Unlock()

	var letters string
	switch space {
	case index.Occupied:
		letters = "ijklmno"
	case index.Virtual:
		letters = "abcdefgh"
	default:
		letters = "pqrstuvw"
	}
	out := make([]index.Index, num)
	for n := 0; n < num; n++ {
		name := fmt.Sprintf("%c%d", letters[r.rand.Intn(len(letters))], r.rand.Intn(100))
		out[n] = index.Must(name, space)
	}
	return out
}

// Shuffled returns a shuffled copy of the given indices.
func (r *RNG) Shuffled(ixs []index.Index) []index.Index {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]index.Index, len(ixs))
	copy(out, ixs)
	r.rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
