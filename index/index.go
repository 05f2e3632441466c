// Package index defines the orbital index entity consumed by the
// canonicalization engine.
//
// An Index is an immutable value identified by three things: the orbital
// space it ranges over (occupied, virtual or the general composite space),
// an optional spin projection, and a display name made of a single letter
// plus an optional numeric suffix. Two indices with identical names are
// still distinct values when created separately ("dummy" indices inside
// contraction sums); identity is carried by a process-wide serial that is
// assigned at construction time and never reused.
package index

import (
	"fmt"
	"sync/atomic"
)

// Space is the orbital space an index ranges over.
type Space uint8

const (
	// General is the composite space covering both occupied and virtual
	// orbitals. It acts as a wildcard in delta evaluation.
	General Space = iota
	// Occupied covers orbitals below the Fermi level.
	Occupied
	// Virtual covers orbitals above the Fermi level.
	Virtual
)

// Char returns the single representative character used for ordering and
// space comparison: 'g' < 'o' < 'v'.
func (s Space) Char() byte {
	switch s {
	case Occupied:
		return 'o'
	case Virtual:
		return 'v'
	default:
		return 'g'
	}
}

func (s Space) String() string {
	switch s {
	case Occupied:
		return "occupied"
	case Virtual:
		return "virtual"
	default:
		return "general"
	}
}

// Spin is the spin projection of an index. SpinNone means the index is
// not spin-resolved (spatial orbital).
type Spin uint8

const (
	SpinNone Spin = iota
	Alpha
	Beta
)

// String returns the ordering representation: "" < "a" < "b".
func (s Spin) String() string {
	switch s {
	case Alpha:
		return "a"
	case Beta:
		return "b"
	default:
		return ""
	}
}

// serial is the process-wide identity source. Indices are immutable and
// never recycled, so a monotonically increasing counter is a stable
// tie-break without any further coordination.
var serial atomic.Uint64

// Index is an immutable orbital index. The zero value is not a valid
// index; use New or NewSpin.
type Index struct {
	name   string
	letter byte
	number int
	space  Space
	spin   Spin
	id     uint64
}

// New creates a spin-free index. The name must be a single lowercase
// letter optionally followed by a decimal suffix, e.g. "i", "a3", "p42".
func New(name string, space Space) (Index, error) {
	return NewSpin(name, space, SpinNone)
}

// NewSpin creates a spin-resolved index.
func NewSpin(name string, space Space, spin Spin) (Index, error) {
	letter, number, err := parseName(name)
	if err != nil {
		return Index{}, err
	}
	return Index{
		name:   name,
		letter: letter,
		number: number,
		space:  space,
		spin:   spin,
		id:     serial.Add(1),
	}, nil
}

// Must creates a spin-free index and panics on an invalid name.
// Intended for tests and static tables.
func Must(name string, space Space) Index {
	ix, err := New(name, space)
	if err != nil {
		panic(err)
	}
	return ix
}

// MustSpin creates a spin-resolved index and panics on an invalid name.
func MustSpin(name string, space Space, spin Spin) Index {
	ix, err := NewSpin(name, space, spin)
	if err != nil {
		panic(err)
	}
	return ix
}

func parseName(name string) (byte, int, error) {
	if name == "" {
		return 0, 0, fmt.Errorf("index: empty name")
	}
	letter := name[0]
	if letter < 'a' || letter > 'z' {
		return 0, 0, fmt.Errorf("index: name %q must start with a lowercase letter", name)
	}
	number := 0
	for i := 1; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			return 0, 0, fmt.Errorf("index: name %q has a non-numeric suffix", name)
		}
		number = number*10 + int(c-'0')
	}
	return letter, number, nil
}

// Name returns the display name the index was created with.
func (ix Index) Name() string { return ix.name }

// Letter returns the letter prefix of the name.
func (ix Index) Letter() byte { return ix.letter }

// Number returns the numeric suffix of the name, or 0 when absent.
func (ix Index) Number() int { return ix.number }

// Space returns the orbital space.
func (ix Index) Space() Space { return ix.space }

// Spin returns the spin projection.
func (ix Index) Spin() Spin { return ix.spin }

// ID returns the identity serial. It is unique per constructed index and
// stable for the index's lifetime.
func (ix Index) ID() uint64 { return ix.id }

// Same reports whether two values refer to the same constructed index.
// Name equality is not sufficient: separately created dummies with equal
// names are distinct.
func (ix Index) Same(other Index) bool { return ix.id == other.id }

func (ix Index) String() string {
	if ix.spin == SpinNone {
		return ix.name
	}
	return ix.name + "_" + ix.spin.String()
}
