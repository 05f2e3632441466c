package tensorcanon

import (
	"hash/fnv"
	"strconv"

	"github.com/frieschneider/tensorcanon/index"
)

// LabelKind tags the variant held by a Label.
type LabelKind uint8

const (
	// KindIndex labels carry an orbital index.
	KindIndex LabelKind = iota
	// KindSym labels carry a bare symbol name. They appear transiently
	// during simultaneous substitution, when an index slot temporarily
	// holds a non-index placeholder.
	KindSym
	// KindInt labels carry an integer literal, e.g. explicit orbital
	// numbers in range-restricted deltas.
	KindInt
)

// Label is the tagged variant an index slot can hold: a genuine orbital
// Index, a symbolic placeholder, or an integer literal. Labels are
// immutable values.
type Label struct {
	kind LabelKind
	ix   index.Index
	sym  string
	num  int
}

// Idx wraps an orbital index as a Label.
func Idx(ix index.Index) Label { return Label{kind: KindIndex, ix: ix} }

// Sym wraps a bare symbol name as a Label. Two Sym labels with the same
// name denote the same symbol.
func Sym(name string) Label { return Label{kind: KindSym, sym: name} }

// Int wraps an integer literal as a Label.
func Int(n int) Label { return Label{kind: KindInt, num: n} }

// Idxs wraps a sequence of indices as Labels.
func Idxs(ixs ...index.Index) []Label {
	ls := make([]Label, len(ixs))
	for i, ix := range ixs {
		ls[i] = Idx(ix)
	}
	return ls
}

// Kind returns the variant tag.
func (l Label) Kind() LabelKind { return l.kind }

// Index returns the wrapped index and whether the label holds one.
func (l Label) Index() (index.Index, bool) { return l.ix, l.kind == KindIndex }

// IsIndex reports whether the label holds a genuine orbital index.
func (l Label) IsIndex() bool { return l.kind == KindIndex }

func (l Label) String() string {
	switch l.kind {
	case KindIndex:
		return l.ix.String()
	case KindInt:
		return strconv.Itoa(l.num)
	default:
		return l.sym
	}
}

// Same reports value identity: same constructed index, same symbol name,
// or same integer.
func (l Label) Same(o Label) bool {
	if l.kind != o.kind {
		return false
	}
	switch l.kind {
	case KindIndex:
		return l.ix.Same(o.ix)
	case KindInt:
		return l.num == o.num
	default:
		return l.sym == o.sym
	}
}

// ternary is the three-valued result of a provability query.
type ternary uint8

const (
	unknown ternary = iota
	yes
	no
)

// provablyEqual decides whether two labels are provably equal, provably
// unequal, or neither. Distinct dummies with equal metadata stay
// unknown: nothing forces them to coincide or to differ.
func provablyEqual(a, b Label) ternary {
	if a.Same(b) {
		return yes
	}
	if a.kind == KindInt && b.kind == KindInt {
		return no // Same already ruled out equality
	}
	return unknown
}

// provablyLess decides a < b when both sides are integer literals and is
// unknown otherwise.
func provablyLess(a, b Label) ternary {
	if a.kind != KindInt || b.kind != KindInt {
		return unknown
	}
	if a.num < b.num {
		return yes
	}
	return no
}

// tie returns the identity component of the ordering key. Indices use
// their construction serial; other labels hash their rendered form, so
// equal symbols collapse onto one key.
func (l Label) tie() uint64 {
	if l.kind == KindIndex {
		return l.ix.ID()
	}
	h := fnv.New64a()
	h.Write([]byte(l.String()))
	return h.Sum64()
}
