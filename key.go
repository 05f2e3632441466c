package tensorcanon

// sortKey is the total-order key every component sorts by. All
// canonicalization in this package must go through keyOf so the induced
// order is identical everywhere; mixing orders would make expression
// normalization diverge.
//
// For an index the fields are (space char, spin, numeric suffix, letter,
// identity serial). Non-index labels key as ("", "", 0, rendered form,
// hash), which sorts ahead of every index in the leading field and never
// collides with one.
type sortKey struct {
	space string
	spin  string
	num   int
	name  string
	tie   uint64
}

func keyOf(l Label) sortKey {
	if ix, ok := l.Index(); ok {
		return sortKey{
			space: string(ix.Space().Char()),
			spin:  ix.Spin().String(),
			num:   ix.Number(),
			name:  string(ix.Letter()),
			tie:   ix.ID(),
		}
	}
	return sortKey{name: l.String(), tie: l.tie()}
}

func (k sortKey) less(o sortKey) bool {
	if k.space != o.space {
		return k.space < o.space
	}
	if k.spin != o.spin {
		return k.spin < o.spin
	}
	if k.num != o.num {
		return k.num < o.num
	}
	if k.name != o.name {
		return k.name < o.name
	}
	return k.tie < o.tie
}

// nameKey is the (numeric suffix, letter) pair used to break ties between
// equal-space bra/ket groups.
type nameKey struct {
	num    int
	letter byte
}

func nameKeyOf(l Label) nameKey {
	ix, ok := l.Index()
	if !ok {
		return nameKey{}
	}
	return nameKey{num: ix.Number(), letter: ix.Letter()}
}

// lessNameKeys compares two name-key sequences lexicographically.
func lessNameKeys(a, b []nameKey) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i].num != b[i].num {
				return a[i].num < b[i].num
			}
			return a[i].letter < b[i].letter
		}
	}
	return len(a) < len(b)
}
