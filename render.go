package tensorcanon

import "strings"

// Rendering of tensors and deltas for diagnostics and LaTeX export.
// These forms are presentation only; equality and canonical order are
// carried by the values themselves, never parsed back out of strings.

func joinNames(ls []Label) string {
	var b strings.Builder
	for i, l := range ls {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(l.String())
	}
	return b.String()
}

func joinLaTeX(ls []Label) string {
	var b strings.Builder
	for _, l := range ls {
		b.WriteString(labelLaTeX(l))
	}
	return b.String()
}

func labelLaTeX(l Label) string {
	ix, ok := l.Index()
	if !ok {
		return l.String()
	}
	name := ix.Name()
	switch ix.Spin().String() {
	case "a":
		return "{" + name + "_{\\alpha}}"
	case "b":
		return "{" + name + "_{\\beta}}"
	default:
		return name
	}
}

func (t *AntiSymmetricTensor) String() string {
	return t.symbol + "(" + joinNames(t.upper) + "," + joinNames(t.lower) + ")"
}

// LaTeX renders the tensor with the upper group as superscript and the
// lower group as subscript, e.g. {t^{ab}_{ij}}.
func (t *AntiSymmetricTensor) LaTeX() string {
	return "{" + t.symbol + "^{" + joinLaTeX(t.upper) + "}_{" + joinLaTeX(t.lower) + "}}"
}

func (t *NonSymmetricTensor) String() string {
	return t.symbol + "(" + joinNames(t.indices) + ")"
}

// LaTeX renders the tensor with all indices as one subscript.
func (t *NonSymmetricTensor) LaTeX() string {
	return "{" + t.symbol + "_{" + joinLaTeX(t.indices) + "}}"
}

func (t *SingleSymmetryTensor) String() string {
	return t.symbol + "(" + joinNames(t.indices) + ")"
}

// LaTeX renders the tensor with all indices as one subscript.
func (t *SingleSymmetryTensor) LaTeX() string {
	return "{" + t.symbol + "_{" + joinLaTeX(t.indices) + "}}"
}

func (d *Delta) String() string {
	return "delta(" + d.first.String() + "," + d.second.String() + ")"
}

// LaTeX renders the delta as \delta with both labels in the subscript.
func (d *Delta) LaTeX() string {
	return "{\\delta_{" + joinLaTeX([]Label{d.first, d.second}) + "}}"
}
