package cube

import (
	"sort"
	"strings"

	"github.com/hwmodelcheck/pdrcore/gate"
)

// Cube is a sorted, duplicate-free sequence of signed gate references
// over state variables (flops/delays). The zero Cube (Null) is the
// distinguished absent cube.
type Cube struct {
	lits []gate.Ref
}

// Null is the distinguished absent cube.
var Null = Cube{}

// New builds a Cube from lits, sorting into canonical order and
// removing exact duplicates. It does not check for (and does not
// reject) a literal and its complement both being present --
// contradictory cubes are a caller error, not a cube.New concern.
//
// Complexity: O(n log n).
func New(lits ...gate.Ref) Cube {
	if len(lits) == 0 {
		return Cube{lits: []gate.Ref{}}
	}
	cp := make([]gate.Ref, len(lits))
	copy(cp, lits)
	sort.Slice(cp, func(i, j int) bool { return refLess(cp[i], cp[j]) })

	out := cp[:1]
	for _, r := range cp[1:] {
		if out[len(out)-1] != r {
			out = append(out, r)
		}
	}

	return Cube{lits: out}
}

func refLess(a, b gate.Ref) bool {
	if a.ID() != b.ID() {
		return a.ID() < b.ID()
	}
	return !a.Inverted() && b.Inverted()
}

// IsNull reports whether c is the distinguished absent cube.
func (c Cube) IsNull() bool { return c.lits == nil }

// Size returns the number of literals in c.
func (c Cube) Size() int { return len(c.lits) }

// Len is an alias for Size, for sort.Interface-style callers.
func (c Cube) Len() int { return len(c.lits) }

// At returns the i-th literal in canonical order.
func (c Cube) At(i int) gate.Ref { return c.lits[i] }

// Literals returns a read-only view of c's literals. Callers must not
// mutate the returned slice.
func (c Cube) Literals() []gate.Ref { return c.lits }

// Contains reports whether r is one of c's literals.
func (c Cube) Contains(r gate.Ref) bool {
	for _, l := range c.lits {
		if l == r {
			return true
		}
	}
	return false
}

// Without returns a new Cube with r removed, or c unchanged if r is
// not present.
func (c Cube) Without(r gate.Ref) Cube {
	if !c.Contains(r) {
		return c
	}
	out := make([]gate.Ref, 0, len(c.lits)-1)
	for _, l := range c.lits {
		if l != r {
			out = append(out, l)
		}
	}
	return Cube{lits: out}
}

// Subsumes reports whether a subsumes b: every literal of a appears
// in b. A subsuming cube is more general (has fewer/weaker
// constraints) and blocks a superset of the states b blocks.
//
// Complexity: O(len(a) + len(b)) using the canonical sort order.
func Subsumes(a, b Cube) bool {
	if a.Size() > b.Size() {
		return false
	}
	i, j := 0, 0
	for i < len(a.lits) && j < len(b.lits) {
		switch {
		case a.lits[i] == b.lits[j]:
			i++
			j++
		case refLess(a.lits[i], b.lits[j]):
			return false
		default:
			j++
		}
	}
	return i == len(a.lits)
}

// Equal reports whether a and b contain exactly the same literals.
func (c Cube) Equal(o Cube) bool {
	if len(c.lits) != len(o.lits) {
		return false
	}
	for i := range c.lits {
		if c.lits[i] != o.lits[i] {
			return false
		}
	}
	return true
}

// Less gives a total, deterministic lexicographic order over Cubes,
// used for canonical storage and deterministic iteration.
func (c Cube) Less(o Cube) bool {
	n := len(c.lits)
	if len(o.lits) < n {
		n = len(o.lits)
	}
	for i := 0; i < n; i++ {
		if c.lits[i] != o.lits[i] {
			return refLess(c.lits[i], o.lits[i])
		}
	}
	return len(c.lits) < len(o.lits)
}

func (c Cube) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, l := range c.lits {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(l.String())
	}
	b.WriteByte(']')
	return b.String()
}
