package nsga2

import "github.com/cpmech/gosl/chk"

// Order is the result of a Pareto comparison between two objective vectors.
type Order int

const (
	// Equivalent means the two vectors are componentwise equal.
	Equivalent Order = iota
	// Less means a is Pareto-dominated by b: no component of a is better
	// and at least one is strictly worse.
	Less
	// Greater means a Pareto-dominates b.
	Greater
	// Unordered means neither vector dominates the other.
	Unordered
)

func (o Order) String() string {
	switch o {
	case Equivalent:
		return "equivalent"
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "unordered"
	}
}

// Objective is an m-dimensional real-valued objective vector.
type Objective []float64

// Compare returns the Pareto order of a relative to b, under the convention
// that larger components are better (compare(a,a) = Equivalent; componentwise
// a>=b with one strict > gives Greater; mixed strict differences short-circuit
// to Unordered as soon as both a strict "less" and a strict "greater" axis
// have been seen).
func Compare(a, b Objective) Order {
	if len(a) != len(b) {
		chk.Panic("objective vectors must have equal length: len(a)=%d, len(b)=%d", len(a), len(b))
	}
	out := Equivalent
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		var cmp Order
		if a[i] < b[i] {
			cmp = Less
		} else {
			cmp = Greater
		}
		if out != Equivalent && cmp != out {
			return Unordered
		}
		out = cmp
	}
	return out
}

// Dominates returns true if a Pareto-dominates or equals b.
func Dominates(a, b Objective) bool {
	cmp := Compare(a, b)
	return cmp == Equivalent || cmp == Greater
}

// StrictlyDominates returns true if a strictly Pareto-dominates b.
func StrictlyDominates(a, b Objective) bool {
	return Compare(a, b) == Greater
}
