// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nsga2 implements the NSGA-II multi-objective evolutionary
// algorithm specialized for fixed-length bit-string genomes.
package nsga2

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/rnd"
)

// Individual is a fixed-length bit string, one byte per bit so that
// sub-sequence views (Slice) are safe without aliasing hazards. Every byte
// is kept normalized to {0,1}.
type Individual []byte

// NewIndividual allocates a zeroed individual of length n.
func NewIndividual(n int) Individual {
	if n <= 0 {
		chk.Panic("individual length must be positive: n=%d", n)
	}
	return make(Individual, n)
}

// NewRandomIndividual allocates an individual of length n with i.i.d.
// uniform random bits, drawn from the run's seeded PRNG (see rnd.Init).
func NewRandomIndividual(n int) Individual {
	x := NewIndividual(n)
	for i := range x {
		if rnd.FlipCoin(0.5) {
			x[i] = 1
		}
	}
	return x
}

// Copy returns a deep copy of x.
func (x Individual) Copy() Individual {
	y := make(Individual, len(x))
	copy(y, x)
	return y
}

// Slice returns the sub-sequence view x[lo:hi]. It aliases the backing
// array of x; callers that need an independent copy must call Copy.
func (x Individual) Slice(lo, hi int) Individual {
	if lo < 0 || hi > len(x) || lo > hi {
		chk.Panic("invalid slice bounds [%d:%d) for individual of length %d", lo, hi, len(x))
	}
	return x[lo:hi]
}

// Equal returns true if x and y have the same length and bits.
func (x Individual) Equal(y Individual) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// String renders x as a string of '0'/'1' characters.
func (x Individual) String() string {
	var b strings.Builder
	b.Grow(len(x))
	for _, v := range x {
		if v != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

func checkSameLength(a, b Individual) {
	if len(a) != len(b) {
		chk.Panic("differently sized bitwise operands: len(a)=%d, len(b)=%d", len(a), len(b))
	}
}

// And returns the bitwise AND of a and b.
func And(a, b Individual) Individual {
	checkSameLength(a, b)
	out := make(Individual, len(a))
	for i := range a {
		out[i] = a[i] & b[i]
	}
	return out
}

// Or returns the bitwise OR of a and b.
func Or(a, b Individual) Individual {
	checkSameLength(a, b)
	out := make(Individual, len(a))
	for i := range a {
		out[i] = a[i] | b[i]
	}
	return out
}

// Xor returns the bitwise XOR of a and b.
func Xor(a, b Individual) Individual {
	checkSameLength(a, b)
	out := make(Individual, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// Not returns the bitwise complement of a, normalized back to {0,1}.
func Not(a Individual) Individual {
	out := make(Individual, len(a))
	for i := range a {
		out[i] = 1 - a[i]
	}
	return out
}

// ToBitsBE interprets x as a big-endian binary integer, x[0] being the most
// significant bit. Panics if len(x) exceeds the width of uint.
func ToBitsBE(x Individual) uint {
	n := len(x)
	if n > strconv_IntSize() {
		chk.Panic("individual too long to decode into a uint: n=%d", n)
	}
	var bits uint
	for k := 0; k < n; k++ {
		if x[k] != 0 {
			bits |= 1 << uint(n-1-k)
		}
	}
	return bits
}

// ToBitsLE interprets x as a little-endian binary integer, x[0] being the
// least significant bit. Panics if len(x) exceeds the width of uint.
func ToBitsLE(x Individual) uint {
	n := len(x)
	if n > strconv_IntSize() {
		chk.Panic("individual too long to decode into a uint: n=%d", n)
	}
	var bits uint
	for k := 0; k < n; k++ {
		if x[k] != 0 {
			bits |= 1 << uint(k)
		}
	}
	return bits
}

// strconv_IntSize returns the machine's native int width in bits, used to
// guard against silent overflow in ToBitsBE/ToBitsLE.
func strconv_IntSize() int {
	return 32 << (^uint(0) >> 63)
}

// Population is an ordered sequence of individuals, identified within a
// generation by their position index.
type Population []Individual

// Copy returns a deep copy of the population.
func (p Population) Copy() Population {
	out := make(Population, len(p))
	for i, ind := range p {
		out[i] = ind.Copy()
	}
	return out
}
