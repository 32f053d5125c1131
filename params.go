// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nsga2

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
)

// Parameters hold all configuration for one NSGA-II run: sizes for the
// genome, objective and population, the mutation rate, the run's seed, and
// whether environmental selection uses the iterative-trim strategy.
type Parameters struct {

	// sizes
	IndividualSize int // n: length of each genome
	ObjectiveSize  int // m: number of objective components; must be even
	PopulationSize int // N: number of individuals in the population

	// time
	MaxIters int // T: maximum number of generations

	// options
	Seed          int     // seed for the random numbers generator
	MutationRate  float64 // per-gene flip probability; 0 means 1/n
	IterativeTrim bool    // use the heap/linked-list crowding trim strategy
	Verbose       bool    // stored only; Run prints no progress (see Logger for console echo)

	// output
	Filename string // JSON log output path; empty disables logging
}

// Default sets default parameters: zero mutation rate (resolved to 1/n),
// the simple crowding-trim strategy, and Verbose set to true.
func (o *Parameters) Default() {
	o.Seed = 0
	o.MutationRate = 0
	o.IterativeTrim = false
	o.Verbose = true
}

// Read loads parameters from a JSON file, applying Default first so that
// option fields the JSON document omits keep their default values. Sizes,
// MaxIters and Filename have no defaults and stay zero if omitted.
func (o *Parameters) Read(filenamepath string) {
	o.Default()
	b, err := io.ReadFile(filenamepath)
	if err != nil {
		chk.Panic("cannot read parameters file %q", filenamepath)
	}
	err = json.Unmarshal(b, o)
	if err != nil {
		chk.Panic("cannot unmarshal parameters file %q", filenamepath)
	}
}

// CalcDerived validates the parameters and seeds the run's PRNG. It must be
// called once before Run.
func (o *Parameters) CalcDerived() {
	if o.IndividualSize < 1 {
		chk.Panic("individual_size must be positive: individual_size=%d", o.IndividualSize)
	}
	if o.PopulationSize < 2 || o.PopulationSize%2 != 0 {
		chk.Panic("population_size must be even and at least 2: population_size=%d", o.PopulationSize)
	}
	if o.ObjectiveSize < 2 || o.ObjectiveSize%2 != 0 {
		chk.Panic("objective_size must be even and greater than 1: objective_size=%d", o.ObjectiveSize)
	}
	if o.IndividualSize%(o.ObjectiveSize/2) != 0 {
		chk.Panic("individual_size must be divisible by objective_size/2: individual_size=%d, objective_size=%d", o.IndividualSize, o.ObjectiveSize)
	}
	if o.MaxIters < 1 {
		chk.Panic("max_iters must be positive: max_iters=%d", o.MaxIters)
	}
	rnd.Init(o.Seed)
}
