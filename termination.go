package nsga2

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/cpmech/gosl/io"
)

// Criterion is the termination predicate: a pure function of the current
// population and iteration index, called once per iteration before mutation
// (iteration 0 is called on the initial random population). Returning true
// stops the run.
type Criterion func(population Population, iteration int) bool

// MaxIterations returns a Criterion that stops once iteration reaches
// maxIters.
func MaxIterations(maxIters int) Criterion {
	return func(_ Population, iteration int) bool {
		return iteration >= maxIters
	}
}

// HitParetoFront returns a Criterion that stops once isOnFront holds for
// every individual in the population (typically a closure over
// benchmark.IsMLOTZParetoFront with a fixed m). There is no early exit:
// every individual is checked on every call via CountOnParetoFront.
func HitParetoFront(isOnFront func(x Individual) bool) Criterion {
	return func(population Population, _ int) bool {
		count := CountOnParetoFront(population, isOnFront)
		return count == len(population)
	}
}

// CountOnParetoFront returns how many individuals in population satisfy
// isOnFront.
func CountOnParetoFront(population Population, isOnFront func(x Individual) bool) int {
	count := 0
	for _, ind := range population {
		if isOnFront(ind) {
			count++
		}
	}
	return count
}

// logMetadata is the "metadata" field of the JSON log.
type logMetadata struct {
	Begin          string `json:"begin"`
	End            string `json:"end,omitempty"`
	IndividualSize int    `json:"individual_size"`
	PopulationSize int    `json:"population_size"`
	ObjectiveSize  int    `json:"objective_size"`
	MaxIters       int    `json:"max_iters"`
}

type logDocument struct {
	Metadata         logMetadata `json:"metadata"`
	CountParetoFront []int       `json:"count_pareto_front"`
	FinalPopulation  []string    `json:"final_population"`
}

// Logger is not itself a Criterion and never requests termination; it is
// composed with a Criterion via CombineCriteria to record a per-iteration
// Pareto-front count, sync a JSON log to disk on every iteration, and
// periodically echo a status line to the console via gosl/io.
type Logger struct {
	Filename    string
	PrintPeriod int
	IsOnFront   func(x Individual) bool

	doc   logDocument
	start time.Time
}

// NewLogger returns a Logger that will write to filename, report Pareto
// front membership via isOnFront, and echo a status line every printPeriod
// iterations (0 disables the echo).
func NewLogger(filename string, individualSize, populationSize, objectiveSize, maxIters int, isOnFront func(x Individual) bool, printPeriod int) *Logger {
	return &Logger{
		Filename:    filename,
		PrintPeriod: printPeriod,
		IsOnFront:   isOnFront,
		start:       time.Now(),
		doc: logDocument{
			Metadata: logMetadata{
				IndividualSize: individualSize,
				PopulationSize: populationSize,
				ObjectiveSize:  objectiveSize,
				MaxIters:       maxIters,
			},
		},
	}
}

// Observe records one iteration's Pareto-front count, periodically echoes a
// status line, and syncs the JSON log to disk. It never requests
// termination on its own; combine it with another Criterion via
// CombineCriteria.
func (l *Logger) Observe(population Population, iteration int) {
	if l.doc.Metadata.Begin == "" {
		l.doc.Metadata.Begin = l.start.Format(time.RFC3339)
	}
	count := CountOnParetoFront(population, l.IsOnFront)
	l.doc.CountParetoFront = append(l.doc.CountParetoFront, count)

	if l.PrintPeriod > 0 && iteration%l.PrintPeriod == 0 {
		io.Pf("iter=%d pareto_front=%d/%d\n", iteration, count, len(population))
	}
	l.sync(population)
}

// Finish records the end time and final population, and performs one last
// sync. Call once after the run loop exits.
func (l *Logger) Finish(population Population) {
	l.doc.Metadata.End = time.Now().Format(time.RFC3339)
	l.doc.FinalPopulation = make([]string, len(population))
	for i, ind := range population {
		l.doc.FinalPopulation[i] = ind.String()
	}
	l.sync(population)
}

// sync marshals the current log document and overwrites Filename. I/O
// failures here are reported on the error stream and do not abort the run.
func (l *Logger) sync(_ Population) {
	if l.Filename == "" {
		return
	}
	b, err := json.MarshalIndent(l.doc, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: cannot marshal log data: %v\n", err)
		return
	}
	buf := bytes.NewBuffer(b)
	if err := io.WriteFileD("", l.Filename, buf); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: cannot write log file %q: %v\n", l.Filename, err)
	}
}

// CombineCriteria returns a Criterion that calls logger.Observe, then stop,
// in that order, for every iteration (matching the original's note that
// short-circuit evaluation is intentionally avoided so the logger always
// sees every iteration).
func CombineCriteria(logger *Logger, stop Criterion) Criterion {
	return func(population Population, iteration int) bool {
		logger.Observe(population, iteration)
		return stop(population, iteration)
	}
}
